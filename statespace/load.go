package statespace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// document is the YAML shape of a Space.
type document struct {
	Start       string             `yaml:"start"`
	Goals       []string           `yaml:"goals"`
	Undirected  bool               `yaml:"undirected"`
	States      []string           `yaml:"states"`
	Transitions []transitionDoc    `yaml:"transitions"`
	Heuristic   map[string]float64 `yaml:"heuristic"`
}

type transitionDoc struct {
	From    string  `yaml:"from"`
	To      string  `yaml:"to"`
	Action  string  `yaml:"action"`
	Reverse string  `yaml:"reverse"`
	Cost    float64 `yaml:"cost"`
}

// Load decodes a single YAML document from r into a new Space.
// Unknown fields are rejected. Decoding failures wrap ErrInvalidDocument;
// invalid content surfaces the matching construction error.
func Load(r io.Reader) (*Space, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc.build()
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Space, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("statespace: open %q: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// build validates the document while constructing the Space.
func (d *document) build() (*Space, error) {
	opts := []Option{WithGoals(d.Goals...)}
	if d.Undirected {
		opts = append(opts, WithUndirected())
	}
	s := New(opts...)

	if d.Start != "" {
		if err := s.SetStart(d.Start); err != nil {
			return nil, err
		}
	}
	for _, g := range d.Goals {
		if g == "" {
			return nil, fmt.Errorf("%w: empty goal", ErrEmptyStateID)
		}
	}
	for _, id := range d.States {
		if err := s.AddState(id); err != nil {
			return nil, err
		}
	}
	for i, t := range d.Transitions {
		var err error
		if t.Reverse != "" {
			err = s.AddReversible(t.From, t.To, t.Action, t.Reverse, t.Cost)
		} else {
			err = s.AddTransition(t.From, t.To, t.Action, t.Cost)
		}
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
	}
	ids := make([]string, 0, len(d.Heuristic))
	for id := range d.Heuristic {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := s.SetHeuristic(id, d.Heuristic[id]); err != nil {
			return nil, err
		}
	}

	return s, nil
}
