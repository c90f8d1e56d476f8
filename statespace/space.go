package statespace

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/pathsearch/search"
)

// Space is a mutable transition graph. Build it with AddState and
// AddTransition, then obtain a search.Problem via Problem.
type Space struct {
	mu sync.RWMutex // guards every field below

	start      string
	goals      map[string]struct{}
	undirected bool

	states      map[string]struct{}
	order       []string                // states in insertion order
	transitions map[string][]Transition // from → outgoing, insertion order
	heuristic   map[string]float64
}

// New creates an empty Space configured by opts.
// Complexity: O(len(goals)).
func New(opts ...Option) *Space {
	s := &Space{
		goals:       make(map[string]struct{}),
		states:      make(map[string]struct{}),
		transitions: make(map[string][]Transition),
		heuristic:   make(map[string]float64),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.start != "" {
		s.addStateLocked(s.start)
	}

	return s
}

// AddState inserts id if absent. Adding an existing state is a no-op.
func (s *Space) AddState(id string) error {
	if id == "" {
		return ErrEmptyStateID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addStateLocked(id)

	return nil
}

func (s *Space) addStateLocked(id string) {
	if _, ok := s.states[id]; ok {
		return
	}
	s.states[id] = struct{}{}
	s.order = append(s.order, id)
}

// HasState reports whether id is part of the space.
func (s *Space) HasState(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.states[id]

	return ok
}

// States returns all state IDs in insertion order.
func (s *Space) States() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.order...)
}

// SetStart replaces the start state and adds it to the space.
func (s *Space) SetStart(id string) error {
	if id == "" {
		return ErrEmptyStateID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = id
	s.addStateLocked(id)

	return nil
}

// AddGoal marks id as a goal. The goal need not be reachable.
func (s *Space) AddGoal(id string) error {
	if id == "" {
		return ErrEmptyStateID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[id] = struct{}{}

	return nil
}

// AddTransition adds the edge from→to labelled action with the given step
// cost, creating both states if needed. Action labels are unique per source
// state, so an action sequence names exactly one path. In an undirected
// space the reverse edge is added too, under the same label.
func (s *Space) AddTransition(from, to, action string, cost float64) error {
	if err := validateTransition(from, to, action, cost); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	mirror := s.undirected && from != to
	if err := s.freeLocked(from, action); err != nil {
		return err
	}
	if mirror {
		if err := s.freeLocked(to, action); err != nil {
			return err
		}
	}
	s.linkLocked(from, to, action, cost)
	if mirror {
		s.linkLocked(to, from, action, cost)
	}

	return nil
}

// AddReversible adds from→to labelled action and to→from labelled reverse,
// both with the given cost. It works in directed and undirected spaces.
func (s *Space) AddReversible(from, to, action, reverse string, cost float64) error {
	if err := validateTransition(from, to, action, cost); err != nil {
		return err
	}
	if reverse == "" {
		return fmt.Errorf("%w: %s→%s", ErrEmptyAction, to, from)
	}
	if from == to && action == reverse {
		return fmt.Errorf("%w: %s %q", ErrDuplicateAction, from, action)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.freeLocked(from, action); err != nil {
		return err
	}
	if err := s.freeLocked(to, reverse); err != nil {
		return err
	}
	s.linkLocked(from, to, action, cost)
	s.linkLocked(to, from, reverse, cost)

	return nil
}

func validateTransition(from, to, action string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyStateID
	}
	if action == "" {
		return fmt.Errorf("%w: %s→%s", ErrEmptyAction, from, to)
	}
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeCost, from, to, cost)
	}

	return nil
}

// freeLocked fails if state already has an outgoing transition labelled action.
func (s *Space) freeLocked(state, action string) error {
	if _, ok := s.lookupLocked(state, action); ok {
		return fmt.Errorf("%w: %s %q", ErrDuplicateAction, state, action)
	}

	return nil
}

func (s *Space) linkLocked(from, to, action string, cost float64) {
	s.addStateLocked(from)
	s.addStateLocked(to)
	s.transitions[from] = append(s.transitions[from], Transition{From: from, To: to, Action: action, Cost: cost})
}

// Transitions returns a copy of the outgoing transitions of id.
func (s *Space) Transitions(id string) []Transition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Transition(nil), s.transitions[id]...)
}

// TransitionCount returns the number of stored directed transitions,
// mirrors included.
func (s *Space) TransitionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, ts := range s.transitions {
		n += len(ts)
	}

	return n
}

// SetHeuristic records the estimated remaining cost from id.
func (s *Space) SetHeuristic(id string, h float64) error {
	if id == "" {
		return ErrEmptyStateID
	}
	if h < 0 || math.IsNaN(h) {
		return fmt.Errorf("%w: %s h=%v", ErrNegativeHeuristic, id, h)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heuristic[id] = h

	return nil
}

// Heuristic returns a table lookup over the values recorded so far.
// States without an entry estimate 0. Later SetHeuristic calls do not
// affect the returned function.
func (s *Space) Heuristic() search.Heuristic[string, string] {
	s.mu.RLock()
	table := make(map[string]float64, len(s.heuristic))
	for id, h := range s.heuristic {
		table[id] = h
	}
	s.mu.RUnlock()

	return func(state string, _ search.Problem[string, string]) float64 {
		return table[state]
	}
}

// Problem validates the space and returns its search.Problem view.
// Returns ErrNoStart or ErrStateNotFound for a missing start state.
func (s *Space) Problem() (*Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.start == "" {
		return nil, ErrNoStart
	}
	if _, ok := s.states[s.start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrStateNotFound, s.start)
	}

	return &Problem{space: s}, nil
}
