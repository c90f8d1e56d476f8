package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathsearch/search"
	"github.com/katalvlaran/pathsearch/statespace"
)

// RunCmd loads a state space and searches it.
type RunCmd struct {
	File          string `short:"f" required:"" type:"existingfile" help:"State space YAML file."`
	Algo          string `short:"a" default:"astar" help:"Algorithm: dfs, bfs, ucs or astar."`
	UseHeuristic  bool   `name:"use-heuristic" help:"Use the file's heuristic table for astar (default: zero heuristic)."`
	MaxExpansions int    `name:"max-expansions" default:"0" help:"Abort after expanding this many states (0 = unlimited)."`
	ShowStates    bool   `name:"show-states" help:"Print the visited state chain."`
}

func (c *RunCmd) Run(env *appEnv) error {
	algo, err := search.ParseAlgorithm(c.Algo)
	if err != nil {
		return err
	}
	space, err := statespace.LoadFile(c.File)
	if err != nil {
		return err
	}
	problem, err := space.Problem()
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	var h search.Heuristic[string, string]
	if c.UseHeuristic {
		if algo != search.AStar {
			env.log.Warn("heuristic ignored by uninformed and uniform-cost search", "algorithm", algo.String())
		}
		h = space.Heuristic()
	}

	log := env.log.Named("search")
	log.Debug("loaded state space", "file", c.File,
		"states", len(space.States()), "transitions", space.TransitionCount())

	res, err := search.Run[string, string](problem, algo, h,
		search.WithLogger(log),
		search.WithMaxExpansions(c.MaxExpansions),
	)
	if err != nil {
		if errors.Is(err, search.ErrExpansionLimit) && res != nil {
			log.Warn("search aborted", "expanded", res.Expanded, "generated", res.Generated)
		}
		return err
	}

	return c.render(env.out, algo, res)
}

// render prints the result as aligned label/value lines.
func (c *RunCmd) render(w io.Writer, algo search.Algorithm, res *search.Result[string, string]) error {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Width(11)
	value := r.NewStyle()
	if res.Outcome == search.GoalFound {
		value = value.Foreground(lipgloss.Color("10"))
	} else {
		value = value.Foreground(lipgloss.Color("9"))
	}

	actions := "(none)"
	if len(res.Actions) > 0 {
		actions = strings.Join(res.Actions, " ")
	}
	lines := [][2]string{
		{"algorithm:", algo.String()},
		{"outcome:", res.Outcome.String()},
		{"actions:", actions},
		{"cost:", fmt.Sprintf("%g", res.Cost)},
		{"expanded:", fmt.Sprintf("%d", res.Expanded)},
		{"generated:", fmt.Sprintf("%d", res.Generated)},
	}
	if c.ShowStates && res.Goal != nil {
		lines = append(lines, [2]string{"states:", strings.Join(res.Goal.States(), " -> ")})
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, label.Render(l[0])+value.Render(l[1])); err != nil {
			return err
		}
	}

	return nil
}
