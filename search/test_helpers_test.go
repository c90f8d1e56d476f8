package search_test

import (
	"math"

	"github.com/katalvlaran/pathsearch/search"
)

// edge is one labelled transition of a tableProblem.
type edge struct {
	to     string
	action string
	cost   float64
}

// tableProblem is a small adjacency-table Problem used across the tests.
// Successors are returned in the order edges were added.
type tableProblem struct {
	start string
	goals map[string]bool
	adj   map[string][]edge

	// calls counts Successors invocations; expanded lists their arguments.
	calls    int
	expanded []string
}

func newTableProblem(start string, goals ...string) *tableProblem {
	p := &tableProblem{
		start: start,
		goals: make(map[string]bool, len(goals)),
		adj:   make(map[string][]edge),
	}
	for _, g := range goals {
		p.goals[g] = true
	}

	return p
}

// link adds a directed edge from→to.
func (p *tableProblem) link(from, to, action string, cost float64) *tableProblem {
	p.adj[from] = append(p.adj[from], edge{to: to, action: action, cost: cost})

	return p
}

func (p *tableProblem) StartState() string { return p.start }

func (p *tableProblem) IsGoalState(s string) bool { return p.goals[s] }

func (p *tableProblem) Successors(s string) []search.Successor[string, string] {
	p.calls++
	p.expanded = append(p.expanded, s)
	out := make([]search.Successor[string, string], 0, len(p.adj[s]))
	for _, e := range p.adj[s] {
		out = append(out, search.Successor[string, string]{State: e.to, Action: e.action, Cost: e.cost})
	}

	return out
}

// CostOfActions replays actions from the start; illegal sequences cost +Inf.
func (p *tableProblem) CostOfActions(actions []string) float64 {
	cur, total := p.start, 0.0
	for _, a := range actions {
		found := false
		for _, e := range p.adj[cur] {
			if e.action == a {
				cur, total, found = e.to, total+e.cost, true
				break
			}
		}
		if !found {
			return math.Inf(1)
		}
	}

	return total
}

// lineProblem is A→B→C with unit costs and goal C.
func lineProblem() *tableProblem {
	return newTableProblem("A", "C").
		link("A", "B", "East", 1).
		link("B", "C", "East", 1)
}

// twoPathProblem reaches G from S via M (2+2) or directly (cost 10).
// The direct edge is listed last so both DFS and BFS pick it.
func twoPathProblem() *tableProblem {
	return newTableProblem("S", "G").
		link("S", "M", "toM", 2).
		link("S", "G", "direct", 10).
		link("M", "G", "toG", 2)
}

// weightedProblem has an optimal path S-A-B-C-G of cost 7 hidden among
// cheaper first steps and shorter but costlier routes.
func weightedProblem() *tableProblem {
	return newTableProblem("S", "G").
		link("S", "A", "a", 1).
		link("S", "B", "b", 4).
		link("A", "B", "ab", 2).
		link("A", "C", "ac", 5).
		link("B", "C", "bc", 1).
		link("B", "G", "bg", 7).
		link("C", "G", "cg", 3)
}

// fanInProblem reaches D from A, B and C, each route cheaper than the one
// before. B also leads to R, whose priority ties with D's final one; R is
// queued after D's first entry but before D's cheapest route is found.
func fanInProblem() *tableProblem {
	return newTableProblem("S", "G").
		link("S", "A", "a", 1).
		link("S", "B", "b", 1).
		link("S", "C", "c", 1).
		link("A", "D", "ad", 4).
		link("A", "P", "ap", 10).
		link("B", "D", "bd", 2).
		link("B", "R", "br", 1).
		link("C", "D", "cd", 1).
		link("C", "Q", "cq", 10).
		link("D", "G", "dg", 5)
}

// gridProblem is an open w×h grid of unit moves with the goal in the far
// corner. Successor order is N, E, S, W.
type gridProblem struct {
	w, h int
}

type cell struct{ x, y int }

func (g gridProblem) StartState() cell { return cell{0, 0} }

func (g gridProblem) IsGoalState(c cell) bool { return c.x == g.w-1 && c.y == g.h-1 }

func (g gridProblem) Successors(c cell) []search.Successor[cell, string] {
	moves := []struct {
		dx, dy int
		name   string
	}{{0, -1, "N"}, {1, 0, "E"}, {0, 1, "S"}, {-1, 0, "W"}}
	out := make([]search.Successor[cell, string], 0, 4)
	for _, m := range moves {
		nx, ny := c.x+m.dx, c.y+m.dy
		if nx < 0 || ny < 0 || nx >= g.w || ny >= g.h {
			continue
		}
		out = append(out, search.Successor[cell, string]{State: cell{nx, ny}, Action: m.name, Cost: 1})
	}

	return out
}

func (g gridProblem) CostOfActions(actions []string) float64 { return float64(len(actions)) }

// manhattan is an admissible, consistent heuristic for gridProblem.
func manhattan(g gridProblem) search.Heuristic[cell, string] {
	return func(c cell, _ search.Problem[cell, string]) float64 {
		return math.Abs(float64(g.w-1-c.x)) + math.Abs(float64(g.h-1-c.y))
	}
}
