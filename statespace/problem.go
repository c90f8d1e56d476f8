package statespace

import (
	"math"

	"github.com/katalvlaran/pathsearch/search"
)

// Problem adapts a Space to search.Problem[string, string]. It reads the
// space under its lock on every call, so transitions added later are seen
// by subsequent searches.
type Problem struct {
	space *Space
}

var _ search.Problem[string, string] = (*Problem)(nil)

// StartState returns the start state of the underlying space.
func (p *Problem) StartState() string {
	p.space.mu.RLock()
	defer p.space.mu.RUnlock()

	return p.space.start
}

// IsGoalState reports whether state was marked as a goal.
func (p *Problem) IsGoalState(state string) bool {
	p.space.mu.RLock()
	defer p.space.mu.RUnlock()
	_, ok := p.space.goals[state]

	return ok
}

// Successors lists the outgoing transitions of state in insertion order.
func (p *Problem) Successors(state string) []search.Successor[string, string] {
	p.space.mu.RLock()
	defer p.space.mu.RUnlock()
	ts := p.space.transitions[state]
	out := make([]search.Successor[string, string], len(ts))
	for i, t := range ts {
		out[i] = search.Successor[string, string]{State: t.To, Action: t.Action, Cost: t.Cost}
	}

	return out
}

// CostOfActions replays actions from the start state, following the
// transition with the matching label at each step. An action with no matching
// transition makes the sequence illegal and yields +Inf.
func (p *Problem) CostOfActions(actions []string) float64 {
	p.space.mu.RLock()
	defer p.space.mu.RUnlock()

	cur, total := p.space.start, 0.0
	for _, a := range actions {
		t, ok := p.space.lookupLocked(cur, a)
		if !ok {
			return math.Inf(1)
		}
		cur = t.To
		total += t.Cost
	}

	return total
}

// Replay returns the states visited by actions from the start state, start
// included, and false if some action is illegal.
func (p *Problem) Replay(actions []string) ([]string, bool) {
	p.space.mu.RLock()
	defer p.space.mu.RUnlock()

	cur := p.space.start
	states := make([]string, 0, len(actions)+1)
	states = append(states, cur)
	for _, a := range actions {
		t, ok := p.space.lookupLocked(cur, a)
		if !ok {
			return states, false
		}
		cur = t.To
		states = append(states, cur)
	}

	return states, true
}

// lookupLocked finds the transition from state labelled action.
func (s *Space) lookupLocked(state, action string) (Transition, bool) {
	for _, t := range s.transitions[state] {
		if t.Action == action {
			return t, true
		}
	}

	return Transition{}, false
}
