// Package statespace provides a data-driven search.Problem: a directed,
// weighted transition graph whose vertices are string state IDs and whose
// edges carry an action label and a non-negative step cost.
//
// What
//
//   - Space collects states, labelled transitions, a start state, goal
//     states and an optional per-state heuristic table.
//   - Space.Problem validates the start state and returns a value that
//     implements search.Problem[string, string].
//   - Load / LoadFile read a Space from YAML.
//
// Determinism
//
//	Successors are returned in the order transitions were added, which is
//	also the order they appear in a YAML document. Search results are thus
//	reproducible for a given input.
//
// Action labels
//
//	A state never has two outgoing transitions with the same label, so an
//	action sequence from the start state names exactly one path and
//	CostOfActions agrees with the cost reported by the search.
//
// Undirected spaces
//
//	With WithUndirected, every AddTransition also adds the reverse
//	transition with the same action label and cost. AddReversible, or a
//	reverse label in YAML, gives the reverse edge its own label instead.
//
// Concurrency
//
//	Space guards its maps with a sync.RWMutex, so it may be built from
//	several goroutines and searched concurrently.
//
// YAML format
//
//	start: S
//	goals: [G]
//	undirected: false
//	states: [Isolated]          # optional, states without transitions
//	transitions:
//	  - {from: S, to: M, action: toM, cost: 2}
//	  - {from: M, to: G, action: toG, cost: 2}
//	  - {from: G, to: X, action: out, reverse: in, cost: 1}
//	heuristic:                  # optional, missing entries read as 0
//	  S: 3
//
// Errors
//
//   - ErrEmptyStateID       a state ID is the empty string.
//   - ErrEmptyAction        a transition has no action label.
//   - ErrNegativeCost       a step cost is negative or NaN.
//   - ErrDuplicateAction    a state already uses the action label.
//   - ErrNegativeHeuristic  a heuristic value is negative or NaN.
//   - ErrNoStart            Problem was requested without a start state.
//   - ErrStateNotFound      the start state is not part of the space.
//   - ErrInvalidDocument    YAML input could not be decoded into a space.
package statespace
