// Package statespace defines sentinel errors, options and the Transition
// type for graph-backed search problems.
package statespace

import "errors"

// Sentinel errors for state space construction and loading.
var (
	// ErrEmptyStateID indicates a state ID is the empty string.
	ErrEmptyStateID = errors.New("statespace: state ID is empty")

	// ErrEmptyAction indicates a transition without an action label.
	ErrEmptyAction = errors.New("statespace: action label is empty")

	// ErrNegativeCost indicates a negative or NaN step cost.
	ErrNegativeCost = errors.New("statespace: step cost must be non-negative")

	// ErrNegativeHeuristic indicates a negative or NaN heuristic value.
	ErrNegativeHeuristic = errors.New("statespace: heuristic must be non-negative")

	// ErrDuplicateAction indicates a state already has an outgoing
	// transition with the same action label.
	ErrDuplicateAction = errors.New("statespace: duplicate action label")

	// ErrNoStart indicates the space has no start state.
	ErrNoStart = errors.New("statespace: start state not set")

	// ErrStateNotFound indicates a referenced state does not exist.
	ErrStateNotFound = errors.New("statespace: state not found")

	// ErrInvalidDocument indicates a YAML document could not be decoded.
	ErrInvalidDocument = errors.New("statespace: invalid document")
)

// Transition is one labelled, weighted edge From→To.
type Transition struct {
	From   string
	To     string
	Action string
	Cost   float64
}

// Option configures a Space at construction.
type Option func(*Space)

// WithStart sets the start state. The state is added to the space.
func WithStart(id string) Option {
	return func(s *Space) { s.start = id }
}

// WithGoals marks ids as goal states. Empty IDs are skipped.
func WithGoals(ids ...string) Option {
	return func(s *Space) {
		for _, id := range ids {
			if id == "" {
				continue
			}
			s.goals[id] = struct{}{}
		}
	}
}

// WithUndirected mirrors every transition added afterwards under the same
// label. A mirror whose label is already used by its source state is
// rejected with ErrDuplicateAction; use AddReversible to give the reverse
// edge its own label.
func WithUndirected() Option {
	return func(s *Space) { s.undirected = true }
}
