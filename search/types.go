// Package search defines the problem contract, options and sentinel errors
// for the search algorithms.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a search.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when the search expanded more states
	// than allowed by WithMaxExpansions.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrUnknownAlgorithm is returned for an Algorithm value or name that
	// does not name one of the supported searches.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Problem is the capability contract a search consumes.
//
// Implementations are assumed pure and synchronous. Successors must return
// non-negative step costs; the order of the returned slice drives
// tie-breaking and therefore which of several equal paths is found.
type Problem[S comparable, A any] interface {
	// StartState returns the state the search begins from.
	StartState() S

	// IsGoalState reports whether state is a goal.
	IsGoalState(state S) bool

	// Successors returns the transitions available from state.
	Successors(state S) []Successor[S, A]

	// CostOfActions returns the total cost of a sequence of legal actions
	// taken from the start state.
	CostOfActions(actions []A) float64
}

// Successor is a single transition returned by Problem.Successors.
type Successor[S comparable, A any] struct {
	State  S       // resulting state
	Action A       // action taken to reach State
	Cost   float64 // step cost, must be >= 0
}

// Heuristic estimates the remaining cost from state to the nearest goal.
// It must be non-negative; AStarSearch returns optimal paths only when it
// is admissible and consistent.
type Heuristic[S comparable, A any] func(state S, p Problem[S, A]) float64

// NullHeuristic is the trivial heuristic. With it AStarSearch orders its
// frontier exactly like UniformCostSearch.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}

// Algorithm selects one of the search variants for Run.
type Algorithm int

const (
	// DFS is depth-first search.
	DFS Algorithm = iota
	// BFS is breadth-first search.
	BFS
	// UCS is uniform-cost search.
	UCS
	// AStar is best-first search ordered by g + h.
	AStar
)

// String returns the short lowercase name of a.
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	case UCS:
		return "ucs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name such as "bfs" or "A*" to its Algorithm.
// Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return DFS, nil
	case "bfs", "breadth-first":
		return BFS, nil
	case "ucs", "uniform-cost":
		return UCS, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Outcome is the terminal state of a search run.
type Outcome int

const (
	// Exhausted means the frontier emptied without reaching a goal.
	Exhausted Outcome = iota
	// GoalFound means a popped node passed the goal test.
	GoalFound
)

// String returns a readable name for o.
func (o Outcome) String() string {
	if o == GoalFound {
		return "goal-found"
	}

	return "exhausted"
}

// Option configures search behavior via functional arguments.
// If an Option is invalid, the violation is recorded and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by every search variant.
type Options struct {
	// Ctx allows cancellation; it is checked once per popped node.
	Ctx context.Context

	// Logger receives Trace records per expansion and a Debug record when
	// the search terminates.
	Logger hclog.Logger

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many states have been expanded. Zero means no limit.
	MaxExpansions int

	// OnExpand is called with the number of states expanded so far and the
	// depth of the node about to be expanded. Returning an error aborts.
	OnExpand func(expanded, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a null logger
//   - no expansion limit
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        hclog.NewNullLogger(),
		MaxExpansions: 0,
		OnExpand:      func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook called before each expansion.
func WithOnExpand(fn func(expanded, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search run.
type Result[S comparable, A any] struct {
	// Actions leads from the start state to Goal. Empty when Outcome is
	// Exhausted or the start state is itself a goal.
	Actions []A

	// Goal is the popped goal node, nil when Exhausted.
	Goal *Node[S, A]

	// Cost is the accumulated step cost of Goal (0 when Exhausted).
	Cost float64

	// Outcome reports how the search terminated.
	Outcome Outcome

	// Expanded counts states recorded in the explored map.
	Expanded int

	// Generated counts nodes that entered the frontier, the root included.
	// For AStar a node that replaced a queued entry counts, and a node
	// dropped because its state was already queued cheaper does not.
	Generated int

	// MaxFrontier is the largest frontier length observed.
	MaxFrontier int
}
