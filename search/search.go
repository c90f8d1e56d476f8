// Package search implements depth-first, breadth-first, uniform-cost and A*
// graph search on top of a single shared control loop.
//
// The loop pops a node, returns its path if it is a goal, and otherwise
// expands it once: the first pop of a state records it in the explored map
// and pushes one child per successor. Later pops of the same state are
// discarded. The algorithms differ only in the frontier they use and in how
// a child's priority is computed and inserted.
package search

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// DepthFirstSearch searches the deepest nodes first and returns the actions
// reaching the first goal popped. An empty slice means the start state is a
// goal or no goal is reachable.
func DepthFirstSearch[S comparable, A any](p Problem[S, A], opts ...Option) ([]A, error) {
	return actionsOf(Run(p, DFS, nil, opts...))
}

// BreadthFirstSearch searches the shallowest nodes first. With unit step
// costs the returned path has the fewest possible actions.
func BreadthFirstSearch[S comparable, A any](p Problem[S, A], opts ...Option) ([]A, error) {
	return actionsOf(Run(p, BFS, nil, opts...))
}

// UniformCostSearch expands the node of least accumulated cost first. With
// non-negative step costs the returned path is cost-optimal.
func UniformCostSearch[S comparable, A any](p Problem[S, A], opts ...Option) ([]A, error) {
	return actionsOf(Run(p, UCS, nil, opts...))
}

// AStarSearch expands the node with the lowest cost plus heuristic estimate
// first. A nil h selects NullHeuristic. The path is cost-optimal when h is
// admissible and consistent.
func AStarSearch[S comparable, A any](p Problem[S, A], h Heuristic[S, A], opts ...Option) ([]A, error) {
	return actionsOf(Run(p, AStar, h, opts...))
}

// actionsOf unwraps a Run result for the plain search functions.
func actionsOf[S comparable, A any](res *Result[S, A], err error) ([]A, error) {
	if err != nil {
		return nil, err
	}

	return res.Actions, nil
}

// Run executes algo on p and reports the full Result. h is consulted only
// by AStar; nil means NullHeuristic.
//
// On error the partially filled Result is returned along with it, so the
// counters show how far the search got.
func Run[S comparable, A any](p Problem[S, A], algo Algorithm, h Heuristic[S, A], opts ...Option) (*Result[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if h == nil {
		h = NullHeuristic[S, A]
	}

	w := &walker[S, A]{
		problem:  p,
		opts:     o,
		log:      o.Logger.With("algorithm", algo.String()),
		explored: make(map[S]*Node[S, A]),
		res:      &Result[S, A]{Actions: []A{}, Outcome: Exhausted},
	}

	switch algo {
	case DFS:
		w.useFIFO(NewStack[*Node[S, A]]())
	case BFS:
		w.useFIFO(NewQueue[*Node[S, A]]())
	case UCS:
		pq := NewPriorityQueue(stateKey[S, A])
		w.frontier = pq
		w.insert = func(n *Node[S, A]) bool {
			n.Priority = n.Cost
			pq.Push(n, n.Priority)
			return true
		}
	case AStar:
		pq := NewPriorityQueue(stateKey[S, A])
		w.frontier = pq
		w.insert = func(n *Node[S, A]) bool {
			n.Priority = n.Cost + h(n.State, p)
			return pq.Update(n, n.Priority)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}

	return w.res, w.loop()
}

// stateKey identifies search nodes by state inside a PriorityQueue.
func stateKey[S comparable, A any](n *Node[S, A]) S {
	return n.State
}

// walker encapsulates the mutable state of one search run.
type walker[S comparable, A any] struct {
	problem  Problem[S, A]
	opts     Options
	log      hclog.Logger
	frontier Frontier[*Node[S, A]]
	insert   func(n *Node[S, A]) bool // sets n.Priority; false if the frontier kept a better entry
	explored map[S]*Node[S, A]
	res      *Result[S, A]
}

// useFIFO installs an order-only frontier; uninformed nodes keep priority 0.
func (w *walker[S, A]) useFIFO(f Frontier[*Node[S, A]]) {
	w.frontier = f
	w.insert = func(n *Node[S, A]) bool {
		f.Push(n, 0)
		return true
	}
}

// add inserts n and updates the generation counters. A node the frontier
// discarded in favour of a cheaper queued entry is not counted.
func (w *walker[S, A]) add(n *Node[S, A]) {
	if !w.insert(n) {
		return
	}
	w.res.Generated++
	if l := w.frontier.Len(); l > w.res.MaxFrontier {
		w.res.MaxFrontier = l
	}
}

// loop pops nodes until a goal is found, the frontier empties, or an error
// stops the run.
func (w *walker[S, A]) loop() error {
	w.add(newRoot[S, A](w.problem.StartState()))

	for !w.frontier.IsEmpty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		node, _ := w.frontier.Pop()
		if w.problem.IsGoalState(node.State) {
			w.finish(node)
			return nil
		}
		if _, seen := w.explored[node.State]; seen {
			continue
		}
		if err := w.expand(node); err != nil {
			return err
		}
	}

	w.log.Debug("frontier exhausted", "expanded", w.res.Expanded, "generated", w.res.Generated)

	return nil
}

// expand records node as explored and generates its children.
func (w *walker[S, A]) expand(node *Node[S, A]) error {
	if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, w.res.Expanded)
	}
	if err := w.opts.OnExpand(w.res.Expanded, node.Depth); err != nil {
		return fmt.Errorf("search: OnExpand error at %v: %w", node.State, err)
	}

	w.explored[node.State] = node
	w.res.Expanded++
	if w.log.IsTrace() {
		w.log.Trace("expand", "state", node.State, "depth", node.Depth, "cost", node.Cost, "priority", node.Priority)
	}

	for _, succ := range w.problem.Successors(node.State) {
		w.add(node.child(succ))
	}

	return nil
}

// finish fills the result from the goal node.
func (w *walker[S, A]) finish(goal *Node[S, A]) {
	w.res.Goal = goal
	w.res.Actions = goal.Path()
	w.res.Cost = goal.Cost
	w.res.Outcome = GoalFound
	w.log.Debug("goal found", "state", goal.State, "depth", goal.Depth, "cost", goal.Cost,
		"expanded", w.res.Expanded, "generated", w.res.Generated)
}
