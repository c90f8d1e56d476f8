// Package search provides generic graph search over an abstract
// state-transition problem: depth-first, breadth-first, uniform-cost and
// best-first (A*) search.
//
// What
//
//   - A Problem supplies a start state, a goal test, successor generation
//     and the cost of an action sequence.
//   - Each algorithm returns the sequence of actions leading from the start
//     state to the first goal state it pops from its frontier.
//   - Run exposes the same loop with a Result carrying the goal node, the
//     path cost, the terminal Outcome and expansion counters.
//
// Graph search
//
//	All four variants share one control loop. The goal test happens when a
//	node is popped, and a state is recorded in the explored map when it is
//	first popped and expanded. A state is never expanded twice, although
//	several nodes for the same state may wait in the frontier at once.
//	AStarSearch additionally folds duplicates at push time through
//	PriorityQueue.Update.
//
// Frontiers
//
//   - DFS:   Stack (LIFO)
//   - BFS:   Queue (FIFO)
//   - UCS:   PriorityQueue keyed by accumulated cost g
//   - AStar: PriorityQueue keyed by g + h(state)
//
//	Priority ties are resolved in insertion order, so results are
//	reproducible for a given successor order.
//
// Complexity (b = branching factor, N = states expanded)
//
//   - Time:   N successor calls creating O(b·N) nodes, plus O(log(b·N)) per heap operation.
//   - Memory: O(b·N) nodes for DFS, BFS and UCS; AStar keeps at most one
//     queued entry per state it has not yet expanded.
//
// Usage
//
//	actions, err := search.BreadthFirstSearch[string, string](p)
//	if err != nil {
//	    // ErrNilProblem, ErrOptionViolation, ctx.Err(), ErrExpansionLimit or a hook error
//	}
//	if len(actions) == 0 {
//	    // start is a goal, or no goal is reachable
//	}
//
//	res, err := search.Run(p, search.AStar, h,
//	    search.WithLogger(logger),
//	    search.WithMaxExpansions(10000),
//	)
//
// Errors
//
//   - ErrNilProblem        if the problem is nil.
//   - ErrOptionViolation   if an Option was given an invalid value.
//   - ErrExpansionLimit    if WithMaxExpansions was exceeded.
//   - ErrUnknownAlgorithm  from ParseAlgorithm or Run with a bad Algorithm.
//   - context errors and wrapped OnExpand hook errors.
//
// Not finding a path is not an error: the action slice is simply empty.
package search
