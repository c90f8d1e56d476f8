// Package search_test provides runnable examples for the search package.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/search"
)

// ExampleBreadthFirstSearch runs the line graph A→B→C.
func ExampleBreadthFirstSearch() {
	p := newTableProblem("A", "C").
		link("A", "B", "East", 1).
		link("B", "C", "East", 1)

	actions, err := search.BreadthFirstSearch[string, string](p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(actions)
	// Output: [East East]
}

// ExampleUniformCostSearch prefers the cheaper two-hop route over a direct
// but expensive edge.
func ExampleUniformCostSearch() {
	p := newTableProblem("S", "G").
		link("S", "G", "direct", 10).
		link("S", "M", "toM", 2).
		link("M", "G", "toG", 2)

	actions, _ := search.UniformCostSearch[string, string](p)
	fmt.Println(actions, p.CostOfActions(actions))
	// Output: [toM toG] 4
}

// ExampleRun shows the counters reported alongside the path.
func ExampleRun() {
	g := gridProblem{w: 3, h: 3}
	res, err := search.Run(search.Problem[cell, string](g), search.AStar, manhattan(g))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("outcome=%s steps=%d cost=%.0f\n", res.Outcome, len(res.Actions), res.Cost)
	// Output: outcome=goal-found steps=4 cost=4
}
