// Package pathsearch is an in-memory toolkit for solving state-transition
// problems with classic graph search.
//
// What's inside
//
//	search/         — Problem contract, search Node, Stack/Queue/PriorityQueue
//	                  frontiers, and DepthFirstSearch, BreadthFirstSearch,
//	                  UniformCostSearch and AStarSearch over one shared loop
//	statespace/     — a weighted, labelled transition graph that implements
//	                  search.Problem and loads from YAML
//	cmd/pathsearch/ — command-line runner for YAML state spaces
//
// Quick example:
//
//	    S ──toM(2)──▶ M ──toG(2)──▶ G
//	    └──────────direct(10)──────▶┘
//
//	BFS returns [direct]; UCS and A* return [toM toG] at cost 4.
//
//	go get github.com/katalvlaran/pathsearch
package pathsearch
