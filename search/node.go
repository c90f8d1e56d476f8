package search

// Node is one entry of the search tree: a state, the node it was reached
// from and the action taken. Nodes are never modified after creation, so a
// parent may be shared by any number of children.
type Node[S comparable, A any] struct {
	State    S
	Parent   *Node[S, A] // nil for the root
	Action   A           // zero value for the root
	Cost     float64     // accumulated step cost from the root
	Priority float64     // frontier key; 0 for uninformed search
	Depth    int         // number of actions from the root
}

// newRoot wraps the start state.
func newRoot[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// child builds the node reached from n through succ.
func (n *Node[S, A]) child(succ Successor[S, A]) *Node[S, A] {
	return &Node[S, A]{
		State:  succ.State,
		Parent: n,
		Action: succ.Action,
		Cost:   n.Cost + succ.Cost,
		Depth:  n.Depth + 1,
	}
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool {
	return n.Parent == nil
}

// Path reconstructs the actions from the root to n, in start→n order.
// The root yields an empty, non-nil slice.
func (n *Node[S, A]) Path() []A {
	actions := make([]A, n.Depth)
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		actions[cur.Depth-1] = cur.Action
	}

	return actions
}

// States returns the chain of states from the root to n, both included.
func (n *Node[S, A]) States() []S {
	states := make([]S, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		states[cur.Depth] = cur.State
	}

	return states
}
