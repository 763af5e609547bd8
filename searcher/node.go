package searcher

import (
	"mcts/game"
)

// Node is one vertex of the search tree. It owns its state, the action that
// produced that state, its children, and the lazy enumerator of actions not
// yet expanded from it. Nodes are built and updated by the searcher; the
// exported accessors give observers read-only access after a search.
type Node[S game.State[S], A game.Action[S]] struct {
	id        uint32
	state     S
	action    A
	parent    *Node[S, A]
	children  []*Node[S, A]
	expansion game.Expansion[A]
	visits    int
	scoreSum  float64
}

// newNode builds a node and its expansion enumerator from the given state.
// The root has a nil parent and the zero action.
func newNode[S game.State[S], A game.Action[S]](id uint32, state S, parent *Node[S, A], action A, expand func(S) game.Expansion[A]) *Node[S, A] {
	return &Node[S, A]{
		id:        id,
		state:     state,
		action:    action,
		parent:    parent,
		expansion: expand(state),
	}
}

// ID is unique within one tree; the root has ID 0.
func (n *Node[S, A]) ID() uint32 {
	return n.id
}

// State is the game position at this node. Observers must not mutate it.
func (n *Node[S, A]) State() S {
	return n.state
}

// Action is the move applied to the parent's state to produce this node's
// state. For the root it is the unused zero value.
func (n *Node[S, A]) Action() A {
	return n.action
}

// Parent is nil for the root. The back reference is for traversal only and
// never extends a node's lifetime.
func (n *Node[S, A]) Parent() *Node[S, A] {
	return n.parent
}

// Children in insertion order, which is also expansion order.
func (n *Node[S, A]) Children() []*Node[S, A] {
	return n.children
}

// Visits is the number of completed simulations whose backpropagation passed
// through this node.
func (n *Node[S, A]) Visits() int {
	return n.visits
}

// MeanScore is the accumulated adjusted score divided by visits. NaN while
// the node is unvisited; callers must guard.
func (n *Node[S, A]) MeanScore() float64 {
	return n.scoreSum / float64(n.visits)
}

// addChild appends; the caller must have generated child.action from this
// node's enumerator so that children stay a prefix of the enumeration order.
func (n *Node[S, A]) addChild(child *Node[S, A]) {
	n.children = append(n.children, child)
}

// nextAction draws the next untried action. Only valid while shouldExpand
// reports true.
func (n *Node[S, A]) nextAction() A {
	return n.expansion.Next()
}

// update folds one adjusted simulation score into the aggregates.
func (n *Node[S, A]) update(score float64) {
	n.scoreSum += score
	n.visits++
}

// shouldExpand reports whether this node can still grow: it has no children
// yet, or its enumerator has untried actions left.
func (n *Node[S, A]) shouldExpand() bool {
	return len(n.children) == 0 || n.expansion.HasNext()
}
