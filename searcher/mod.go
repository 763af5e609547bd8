// Package searcher implements Monte Carlo tree search over any game that
// satisfies the contract in package game.
//
// A search runs four phases per iteration: selection walks the tree by UCT
// (uniform-random until a node has enough visits), expansion adds one child
// for a previously untried action, simulation plays random moves to a
// terminal state, and backpropagation folds the terminal score into every
// node on the path back to the root. FindBestAction drives iterations until
// the time budget runs out, then returns the action of the root child with
// the highest mean score.
package searcher
