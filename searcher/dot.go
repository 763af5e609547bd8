package searcher

import (
	"fmt"
	"io"
	"strings"

	"mcts/game"
)

var dotEscaper = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

// WriteDot writes a Graphviz document for the tree rooted at root, one
// vertex per node labeled with the state, visit count and mean score, and
// one edge per parent-child pair labeled with the child's incoming action.
// Intended for debugging after a search; it walks the tree breadth-first
// through the exported accessors only.
func WriteDot[S game.State[S], A game.Action[S]](w io.Writer, root *Node[S, A]) error {
	if _, err := fmt.Fprintln(w, "digraph MCTS {"); err != nil {
		return fmt.Errorf("failed to write dot header: %w", err)
	}

	fringe := []*Node[S, A]{root}
	for len(fringe) > 0 {
		node := fringe[0]
		fringe = fringe[1:]

		label := fmt.Sprintf("%s\nVisits: %d\nScore: %g", node.State(), node.Visits(), node.MeanScore())
		if _, err := fmt.Fprintf(w, "%d [label=\"%s\"];\n", node.ID(), dotEscaper.Replace(label)); err != nil {
			return fmt.Errorf("failed to write dot node: %w", err)
		}

		if parent := node.Parent(); parent != nil {
			edge := dotEscaper.Replace(fmt.Sprintf("%v", node.Action()))
			if _, err := fmt.Fprintf(w, "%d -> %d [label=\"%s\"];\n", parent.ID(), node.ID(), edge); err != nil {
				return fmt.Errorf("failed to write dot edge: %w", err)
			}
		}

		fringe = append(fringe, node.Children()...)
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("failed to write dot footer: %w", err)
	}
	return nil
}
