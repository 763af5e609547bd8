package searcher

import (
	"strings"
	"testing"

	"mcts/game/lock"

	"github.com/stretchr/testify/require"
)

func TestWriteDot(t *testing.T) {
	state := lock.NewState(3, 1)
	s := New(state, lock.Rules([]int{0, 1, 0}),
		WithDuration(0),
		WithMinIterations(200),
	)
	s.FindBestAction()

	var builder strings.Builder
	err := WriteDot(&builder, s.Root())
	require.NoError(t, err)

	dot := builder.String()
	require.True(t, strings.HasPrefix(dot, "digraph MCTS {\n"), "dot output should open a digraph")
	require.True(t, strings.HasSuffix(dot, "}\n"), "dot output should close the digraph")
	require.Contains(t, dot, "0 [label=", "root vertex should use node id 0")
	require.Contains(t, dot, "Visits: 200", "root label should carry the visit count")
	require.Contains(t, dot, "0 -> ", "root children should be linked by edges")

	lines := strings.Split(strings.TrimSpace(dot), "\n")
	vertices, edges := 0, 0
	for _, line := range lines[1 : len(lines)-1] {
		if strings.Contains(line, "->") {
			edges++
		} else {
			vertices++
		}
	}
	require.Equal(t, vertices-1, edges, "every vertex except the root should have one incoming edge")
}
