package searcher

import (
	"math"
	"math/rand"
	"testing"

	"github.com/seehuhn/mt19937"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(seed int64, options ...Option) *Searcher[*mockState, mockAction] {
	s := &Searcher[*mockState, mockAction]{config: defaultConfig()}
	s.Configure(options...)
	source := mt19937.New()
	source.Seed(seed)
	s.rng = rand.New(source)
	return s
}

func visitedNode(visits int, scoreSum float64) *Node[*mockState, mockAction] {
	node := buildMockNode(0, 1, nil)
	node.visits = visits
	node.scoreSum = scoreSum
	return node
}

func TestUCT(t *testing.T) {
	t.Run("combines exploitation and exploration", func(t *testing.T) {
		want := 0.5 + 0.5*math.Sqrt(math.Log(10)/4)
		require.InDelta(t, want, uct(0.5, 4, 10, 0.5), 1e-9)
	})

	t.Run("exploration term shrinks with child visits", func(t *testing.T) {
		require.Greater(t, uct(0.5, 1, 10, 0.5), uct(0.5, 9, 10, 0.5))
	})

	t.Run("panics on zero visits", func(t *testing.T) {
		require.Panics(t, func() { uct(0.5, 0, 10, 0.5) })
	})
}

func TestSelectChild(t *testing.T) {
	t.Run("panics without children", func(t *testing.T) {
		s := newTestSearcher(1)
		parent := visitedNode(100, 50)

		require.Panics(t, func() { s.selectChild(parent) })
	})

	t.Run("selects uniformly below the selection threshold", func(t *testing.T) {
		s := newTestSearcher(1, WithSelectionThreshold(5))
		parent := visitedNode(4, 2)
		children := []*Node[*mockState, mockAction]{visitedNode(1, 0), visitedNode(1, 1), visitedNode(1, 0.5)}
		parent.children = children

		counts := map[*Node[*mockState, mockAction]]int{}
		for i := 0; i < 300; i++ {
			counts[s.selectChild(parent)]++
		}
		for _, child := range children {
			require.Greater(t, counts[child], 0, "every child should be sampled")
		}
	})

	t.Run("selection is deterministic for a fixed seed", func(t *testing.T) {
		parent := visitedNode(4, 2)
		parent.children = []*Node[*mockState, mockAction]{visitedNode(1, 0), visitedNode(1, 1), visitedNode(1, 0.5)}

		first := newTestSearcher(7)
		second := newTestSearcher(7)
		for i := 0; i < 50; i++ {
			require.Equal(t, first.selectChild(parent), second.selectChild(parent))
		}
	})

	t.Run("selects max UCT past the threshold", func(t *testing.T) {
		s := newTestSearcher(1, WithSelectionThreshold(5))
		parent := visitedNode(10, 5)
		low := visitedNode(4, 1)    // mean 0.25
		high := visitedNode(4, 3.6) // mean 0.9
		parent.children = []*Node[*mockState, mockAction]{low, high}

		require.Equal(t, high, s.selectChild(parent))
	})

	t.Run("breaks ties by insertion order", func(t *testing.T) {
		s := newTestSearcher(1, WithSelectionThreshold(5))
		parent := visitedNode(10, 5)
		first := visitedNode(5, 2.5)
		second := visitedNode(5, 2.5)
		parent.children = []*Node[*mockState, mockAction]{first, second}

		require.Equal(t, first, s.selectChild(parent))
	})

	t.Run("prefers an unvisited child over the formula", func(t *testing.T) {
		s := newTestSearcher(1, WithSelectionThreshold(5))
		parent := visitedNode(10, 5)
		visited := visitedNode(9, 9)
		unvisited := visitedNode(0, 0)
		parent.children = []*Node[*mockState, mockAction]{visited, unvisited}

		require.Equal(t, unvisited, s.selectChild(parent))
	})
}
