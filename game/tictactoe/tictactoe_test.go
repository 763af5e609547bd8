package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardPlay(t *testing.T) {
	board := NewBoard()
	require.Equal(t, Cross, board.Turn(), "cross moves first")

	board.Play(4)
	require.Equal(t, Circle, board.Turn(), "the turn should pass")
	require.Equal(t, "....X....", flatten(board))

	board.Play(0)
	require.Equal(t, Cross, board.Turn())
	require.Equal(t, "O...X....", flatten(board))
}

func TestBoardClone(t *testing.T) {
	board := NewBoard()
	board.Play(0)

	clone := board.Clone()
	clone.Play(1)

	require.Equal(t, "XO.......", flatten(clone))
	require.Equal(t, "X........", flatten(board), "clone mutations should not show through the original")
}

func TestBoardWinner(t *testing.T) {
	t.Run("row win", func(t *testing.T) {
		board := NewBoard()
		for _, square := range []int{0, 3, 1, 4, 2} { // X: 0 1 2, O: 3 4
			board.Play(square)
		}
		require.Equal(t, Cross, board.Winner())
		require.True(t, board.Over())
	})

	t.Run("column win", func(t *testing.T) {
		board := NewBoard()
		for _, square := range []int{1, 0, 2, 3, 4, 6} { // O: 0 3 6
			board.Play(square)
		}
		require.Equal(t, Circle, board.Winner())
	})

	t.Run("diagonal win", func(t *testing.T) {
		board := NewBoard()
		for _, square := range []int{0, 1, 4, 2, 8} { // X: 0 4 8
			board.Play(square)
		}
		require.Equal(t, Cross, board.Winner())
	})

	t.Run("draw", func(t *testing.T) {
		board := NewBoard()
		for _, square := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			board.Play(square)
		}
		require.Equal(t, None, board.Winner())
		require.True(t, board.Full())
		require.True(t, board.Over())
	})

	t.Run("game in progress", func(t *testing.T) {
		board := NewBoard()
		board.Play(0)
		require.Equal(t, None, board.Winner())
		require.False(t, board.Over())
	})
}

func TestExpansionOrder(t *testing.T) {
	board := NewBoard()
	board.Play(0)
	board.Play(4)

	expansion := NewExpansion(board)
	moves := []Move{}
	for expansion.HasNext() {
		moves = append(moves, expansion.Next())
	}

	require.Equal(t, []Move{1, 2, 3, 5, 6, 7, 8}, moves, "empty squares should enumerate lowest first")
}

func TestPlayoutGeneratesLegalMoves(t *testing.T) {
	board := NewBoard()
	board.Play(0)
	board.Play(4)

	var move Move
	NewPlayout(board).Random(&move)

	require.NotEqual(t, Move(0), move, "occupied squares are not legal")
	require.NotEqual(t, Move(4), move, "occupied squares are not legal")
	require.Less(t, int(move), 9)
}

func TestRulesAdjustFlipsPerSide(t *testing.T) {
	rules := Rules(Cross)

	crossToMove := NewBoard()
	require.InDelta(t, 0.2, rules.Adjust(crossToMove, 0.8), 1e-9,
		"the score should invert where the root player is to move")

	circleToMove := NewBoard()
	circleToMove.Play(0)
	require.Equal(t, 0.8, rules.Adjust(circleToMove, 0.8),
		"the score should pass through where the opponent is to move")
}

func TestRulesScore(t *testing.T) {
	board := NewBoard()
	for _, square := range []int{0, 3, 1, 4, 2} {
		board.Play(square)
	}

	require.Equal(t, 1.0, Rules(Cross).Score(board))
	require.Equal(t, 0.0, Rules(Circle).Score(board))
}

func flatten(b *Board) string {
	flat := ""
	for _, r := range b.String() {
		if r != '\n' {
			flat += string(r)
		}
	}
	return flat
}
