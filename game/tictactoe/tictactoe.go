// Package tictactoe implements 3x3 tic-tac-toe as a two-player adversarial
// game for the searcher. The board is a pair of bitboards, one per player,
// with squares numbered 0..8 from the top-left, row by row.
package tictactoe

import (
	"fmt"
	"math/bits"
	"strings"

	"mcts/game"

	"golang.org/x/exp/rand"
)

// Player marks a side, or None for an empty square / no winner.
type Player uint8

const (
	None Player = iota
	Cross
	Circle
)

func (p Player) String() string {
	switch p {
	case Cross:
		return "X"
	case Circle:
		return "O"
	}
	return "."
}

// Other is the opposing side.
func (p Player) Other() Player {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

const fullBoard uint16 = 0b111111111

// Rows, columns and diagonals as bitboard patterns.
var winningPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Board is a tic-tac-toe position. Cross moves first.
type Board struct {
	bitboards [2]uint16 // Cross at index 0, Circle at index 1
	turn      Player
}

// NewBoard is an empty position with Cross to move.
func NewBoard() *Board {
	return &Board{turn: Cross}
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) String() string {
	var builder strings.Builder
	for square := 0; square < 9; square++ {
		bit := uint16(1) << square
		switch {
		case b.bitboards[0]&bit != 0:
			builder.WriteString(Cross.String())
		case b.bitboards[1]&bit != 0:
			builder.WriteString(Circle.String())
		default:
			builder.WriteString(None.String())
		}
		if square%3 == 2 && square != 8 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// Turn is the side to move.
func (b *Board) Turn() Player {
	return b.turn
}

// Play marks square for the side to move and passes the turn.
func (b *Board) Play(square int) {
	b.bitboards[b.turn-Cross] |= uint16(1) << square
	b.turn = b.turn.Other()
}

// free is the bitboard of empty squares.
func (b *Board) free() uint16 {
	return fullBoard &^ (b.bitboards[0] | b.bitboards[1])
}

// Winner is the side with three in a row, or None.
func (b *Board) Winner() Player {
	for _, pattern := range winningPatterns {
		if b.bitboards[0]&pattern == pattern {
			return Cross
		}
		if b.bitboards[1]&pattern == pattern {
			return Circle
		}
	}
	return None
}

// Full reports a board with no empty squares.
func (b *Board) Full() bool {
	return b.free() == 0
}

// Over reports a finished game: somebody won or the board is full.
func (b *Board) Over() bool {
	return b.Winner() != None || b.Full()
}

// Move marks one square, 0..8.
type Move uint8

func (m Move) Apply(state *Board) {
	state.Play(int(m))
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m/3, m%3)
}

// expansion walks the free squares in ascending order.
type expansion struct {
	free uint16
}

// NewExpansion enumerates the empty squares at state, lowest square first.
func NewExpansion(state *Board) game.Expansion[Move] {
	return &expansion{free: state.free()}
}

func (e *expansion) HasNext() bool {
	return e.free != 0
}

func (e *expansion) Next() Move {
	square := bits.TrailingZeros16(e.free)
	e.free &= e.free - 1
	return Move(square)
}

type playout struct {
	state *Board
	rng   *rand.Rand
}

// NewPlayout picks uniformly among the empty squares. The generator is
// seeded from the position itself, which keeps playouts deterministic per
// state without a shared generator.
func NewPlayout(state *Board) game.Playout[Move] {
	seed := uint64(state.bitboards[0])<<9 | uint64(state.bitboards[1])
	return &playout{state: state, rng: rand.New(rand.NewSource(seed + 1))}
}

func (p *playout) Random(action *Move) {
	free := p.state.free()
	nth := p.rng.Intn(bits.OnesCount16(free))
	for ; nth > 0; nth-- {
		free &= free - 1
	}
	*action = Move(bits.TrailingZeros16(free))
}

// Rules bundles the game for a search rooted at a position where rootPlayer
// is to move. Terminal scores are from rootPlayer's perspective: 1 for a
// win, 0 for a loss, 0.5 for a draw. The adjustment inverts the score at
// nodes where rootPlayer is to move, because the choice leading into such a
// node was the opponent's.
func Rules(rootPlayer Player) game.Rules[*Board, Move] {
	return game.Rules[*Board, Move]{
		Expand:     NewExpansion,
		NewPlayout: NewPlayout,
		Terminal: func(b *Board) bool {
			return b.Over()
		},
		Score: func(b *Board) float64 {
			switch b.Winner() {
			case rootPlayer:
				return 1
			case None:
				return 0.5
			}
			return 0
		},
		Adjust: func(b *Board, score float64) float64 {
			if b.Turn() == rootPlayer {
				return 1 - score
			}
			return score
		},
	}
}
