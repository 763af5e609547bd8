// Package lock implements a "guess the sequence" game, like opening a
// combination lock. Each turn the player picks a number between 0 and a
// maximum; after a fixed number of turns the game ends and every position
// matching a hidden target sequence is worth 1/turns points. The game is
// single player and is used by the end-to-end search tests and the
// experiments harness.
package lock

import (
	"fmt"

	"mcts/game"

	"golang.org/x/exp/rand"
)

// PlayoutSeed seeds the generator of every playout strategy instance, which
// keeps playouts a deterministic function of the state they start from.
const PlayoutSeed = 42

// State holds the numbers chosen so far and the game parameters.
type State struct {
	turns     int
	maxChoice int
	choices   []int
}

// NewState starts a game of the given number of turns where each choice is
// between 0 and maxChoice inclusive.
func NewState(turns, maxChoice int) *State {
	return &State{turns: turns, maxChoice: maxChoice}
}

func (s *State) Clone() *State {
	choices := make([]int, len(s.choices), s.turns)
	copy(choices, s.choices)
	return &State{turns: s.turns, maxChoice: s.maxChoice, choices: choices}
}

func (s *State) String() string {
	return fmt.Sprintf("%v", s.choices)
}

// Choose advances the game by one turn.
func (s *State) Choose(n int) {
	s.choices = append(s.choices, n)
}

// Choices is the sequence chosen so far.
func (s *State) Choices() []int {
	return s.choices
}

// MaxChoice is the largest number choosable each turn, inclusive.
func (s *State) MaxChoice() int {
	return s.maxChoice
}

// Turns is the length of a full game.
func (s *State) Turns() int {
	return s.turns
}

// Choice is the number picked on one turn.
type Choice int

func (c Choice) Apply(state *State) {
	state.Choose(int(c))
}

// expansion enumerates choices from 0 up to the state's maximum.
type expansion struct {
	state *State
	next  int
}

// NewExpansion enumerates the legal choices at state, smallest first.
func NewExpansion(state *State) game.Expansion[Choice] {
	return &expansion{state: state}
}

func (e *expansion) HasNext() bool {
	return e.next <= e.state.maxChoice
}

func (e *expansion) Next() Choice {
	c := Choice(e.next)
	e.next++
	return c
}

type playout struct {
	state *State
	rng   *rand.Rand
}

// NewPlayout picks uniformly among the legal choices with a fixed-seed local
// generator.
func NewPlayout(state *State) game.Playout[Choice] {
	return &playout{state: state, rng: rand.New(rand.NewSource(PlayoutSeed))}
}

func (p *playout) Random(action *Choice) {
	*action = Choice(p.rng.Intn(p.state.maxChoice + 1))
}

// Score rates a final sequence against target: 1/turns points per matching
// position.
func Score(target []int) func(*State) float64 {
	return func(s *State) float64 {
		matches := 0
		for i, c := range s.choices {
			if c == target[i] {
				matches++
			}
		}
		return float64(matches) / float64(len(s.choices))
	}
}

// Rules bundles the game for the searcher. The score needs no per-node
// adjustment: there is only one player.
func Rules(target []int) game.Rules[*State, Choice] {
	return game.Rules[*State, Choice]{
		Expand:     NewExpansion,
		NewPlayout: NewPlayout,
		Terminal: func(s *State) bool {
			return len(s.choices) == s.turns
		},
		Score: Score(target),
		Adjust: func(_ *State, score float64) float64 {
			return score
		},
	}
}
