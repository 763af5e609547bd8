// Self-play tic-tac-toe demo: two searchers alternate on one board until
// the game ends. Optionally dumps the final search tree as Graphviz.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"mcts/game/tictactoe"
	"mcts/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	movetime := flag.Duration("movetime", 100*time.Millisecond, "time budget per move")
	iterations := flag.Int("iterations", 0, "minimum iterations per move")
	seed := flag.Int64("seed", searcher.DefaultSeed, "search seed")
	dotFile := flag.String("dot", "", "write the last search tree to this .dot file")
	debug := flag.Bool("debug", false, "log every search")

	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	board := tictactoe.NewBoard()
	fmt.Println(colorize(board.String()))

	var last *searcher.Searcher[*tictactoe.Board, tictactoe.Move]
	for !board.Over() {
		player := board.Turn()
		s := searcher.New(board, tictactoe.Rules(player),
			searcher.WithDuration(*movetime),
			searcher.WithMinIterations(*iterations),
			searcher.WithSeed(*seed),
		)
		move := s.FindBestAction()
		move.Apply(board)
		last = s

		fmt.Printf("\n%s plays %s\n%s\n", player, move, colorize(board.String()))
	}

	switch winner := board.Winner(); winner {
	case tictactoe.None:
		fmt.Println("\ndraw")
	default:
		fmt.Printf("\n%s wins\n", winner)
	}

	if *dotFile != "" && last != nil {
		err := writeDot(*dotFile, last)
		if err != nil {
			log.Error().Msgf("failed to write tree dump: %v", err)
			os.Exit(1)
		}
		log.Info().Msgf("wrote search tree to %s", *dotFile)
	}
}

func writeDot(path string, s *searcher.Searcher[*tictactoe.Board, tictactoe.Move]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return searcher.WriteDot(f, s.Root())
}

// colorize marks crosses red and circles blue on capable terminals.
func colorize(board string) string {
	var builder strings.Builder
	for _, r := range board {
		switch r {
		case 'X':
			builder.WriteString(termenv.String("X").Foreground(termenv.ANSIBrightRed).String())
		case 'O':
			builder.WriteString(termenv.String("O").Foreground(termenv.ANSIBrightBlue).String())
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
