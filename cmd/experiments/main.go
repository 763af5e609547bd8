// Runs the searcher experiments over the combination-lock game.
package main

import (
	"flag"
	"os"

	"mcts/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	name := flag.String("experiment", "iterations", "experiment to run: iterations or exploration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *name {
	case "iterations":
		experiments.RunIterationExperiment()
	case "exploration":
		experiments.RunExplorationExperiment()
	default:
		log.Fatal().Msgf("unknown experiment %q", *name)
	}
}
