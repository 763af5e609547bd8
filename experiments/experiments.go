// Package experiments measures search quality and throughput on the
// combination-lock game across searcher configurations, and stores the
// results as CSV.
package experiments

import (
	"fmt"
	"math/rand"
	"time"

	"mcts/experiments/metrics"
	"mcts/game/lock"
	"mcts/searcher"

	"github.com/rs/zerolog/log"
	"github.com/seehuhn/mt19937"
	"gonum.org/v1/gonum/stat"
)

const (
	NumGames  = 10 // Per configuration
	Turns     = 10
	MaxChoice = 5
)

var iterationConfigs = []metrics.SearcherConfig{
	{ID: 1, MinIterations: 1000, Exploration: searcher.DefaultExploration, ExpansionThreshold: searcher.DefaultExpansionThreshold, SelectionThreshold: searcher.DefaultSelectionThreshold},
	{ID: 2, MinIterations: 2000, Exploration: searcher.DefaultExploration, ExpansionThreshold: searcher.DefaultExpansionThreshold, SelectionThreshold: searcher.DefaultSelectionThreshold},
	{ID: 3, MinIterations: 5000, Exploration: searcher.DefaultExploration, ExpansionThreshold: searcher.DefaultExpansionThreshold, SelectionThreshold: searcher.DefaultSelectionThreshold},
	{ID: 4, MinIterations: 10000, Exploration: searcher.DefaultExploration, ExpansionThreshold: searcher.DefaultExpansionThreshold, SelectionThreshold: searcher.DefaultSelectionThreshold},
}

var explorationConfigs = []metrics.SearcherConfig{
	{ID: 1, MinIterations: 5000, Exploration: 0.1, ExpansionThreshold: searcher.DefaultExpansionThreshold, SelectionThreshold: searcher.DefaultSelectionThreshold},
	{ID: 2, MinIterations: 5000, Exploration: 0.5, ExpansionThreshold: searcher.DefaultExpansionThreshold, SelectionThreshold: searcher.DefaultSelectionThreshold},
	{ID: 3, MinIterations: 5000, Exploration: 1.0, ExpansionThreshold: searcher.DefaultExpansionThreshold, SelectionThreshold: searcher.DefaultSelectionThreshold},
	{ID: 4, MinIterations: 5000, Exploration: 1.4, ExpansionThreshold: searcher.DefaultExpansionThreshold, SelectionThreshold: searcher.DefaultSelectionThreshold},
}

// RunIterationExperiment measures solve quality against the iteration
// budget.
func RunIterationExperiment() {
	runExperiment("iterations", iterationConfigs)
}

// RunExplorationExperiment measures solve quality against the UCT
// exploration constant.
func RunExplorationExperiment() {
	runExperiment("exploration", explorationConfigs)
}

func runExperiment(name string, configs []metrics.SearcherConfig) {
	log.Info().Msgf("starting %s experiment...", name)

	gameRecords := []metrics.GameRecord{}
	searchRecords := []metrics.SearchRecord{}
	for _, config := range configs {
		log.Info().Msgf("running config %d of %d: %+v", config.ID, len(configs), config)

		scores := make([]float64, 0, NumGames)
		throughputs := make([]float64, 0, NumGames)
		for i := 0; i < NumGames; i++ {
			seed := int64(i + 1)
			score, gameRecord, moveRecords := runGame(config, i+1, seed)
			gameRecords = append(gameRecords, gameRecord)
			searchRecords = append(searchRecords, moveRecords...)

			scores = append(scores, score)
			for _, record := range moveRecords {
				throughputs = append(throughputs, float64(record.Iterations)/record.SearchMetric.Duration.Seconds())
			}
		}

		meanScore, stddevScore := stat.MeanStdDev(scores, nil)
		meanThroughput := stat.Mean(throughputs, nil)
		log.Info().Msgf("config %d: score %.3f +/- %.3f, %.0f iterations/s", config.ID, meanScore, stddevScore, meanThroughput)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	err = writer.WriteConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store configs: %v", err))
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store game records: %v", err))
	}
	err = writer.WriteSearchRecords(searchRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store search records: %v", err))
	}
	log.Info().Msgf("stored results under %s", writer.BaseDir())
}

// runGame plays one full lock game with a fresh searcher per move and
// returns the final score against a target sequence drawn from seed.
func runGame(config metrics.SearcherConfig, game int, seed int64) (float64, metrics.GameRecord, []metrics.SearchRecord) {
	target := targetSequence(Turns, MaxChoice, seed)
	state := lock.NewState(Turns, MaxChoice)
	rules := lock.Rules(target)

	searchRecords := make([]metrics.SearchRecord, 0, Turns)
	start := time.Now()
	for move := 0; move < Turns; move++ {
		s := searcher.New(state, rules,
			searcher.WithDuration(config.Duration),
			searcher.WithMinIterations(config.MinIterations),
			searcher.WithExploration(config.Exploration),
			searcher.WithExpansionThreshold(config.ExpansionThreshold),
			searcher.WithSelectionThreshold(config.SelectionThreshold),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		)
		action := s.FindBestAction()
		action.Apply(state)

		searchRecords = append(searchRecords, metrics.SearchRecord{
			Config:       config.ID,
			Game:         game,
			Move:         move,
			SearchMetric: s.LastMetric(),
		})
	}

	score := lock.Score(target)(state)
	record := metrics.GameRecord{
		Config:   config.ID,
		Game:     game,
		Seed:     seed,
		Score:    score,
		Duration: time.Since(start),
	}
	return score, record, searchRecords
}

// targetSequence draws the hidden sequence the searcher has to guess.
func targetSequence(turns, maxChoice int, seed int64) []int {
	source := mt19937.New()
	source.Seed(seed)
	rng := rand.New(source)

	target := make([]int, turns)
	for i := range target {
		target[i] = rng.Intn(maxChoice + 1)
	}
	return target
}
