// Package metrics holds the record types produced by the experiments
// harness and a CSV writer for them.
package metrics

import (
	"time"

	"mcts/searcher"
)

// SearcherConfig identifies one search configuration under test.
type SearcherConfig struct {
	ID                 int
	MinIterations      int
	Duration           time.Duration
	Exploration        float64
	ExpansionThreshold int
	SelectionThreshold int
}

// GameRecord is the outcome of one full lock game played by one config.
type GameRecord struct {
	Config   int // SearcherConfig.ID
	Game     int
	Seed     int64
	Score    float64
	Duration time.Duration
}

// SearchRecord is the metric of one search within a game.
type SearchRecord struct {
	Config int // SearcherConfig.ID
	Game   int
	Move   int
	searcher.SearchMetric
}
