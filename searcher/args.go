package searcher

import "time"

// Default search parameters.

// DefaultDuration is the wall-clock budget per FindBestAction call.
const DefaultDuration = 500 * time.Millisecond

// DefaultMinIterations lets the budget alone end the search.
const DefaultMinIterations = 0

// DefaultExploration is the C constant in the UCT formula.
const DefaultExploration = 0.5

// DefaultExpansionThreshold is the number of visits a leaf must accumulate
// before an expansion is spent on it.
const DefaultExpansionThreshold = 5

// DefaultSelectionThreshold is the number of visits below which selection at
// a node is uniform-random instead of UCT.
const DefaultSelectionThreshold = 5

// DefaultSeed seeds the per-search generator.
const DefaultSeed int64 = 42

// Config holds the tunable parameters of a search. New starts from the
// defaults above and the With options override them; a zero value given to
// an option is kept, a negative one is ignored.
type Config struct {
	duration           time.Duration
	minIterations      int
	exploration        float64
	expansionThreshold int
	selectionThreshold int
	seed               int64
	metrics            bool
}

func defaultConfig() Config {
	return Config{
		duration:           DefaultDuration,
		minIterations:      DefaultMinIterations,
		exploration:        DefaultExploration,
		expansionThreshold: DefaultExpansionThreshold,
		selectionThreshold: DefaultSelectionThreshold,
		seed:               DefaultSeed,
	}
}

// Option adjusts one search parameter.
type Option func(*Config)

// WithDuration sets the wall-clock budget per search. The budget is checked
// at iteration boundaries only, so one iteration may overrun it.
func WithDuration(duration time.Duration) Option {
	return func(c *Config) {
		if duration >= 0 {
			c.duration = duration
		}
	}
}

// WithMinIterations forces at least n iterations per search, ignoring the
// clock until they complete. Combined with a zero duration this makes the
// search fully deterministic.
func WithMinIterations(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.minIterations = n
		}
	}
}

// WithExploration sets the C constant of the UCT formula.
func WithExploration(c float64) Option {
	return func(cfg *Config) {
		if c >= 0 {
			cfg.exploration = c
		}
	}
}

// WithExpansionThreshold sets the minimum visits on a leaf before it is
// expanded; below it the leaf itself is the playout origin.
func WithExpansionThreshold(visits int) Option {
	return func(c *Config) {
		if visits >= 0 {
			c.expansionThreshold = visits
		}
	}
}

// WithSelectionThreshold sets the minimum visits at a node before UCT
// replaces uniform-random child selection.
func WithSelectionThreshold(visits int) Option {
	return func(c *Config) {
		if visits >= 0 {
			c.selectionThreshold = visits
		}
	}
}

// WithSeed seeds the per-search generator. Searches with the same seed, the
// same configuration, and deterministic game hooks return the same action.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.seed = seed
	}
}

// WithMetrics collects per-search metrics, retrievable through LastMetric.
func WithMetrics() Option {
	return func(c *Config) {
		c.metrics = true
	}
}
