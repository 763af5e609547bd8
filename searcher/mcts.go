package searcher

import (
	"math"
	"math/rand"
	"time"

	"mcts/game"

	"github.com/rs/zerolog/log"
	"github.com/seehuhn/mt19937"
)

// Searcher finds the best action at a state by Monte Carlo tree search. One
// Searcher serves repeated calls on the same root position; every call to
// FindBestAction builds a fresh tree and a freshly seeded generator, so equal
// configurations return equal actions.
//
// A Searcher is single-threaded: the whole search runs on the caller's
// goroutine and no state is shared between instances.
type Searcher[S game.State[S], A game.Action[S]] struct {
	rules     game.Rules[S, A]
	config    Config
	rootState S

	root       *Node[S, A]
	rng        *rand.Rand
	nextID     uint32
	metrics    Collector
	lastMetric SearchMetric
}

// New builds a searcher rooted at a clone of state. The rules supply every
// game-specific hook; options override the default parameters and may be
// amended later through Configure.
func New[S game.State[S], A game.Action[S]](state S, rules game.Rules[S, A], options ...Option) *Searcher[S, A] {
	s := &Searcher[S, A]{
		rules:     rules,
		config:    defaultConfig(),
		rootState: state.Clone(),
	}
	s.Configure(options...)
	return s
}

// Configure applies options; valid any time before FindBestAction.
func (s *Searcher[S, A]) Configure(options ...Option) {
	for _, option := range options {
		option(&s.config)
	}
	if s.config.metrics {
		if _, ok := s.metrics.(*collector); !ok {
			s.metrics = NewCollector()
		}
	} else {
		s.metrics = NewDummyCollector()
	}
}

// FindBestAction runs the search and returns the recommended action. The
// loop iterates until the time budget is spent and at least the configured
// minimum number of iterations completed. The result is the incoming action
// of the root child with the highest mean score, first in insertion order on
// ties. If the search never expanded the root, a single random playout
// action is returned instead.
func (s *Searcher[S, A]) FindBestAction() A {
	source := mt19937.New()
	source.Seed(s.config.seed)
	s.rng = rand.New(source)
	s.nextID = 0

	var zero A
	s.root = newNode(0, s.rootState.Clone(), nil, zero, s.rules.Expand)

	s.metrics.Start()
	iterations := 0
	start := time.Now()
	for time.Since(start) < s.config.duration || iterations < s.config.minIterations {
		iterations++
		s.iterate()
		s.metrics.AddIteration()
	}
	s.lastMetric = s.metrics.Complete(int(s.nextID) + 1)

	best := s.bestChild()
	if best == nil {
		// No expansion took place, fall back to a random legal action.
		log.Warn().Msgf("search expanded no root children after %d iterations, returning a random action", iterations)
		var action A
		state := s.rootState.Clone()
		s.rules.NewPlayout(state).Random(&action)
		return action
	}

	log.Debug().Msgf("search completed %d iterations in %s, best child id=%d visits=%d mean=%.3f",
		iterations, time.Since(start), best.id, best.visits, best.MeanScore())
	return best.action
}

// Root gives observers read-only access to the tree of the last search.
// Valid only between searches; the next FindBestAction call discards it.
func (s *Searcher[S, A]) Root() *Node[S, A] {
	return s.root
}

// LastMetric reports the metrics of the last search. Zero unless the
// searcher was configured WithMetrics.
func (s *Searcher[S, A]) LastMetric() SearchMetric {
	return s.lastMetric
}

// iterate runs one selection / expansion / simulation / backpropagation
// cycle.
func (s *Searcher[S, A]) iterate() {
	// Selection: descend while every legal child exists.
	node := s.root
	depth := 0
	for !node.shouldExpand() {
		node = s.selectChild(node)
		depth++
	}
	s.metrics.ReachDepth(depth)

	// A terminal node is scored directly, no expansion or playout. So is a
	// childless node whose enumerator yields no action (a stuck position).
	if s.rules.Terminal(node.state) || (len(node.children) == 0 && !node.expansion.HasNext()) {
		s.metrics.AddTerminalHit()
		s.backpropagate(node, s.rules.Score(node.state))
		return
	}

	// Expansion, once the leaf has been sampled often enough. Below the
	// threshold the leaf itself is the playout origin.
	origin := node
	if node.visits >= s.config.expansionThreshold {
		origin = s.expand(node)
	}

	s.backpropagate(origin, s.simulate(origin))
}

// expand draws the next untried action at parent, applies it to a clone of
// the parent's state, and links the resulting child.
func (s *Searcher[S, A]) expand(parent *Node[S, A]) *Node[S, A] {
	action := parent.nextAction()
	state := parent.state.Clone()
	action.Apply(state)

	s.nextID++
	child := newNode(s.nextID, state, parent, action, s.rules.Expand)
	parent.addChild(child)
	s.metrics.AddExpansion()
	return child
}

// simulate plays random actions from a clone of origin's state until the
// game ends, and returns the terminal score. A fresh playout generator is
// constructed per action; construction is required to be cheap.
func (s *Searcher[S, A]) simulate(origin *Node[S, A]) float64 {
	state := origin.state.Clone()
	var action A
	for !s.rules.Terminal(state) {
		s.rules.NewPlayout(state).Random(&action)
		action.Apply(state)
	}
	s.metrics.AddPlayout()
	return s.rules.Score(state)
}

// backpropagate walks from origin up to and including the root, updating
// each node with the score adjusted for that node.
func (s *Searcher[S, A]) backpropagate(origin *Node[S, A], score float64) {
	for node := origin; node != nil; node = node.parent {
		node.update(s.rules.Adjust(node.state, score))
	}
}

// bestChild is the root child with the highest mean score, nil when the root
// has none.
func (s *Searcher[S, A]) bestChild() *Node[S, A] {
	var best *Node[S, A]
	bestScore := math.Inf(-1)
	for _, child := range s.root.children {
		if score := child.MeanScore(); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}
