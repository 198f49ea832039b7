package searcher

import (
	"context"
	"fmt"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"math"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher picks actions for one seat with depth-limited negamax search.
type Searcher struct {
	self         game.PlayerID
	evaluate     Evaluate
	pruning      bool
	minDepth     int
	maxDepth     int
	openingPlies int
	rng          *rand.Rand
	metrics      metrics.Collector
	phase        Phase
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithPruning switches between alpha-beta (the default) and plain negamax.
func WithPruning(pruning bool) Option {
	return func(s *Searcher) {
		s.pruning = pruning
	}
}

func WithDepthRange(minDepth, maxDepth int) Option {
	return func(s *Searcher) {
		if minDepth > 0 {
			s.minDepth = minDepth
		}
		if maxDepth > 0 {
			s.maxDepth = maxDepth
		}
	}
}

func WithOpeningPlies(plies int) Option {
	return func(s *Searcher) {
		if plies >= 0 {
			s.openingPlies = plies
		}
	}
}

// WithSeed fixes the source used to pick fallback actions.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(self game.PlayerID, options ...Option) *Searcher {
	if self != 0 && self != 1 {
		panic(fmt.Sprintf("invalid seat %d", self))
	}

	s := &Searcher{ // Default values
		self:         self,
		evaluate:     Mobility,
		pruning:      true,
		minDepth:     meta.MinDepth,
		maxDepth:     meta.MaxDepth,
		openingPlies: meta.OpeningPlies,
		rng:          rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:      metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.maxDepth < s.minDepth {
		panic(fmt.Sprintf("max depth %d is below min depth %d", s.maxDepth, s.minDepth))
	}
	return s
}

func (sr *Searcher) Self() game.PlayerID {
	return sr.self
}

// Phase reports where the last call to Deepen ended.
func (sr *Searcher) Phase() Phase {
	return sr.phase
}

// Metrics returns the statistics of the last call to Deepen. They are zero
// unless the searcher was built WithMetrics.
func (sr *Searcher) Metrics() metrics.SearchMetric {
	return sr.metrics.Complete()
}

func (sr *Searcher) newSearch(ctx context.Context) *search {
	return &search{
		ctx:      ctx,
		self:     sr.self,
		evaluate: sr.evaluate,
		metrics:  sr.metrics,
	}
}

// BestAction searches state to the given depth and returns the action with
// the highest value for the player to move, along with that value. Ties go to
// the action listed first by state.Actions(). It returns ctx.Err() if the
// context is done before the search completes.
func (sr *Searcher) BestAction(ctx context.Context, state game.State, depth int) (game.Action, float64, error) {
	if depth < 1 {
		return 0, 0, ErrDepth
	}
	if state.Terminal() {
		return 0, 0, ErrTerminal
	}
	return sr.selectRoot(sr.newSearch(ctx), state, depth)
}

func (sr *Searcher) selectRoot(s *search, state game.State, depth int) (game.Action, float64, error) {
	color := 1.0
	if state.Player() != sr.self {
		color = -1.0
	}

	var best game.Action
	bestValue := math.Inf(-1)
	for i, action := range state.Actions() {
		child := state.Result(action)

		var value float64
		if sr.pruning {
			value = -s.alphabeta(child, depth-1, math.Inf(-1), math.Inf(1), -color)
		} else {
			value = -s.negamax(child, depth-1, -color)
		}
		if err := s.ctx.Err(); err != nil {
			return 0, 0, err
		}

		if i == 0 || value > bestValue {
			best, bestValue = action, value
		}
	}
	return best, bestValue, nil
}
