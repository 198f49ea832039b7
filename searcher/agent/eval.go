package agent

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that runs iterative deepening until
// interrupted.
func NewSearchAgent(searcher *searcher.Searcher) Agent {
	return searchAgent{searcher: searcher}
}

func (a searchAgent) FindMove(ctx context.Context, state game.State, sink searcher.Sink) (metrics.SearchMetric, error) {
	err := a.searcher.Deepen(ctx, state, sink)
	return a.searcher.Metrics(), err
}

type greedyAgent struct {
	searcher *searcher.Searcher
}

// NewGreedyAgent returns an agent that plays the move leaving it the best
// mobility after one ply.
func NewGreedyAgent(self game.PlayerID) Agent {
	return greedyAgent{searcher: searcher.NewSearcher(self)}
}

func (a greedyAgent) FindMove(ctx context.Context, state game.State, sink searcher.Sink) (metrics.SearchMetric, error) {
	action, value, err := a.searcher.BestAction(ctx, state, 1)
	if err != nil {
		return metrics.SearchMetric{}, err
	}
	sink.Publish(searcher.Decision{Action: action, Depth: 1, Value: value})
	return metrics.SearchMetric{MinDepth: 1, MaxDepth: 1, Depth: 1}, nil
}
