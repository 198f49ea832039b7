package agent

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, state game.State, sink searcher.Sink) (metrics.SearchMetric, error) {
	actions := state.Actions()
	if len(actions) == 0 {
		return metrics.SearchMetric{}, searcher.ErrTerminal
	}
	sink.Publish(searcher.Decision{Action: actions[a.rng.Intn(len(actions))]})
	return metrics.SearchMetric{}, nil
}
