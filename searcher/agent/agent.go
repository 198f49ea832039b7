package agent

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// FindMove publishes candidate moves for state to sink until it is done or
	// ctx is, and returns search metrics (if collected).
	FindMove(ctx context.Context, state game.State, sink searcher.Sink) (metrics.SearchMetric, error)
}
