package engine

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
)

// NoWinner is reported for a game stopped before either seat was stuck.
const NoWinner game.PlayerID = -1

type Runner interface {
	// Run plays a game till a seat cannot move or forfeits, or ctx is done
	Run(ctx context.Context) (winner game.PlayerID, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
