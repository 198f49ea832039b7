package experiments

import (
	"context"
	"fmt"
	"isolation/config"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RunThroughput gives every search agent of cfg one budgeted decision on each
// of the same random positions and stores how far each got.
func RunThroughput(ctx context.Context, cfg *config.Config, positions int) (string, error) {
	states := randomPositions(cfg, positions)
	configs := []metrics.AgentConfig{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting throughput experiment over %d positions...", len(states))

	for _, config := range cfg.Agents {
		if config.Kind != metrics.SearchAgent {
			continue
		}
		configs = append(configs, config)

		totalDepth, totalNodes := 0, 0
		for i, state := range states {
			sr := createSearcher(config, state.Player(), cfg.Seed+uint64(i))
			sink := searcher.NewLatest()

			decisionCtx, cancel := context.WithTimeout(ctx, cfg.Budget)
			err := sr.Deepen(decisionCtx, state, sink)
			cancel()
			if err != nil {
				return "", fmt.Errorf("agent %d failed on position %d: %w", config.ID, i+1, err)
			}
			if ctx.Err() != nil {
				return "", fmt.Errorf("experiment stopped: %w", ctx.Err())
			}

			decision, _ := sink.Load()
			searchMetric := sr.Metrics()
			totalDepth += searchMetric.Depth
			totalNodes += searchMetric.Nodes
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:  i + 1,
				Agent: config.ID,
				MoveMetric: metrics.MoveMetric{
					Step:         state.PlyCount() + 1,
					Player:       int(state.Player()),
					Action:       int(decision.Action),
					SearchMetric: searchMetric,
				},
			})
		}

		if len(states) > 0 {
			log.Info().Msgf("agent %d: mean depth %.2f, %.0f nodes/s",
				config.ID,
				float64(totalDepth)/float64(len(states)),
				float64(totalNodes)/(time.Duration(len(states))*cfg.Budget).Seconds())
		}
	}

	log.Info().Msg("completed throughput experiment")

	return store(cfg.Output, cfg.Name+"_throughput", configs, nil, moveRecords)
}

// randomPositions plays random moves from the empty board past the opening
// and keeps up to n positions where the mover is not stuck.
func randomPositions(cfg *config.Config, n int) []game.State {
	rng := rand.New(rand.NewSource(cfg.Seed))
	cells := cfg.Width * cfg.Height
	states := []game.State{}

	for attempt := 0; len(states) < n && attempt < 10*n; attempt++ {
		var state game.State = game.NewBoard(game.WithSize(cfg.Width, cfg.Height))
		plies := meta.OpeningPlies + rng.Intn(cells/4+1)
		for p := 0; p < plies && !state.Terminal(); p++ {
			actions := state.Actions()
			state = state.Result(actions[rng.Intn(len(actions))])
		}
		if state.Terminal() {
			continue
		}
		states = append(states, state)
	}
	return states
}
