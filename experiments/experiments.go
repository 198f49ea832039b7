package experiments

import (
	"context"
	"fmt"
	"isolation/config"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Run plays every match up of cfg, alternating the starting agent between
// games, and stores the records. It returns the directory written to.
func Run(ctx context.Context, cfg *config.Config) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.Matchups {
		config1, _ := cfg.Agent(matchup[0])
		config2, _ := cfg.Agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.Matchups), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			if ctx.Err() != nil {
				return "", fmt.Errorf("experiment stopped: %w", ctx.Err())
			}
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(cfg.Matchups), i+1, cfg.Games)

			seats := []metrics.AgentConfig{config1, config2}
			if i%2 == 1 {
				seats[0], seats[1] = seats[1], seats[0]
			}

			count++
			winner, gameMetric, moveMetrics := runGame(ctx, cfg, seats, cfg.Seed+uint64(count))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     seats[0].ID,
				Agent2:     seats[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      seats[mm.Player].ID,
					MoveMetric: mm,
				})
			}

			if winner == engine.NoWinner {
				log.Warn().Msgf("matchup %d of %d game %d ended without a winner", mi+1, len(cfg.Matchups), i+1)
			} else {
				log.Info().Msgf("completed matchup %d of %d game %d with winner: agent %d", mi+1, len(cfg.Matchups), i+1, seats[winner].ID)
			}
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.Matchups))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	return store(cfg.Output, cfg.Name, cfg.Agents, gameRecords, moveRecords)
}

func store(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if gameRecords != nil {
		err = writer.WriteGameRecords(gameRecords)
		if err != nil {
			return "", fmt.Errorf("failed to write game records: %w", err)
		}
		log.Info().Msg("stored game records")
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, cfg *config.Config, seats []metrics.AgentConfig, seed uint64) (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		createAgent(seats[0], 0, seed),
		createAgent(seats[1], 1, seed),
	}
	state := game.NewBoard(game.WithSize(cfg.Width, cfg.Height))
	e := engine.LocalEngine(agents, state, cfg.Budget)

	return e.Run(ctx)
}

// createAgent builds the agent for seat. A zero AgentConfig.Seed draws from
// the game seed instead.
func createAgent(config metrics.AgentConfig, seat game.PlayerID, seed uint64) agent.Agent {
	if config.Seed != 0 {
		seed = config.Seed
	}
	seed += uint64(seat)

	switch config.Kind {
	case metrics.SearchAgent:
		return agent.NewSearchAgent(createSearcher(config, seat, seed))
	case metrics.GreedyAgent:
		return agent.NewGreedyAgent(seat)
	case metrics.RandomAgent:
		return agent.NewRandomAgent(seed)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func createSearcher(config metrics.AgentConfig, seat game.PlayerID, seed uint64) *searcher.Searcher {
	options := []searcher.Option{}

	if config.MinDepth > 0 || config.MaxDepth > 0 {
		options = append(options, searcher.WithDepthRange(config.MinDepth, config.MaxDepth))
	}
	if config.NoPruning {
		options = append(options, searcher.WithPruning(false))
	}

	options = append(options, searcher.WithSeed(seed), searcher.WithMetrics())
	return searcher.NewSearcher(seat, options...)
}
