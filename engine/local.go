package engine

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/searcher/agent"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

// Engine referees a game between two agents, seated in order, giving each a
// fixed wall-clock budget per move.
type Engine struct {
	State  game.State
	Agents []agent.Agent
	Budget time.Duration
}

var _ Runner = (*Engine)(nil)

func LocalEngine(agents []agent.Agent, state game.State, budget time.Duration) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if budget <= 0 {
		budget = meta.TimeLimit
	}

	return &Engine{
		State:  state,
		Agents: agents,
		Budget: budget,
	}
}

// Run executes the entire game loop until a seat is stuck or forfeits.
func (e *Engine) Run(ctx context.Context) (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.State.Player()),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}
	winner := NoWinner

	log.Debug().Msgf("player %d is starting", e.State.Player())

	for turn := 1; turn <= meta.MaxTurns; turn++ {
		if e.State.Terminal() {
			winner = e.State.Player().Opponent()
			break
		}
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msgf("game stopped at turn %d", turn)
			break
		}

		player := e.State.Player()
		action, searchMetric, ok := e.turn(ctx, player)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(player),
			Action:       int(action),
			Forfeit:      !ok,
			SearchMetric: searchMetric,
		})
		if !ok {
			winner = player.Opponent()
			break
		}

		e.State = e.State.Result(action)
	}

	gameMetric.Winner = int(winner)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves, winner: %d", gameMetric.TotalMoves, winner)

	return winner, gameMetric, moveMetrics
}

// turn asks the agent of player for a move and takes whatever it last
// published when the budget ran out. An agent that published nothing legal
// forfeits.
func (e *Engine) turn(ctx context.Context, player game.PlayerID) (game.Action, metrics.SearchMetric, bool) {
	ctx, cancel := context.WithTimeout(ctx, e.Budget)
	defer cancel()

	type result struct {
		metric metrics.SearchMetric
		err    error
	}
	sink := searcher.NewLatest()
	done := make(chan result, 1)
	go func() {
		metric, err := e.Agents[player].FindMove(ctx, e.State, sink)
		done <- result{metric: metric, err: err}
	}()

	var res result
	var decision searcher.Decision
	var ok bool
	select {
	case res = <-done:
		decision, ok = sink.Load()
	case <-ctx.Done():
		decision, ok = sink.Load()
		// The agent owns its searcher until it returns
		res = <-done
	}

	if res.err != nil {
		log.Warn().Err(res.err).Msgf("player %d failed to move, forfeiting", player)
		return game.Action(game.NoLocation), res.metric, false
	}
	if !ok {
		log.Warn().Msgf("player %d published no move, forfeiting", player)
		return game.Action(game.NoLocation), res.metric, false
	}
	if !slices.Contains(e.State.Actions(), decision.Action) {
		log.Warn().Msgf("player %d chose illegal action %d, forfeiting", player, decision.Action)
		return decision.Action, res.metric, false
	}

	log.Debug().Msgf("player %d plays %d (depth %d, value %.1f)", player, decision.Action, decision.Depth, decision.Value)
	return decision.Action, res.metric, true
}
