package searcher

import (
	"context"
	"isolation/game"

	"github.com/rs/zerolog/log"
)

type Phase int

const (
	Opening Phase = iota
	Deepening
	Interrupted
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Deepening:
		return "deepening"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Deepen publishes a fallback action to sink, then searches state at
// increasing depth limits and publishes the best action of every depth it
// completes. It returns once ctx is done, the depth cap is reached or the
// whole game tree has been resolved. Being interrupted is not an error.
//
// During the opening plies only the fallback is published.
func (sr *Searcher) Deepen(ctx context.Context, state game.State, sink Sink) error {
	if state.Terminal() {
		return ErrTerminal
	}
	sr.metrics.Start(sr.minDepth, sr.maxDepth, sr.pruning)

	actions := state.Actions()
	fallback := actions[sr.rng.Intn(len(actions))]
	sink.Publish(Decision{Action: fallback})

	if state.PlyCount() < sr.openingPlies {
		sr.phase = Opening
		sr.metrics.SetOpening(true)
		log.Debug().Msgf("player %d: opening ply %d, playing %d unsearched", sr.self, state.PlyCount(), fallback)
		return nil
	}

	sr.phase = Deepening
	s := sr.newSearch(ctx)
	for depth := sr.minDepth; depth <= sr.maxDepth; depth++ {
		s.estimates = 0
		action, value, err := sr.selectRoot(s, state, depth)
		if err != nil {
			sr.phase = Interrupted
			log.Debug().Msgf("player %d: interrupted at depth %d: %v", sr.self, depth, err)
			return nil
		}

		sink.Publish(Decision{Action: action, Depth: depth, Value: value})
		sr.metrics.CompleteDepth(depth)
		log.Debug().Msgf("player %d: depth %d complete, action=%d value=%v", sr.self, depth, action, value)

		if s.estimates == 0 {
			log.Debug().Msgf("player %d: game tree resolved at depth %d", sr.self, depth)
			break
		}
	}
	return nil
}
