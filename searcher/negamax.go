package searcher

import (
	"context"
	"isolation/experiments/metrics"
	"isolation/game"
	"math"
)

// search holds everything the recursion needs besides its arguments. Color is
// +1 when the value of the current node must be expressed from self's
// perspective and -1 when from the opponent's.
type search struct {
	ctx      context.Context
	self     game.PlayerID
	evaluate Evaluate
	metrics  metrics.Collector

	// Heuristic leaves reached since the last reset. Zero after a full
	// iteration means every line ended in a terminal state.
	estimates int
}

// interrupted is checked at every node expansion. Values returned after it
// turns true are meaningless and must be discarded by the caller.
func (s *search) interrupted() bool {
	return s.ctx.Err() != nil
}

func (s *search) leaf(state game.State, depth int, color float64) (float64, bool) {
	if state.Terminal() {
		return color * state.Utility(s.self), true
	}
	if depth <= 0 {
		s.estimates++
		s.metrics.AddEvaluation()
		return color * s.evaluate(state, s.self), true
	}
	return 0, false
}

func (s *search) negamax(state game.State, depth int, color float64) float64 {
	if s.interrupted() {
		return 0
	}
	s.metrics.AddNode()

	if value, ok := s.leaf(state, depth, color); ok {
		return value
	}

	best := math.Inf(-1)
	for _, action := range state.Actions() {
		best = max(best, -s.negamax(state.Result(action), depth-1, -color))
	}
	return best
}

// alphabeta returns the negamax value of state whenever it lies strictly
// inside (alpha, beta), and a bound on it otherwise.
func (s *search) alphabeta(state game.State, depth int, alpha, beta, color float64) float64 {
	if s.interrupted() {
		return 0
	}
	s.metrics.AddNode()

	if value, ok := s.leaf(state, depth, color); ok {
		return value
	}

	best := math.Inf(-1)
	for _, action := range state.Actions() {
		value := -s.alphabeta(state.Result(action), depth-1, -beta, -alpha, -color)
		best = max(best, value)
		alpha = max(alpha, value)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}
