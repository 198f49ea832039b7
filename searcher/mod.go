package searcher

import (
	"errors"
	"isolation/game"
)

var (
	ErrTerminal = errors.New("searcher: no legal action in a terminal state")
	ErrDepth    = errors.New("searcher: depth limit must be at least 1")
)

// Evaluate scores a non-terminal state from the perspective of self. Higher is
// better for self.
type Evaluate func(state game.State, self game.PlayerID) float64

// Mobility is the difference between the number of moves available to self and
// to its opponent.
func Mobility(state game.State, self game.PlayerID) float64 {
	own := state.Liberties(state.Location(self))
	opp := state.Liberties(state.Location(self.Opponent()))
	return float64(len(own) - len(opp))
}
