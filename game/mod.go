package game

import "math"

// PlayerID identifies a seat: 0 moves first, 1 moves second.
type PlayerID int

func (p PlayerID) Opponent() PlayerID {
	return 1 - p
}

// Action is the destination cell of a move.
type Action int

// NoLocation marks a player that has not been placed on the board yet.
const NoLocation = -1

var (
	Win  = math.Inf(1)
	Loss = math.Inf(-1)
)

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() PlayerID
	PlyCount() int
	Location(player PlayerID) int
	// Actions returns the legal moves of the player to move, empty iff Terminal.
	Actions() []Action
	Result(action Action) State
	Terminal() bool
	// Utility is Win or Loss from the perspective of player on a terminal
	// state, 0 otherwise.
	Utility(player PlayerID) float64
	// Liberties returns the open cells reachable from loc in one move.
	Liberties(loc int) []int
}
