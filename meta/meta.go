// meta/meta.go
package meta

import "time"

// BoardWidth defines the number of columns of the default board.
const BoardWidth = 11

// BoardHeight defines the number of rows of the default board.
const BoardHeight = 9

// OpeningPlies defines how many plies are played without searching.
const OpeningPlies = 2

// MinDepth defines the first depth limit tried by iterative deepening.
const MinDepth = 3

// MaxDepth caps iterative deepening.
const MaxDepth = 31

// TimeLimit defines the default wall-clock budget per decision.
const TimeLimit = 150 * time.Millisecond

// MaxTurns bounds a game. Every move closes a cell and no supported board
// holds more than 128.
const MaxTurns = 128
