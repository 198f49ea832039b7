package game

import (
	"fmt"
	"isolation/meta"
	"strings"
)

// maxCells is the capacity of the closed-cell bitset.
const maxCells = 128

// knightMoves lists (column, row) offsets in the order actions are generated.
var knightMoves = [8][2]int{
	{1, -2}, {2, -1}, {2, 1}, {1, 2},
	{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
}

type bitset [2]uint64

func (b bitset) has(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b *bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// Board is a knight's Isolation position. Cells are indexed row by row
// (index = row*width + column). A cell is closed once a player has stood on
// it; the cells the players currently occupy are closed too.
//
// Board is a value type: Result copies it, so states never share memory.
type Board struct {
	width  int
	height int
	closed bitset
	locs   [2]int
	ply    int
}

type BoardOption func(b *boardSetup)

type boardSetup struct {
	width   int
	height  int
	blocked []int
	locs    [2]int
	ply     int
}

func WithSize(width, height int) BoardOption {
	return func(s *boardSetup) {
		s.width = width
		s.height = height
	}
}

// WithBlocked closes the given cells before play starts.
func WithBlocked(cells ...int) BoardOption {
	return func(s *boardSetup) {
		s.blocked = append(s.blocked, cells...)
	}
}

// WithLocations places both players. Pass NoLocation to leave a seat unplaced.
func WithLocations(first, second int) BoardOption {
	return func(s *boardSetup) {
		s.locs = [2]int{first, second}
	}
}

// WithPlyCount overrides the ply count, which otherwise equals the number of
// placed players.
func WithPlyCount(ply int) BoardOption {
	return func(s *boardSetup) {
		if ply >= 0 {
			s.ply = ply
		}
	}
}

// NewBoard returns an empty board of the default size unless options say
// otherwise. It panics on an impossible setup.
func NewBoard(options ...BoardOption) Board {
	setup := &boardSetup{
		width:  meta.BoardWidth,
		height: meta.BoardHeight,
		locs:   [2]int{NoLocation, NoLocation},
		ply:    -1,
	}
	for _, option := range options {
		option(setup)
	}

	if setup.width <= 0 || setup.height <= 0 || setup.width*setup.height > maxCells {
		panic(fmt.Sprintf("unsupported board size %dx%d", setup.width, setup.height))
	}

	b := Board{
		width:  setup.width,
		height: setup.height,
		locs:   setup.locs,
	}
	for _, cell := range setup.blocked {
		if !b.inBounds(cell) {
			panic(fmt.Sprintf("blocked cell %d is off the board", cell))
		}
		b.closed.set(cell)
	}

	placed := 0
	for _, loc := range b.locs {
		if loc == NoLocation {
			continue
		}
		if !b.inBounds(loc) {
			panic(fmt.Sprintf("location %d is off the board", loc))
		}
		if b.closed.has(loc) {
			panic(fmt.Sprintf("location %d is already closed", loc))
		}
		b.closed.set(loc)
		placed++
	}

	b.ply = placed
	if setup.ply >= 0 {
		b.ply = setup.ply
	}
	return b
}

func (b Board) Width() int {
	return b.width
}

func (b Board) Height() int {
	return b.height
}

// Cell returns the index of the cell at the given column and row.
func (b Board) Cell(col, row int) int {
	return row*b.width + col
}

func (b Board) Player() PlayerID {
	return PlayerID(b.ply % 2)
}

func (b Board) PlyCount() int {
	return b.ply
}

func (b Board) Location(player PlayerID) int {
	return b.locs[player]
}

func (b Board) Actions() []Action {
	cells := b.Liberties(b.locs[b.Player()])
	actions := make([]Action, len(cells))
	for i, cell := range cells {
		actions[i] = Action(cell)
	}
	return actions
}

// Result panics if the action targets a closed or off-board cell: Actions
// never yields one.
func (b Board) Result(action Action) State {
	cell := int(action)
	if !b.inBounds(cell) || b.closed.has(cell) {
		panic(fmt.Sprintf("illegal action %d", cell))
	}

	next := b
	next.closed.set(cell)
	next.locs[b.Player()] = cell
	next.ply++
	return next
}

func (b Board) Terminal() bool {
	return !b.hasLiberty(b.locs[b.Player()])
}

func (b Board) Utility(player PlayerID) float64 {
	if !b.Terminal() {
		return 0
	}
	// The player to move is stuck and loses
	if player == b.Player() {
		return Loss
	}
	return Win
}

func (b Board) Liberties(loc int) []int {
	if loc == NoLocation {
		cells := []int{}
		for cell := 0; cell < b.width*b.height; cell++ {
			if !b.closed.has(cell) {
				cells = append(cells, cell)
			}
		}
		return cells
	}

	cells := make([]int, 0, len(knightMoves))
	for _, move := range knightMoves {
		if cell, ok := b.jump(loc, move); ok && !b.closed.has(cell) {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (b Board) hasLiberty(loc int) bool {
	if loc == NoLocation {
		for cell := 0; cell < b.width*b.height; cell++ {
			if !b.closed.has(cell) {
				return true
			}
		}
		return false
	}
	for _, move := range knightMoves {
		if cell, ok := b.jump(loc, move); ok && !b.closed.has(cell) {
			return true
		}
	}
	return false
}

func (b Board) jump(loc int, move [2]int) (int, bool) {
	col := loc%b.width + move[0]
	row := loc/b.width + move[1]
	if col < 0 || col >= b.width || row < 0 || row >= b.height {
		return 0, false
	}
	return b.Cell(col, row), true
}

func (b Board) inBounds(cell int) bool {
	return cell >= 0 && cell < b.width*b.height
}

// String draws the board top row first: '1' and '2' are the players, '#' a
// closed cell and '.' an open one.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := b.Cell(col, row)
			switch {
			case cell == b.locs[0]:
				sb.WriteByte('1')
			case cell == b.locs[1]:
				sb.WriteByte('2')
			case b.closed.has(cell):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
			if col < b.width-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
