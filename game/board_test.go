package game

import (
	"isolation/meta"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("empty default board", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, meta.BoardWidth, b.Width())
		require.Equal(t, meta.BoardHeight, b.Height())
		require.Equal(t, 0, b.PlyCount())
		require.Equal(t, PlayerID(0), b.Player())
		require.Equal(t, NoLocation, b.Location(0))
		require.Equal(t, NoLocation, b.Location(1))
	})

	t.Run("placed players set the ply count", func(t *testing.T) {
		b := NewBoard(WithLocations(12, 30))

		require.Equal(t, 2, b.PlyCount(), "Both seats placed means two plies played")
		require.Equal(t, PlayerID(0), b.Player())
		require.NotContains(t, b.Liberties(NoLocation), 12, "Occupied cells should be closed")
		require.NotContains(t, b.Liberties(NoLocation), 30, "Occupied cells should be closed")
	})

	t.Run("ply count override", func(t *testing.T) {
		b := NewBoard(WithLocations(12, 30), WithPlyCount(5))

		require.Equal(t, 5, b.PlyCount())
		require.Equal(t, PlayerID(1), b.Player())
	})

	t.Run("panics on oversized board", func(t *testing.T) {
		require.Panics(t, func() {
			NewBoard(WithSize(12, 12))
		}, "Boards larger than the bitset should be rejected")
	})

	t.Run("panics on overlapping placement", func(t *testing.T) {
		require.Panics(t, func() {
			NewBoard(WithBlocked(5), WithLocations(5, NoLocation))
		})
	})
}

func TestBoardActions(t *testing.T) {
	t.Run("opening moves are every open cell", func(t *testing.T) {
		b := NewBoard()
		actions := b.Actions()

		require.Len(t, actions, meta.BoardWidth*meta.BoardHeight)
		require.Equal(t, Action(0), actions[0])
		require.Equal(t, Action(meta.BoardWidth*meta.BoardHeight-1), actions[len(actions)-1])
	})

	t.Run("second placement excludes the first player's cell", func(t *testing.T) {
		b := NewBoard().Result(Action(40))

		require.Equal(t, PlayerID(1), b.Player())
		require.Len(t, b.Actions(), meta.BoardWidth*meta.BoardHeight-1)
		require.NotContains(t, b.Actions(), Action(40))
	})

	t.Run("moves follow knight jumps", func(t *testing.T) {
		b := NewBoard(WithLocations(0, 98))

		require.Equal(t, []Action{13, 23}, b.Actions(), "A corner knight has two jumps")
	})
}

func TestBoardResult(t *testing.T) {
	t.Run("does not mutate the receiver", func(t *testing.T) {
		b := NewBoard(WithLocations(0, 98))

		next := b.Result(Action(13))

		require.Equal(t, 13, next.Location(0))
		require.Equal(t, 3, next.PlyCount())
		require.Equal(t, PlayerID(1), next.Player())
		require.Equal(t, 0, b.Location(0), "Original state should be untouched")
		require.Equal(t, 2, b.PlyCount(), "Original state should be untouched")
		require.Equal(t, []Action{13, 23}, b.Actions(), "Original state should be untouched")
	})

	t.Run("closes the destination cell", func(t *testing.T) {
		b := NewBoard(WithLocations(0, 98)).Result(Action(13))

		require.NotContains(t, b.Liberties(NoLocation), 13)
		require.NotContains(t, b.Liberties(0), 13)
	})

	t.Run("panics on a closed cell", func(t *testing.T) {
		b := NewBoard(WithBlocked(13), WithLocations(0, 98))

		require.Panics(t, func() {
			b.Result(Action(13))
		})
	})
}

func TestBoardLiberties(t *testing.T) {
	t.Run("blocked cells are excluded", func(t *testing.T) {
		b := NewBoard(WithBlocked(13))

		require.Equal(t, []int{23}, b.Liberties(0))
	})

	t.Run("liberties are open and on the board", func(t *testing.T) {
		b := NewBoard(WithSize(5, 5), WithBlocked(7, 11), WithLocations(12, 0))
		open := b.Liberties(NoLocation)

		for loc := 0; loc < 25; loc++ {
			for _, cell := range b.Liberties(loc) {
				require.GreaterOrEqual(t, cell, 0)
				require.Less(t, cell, 25)
				require.Contains(t, open, cell, "Liberty %d from %d should be an open cell", cell, loc)
			}
		}
	})

	t.Run("isolated location has no liberties", func(t *testing.T) {
		b := NewBoard(WithSize(3, 3))

		require.Empty(t, b.Liberties(4), "The centre of a 3x3 board has no knight jumps")
	})
}

func TestBoardTerminal(t *testing.T) {
	t.Run("stuck mover loses", func(t *testing.T) {
		b := NewBoard(WithSize(3, 3), WithLocations(4, 0))

		require.True(t, b.Terminal())
		require.Empty(t, b.Actions())
		require.Equal(t, Loss, b.Utility(0))
		require.Equal(t, Win, b.Utility(1))
	})

	t.Run("non-terminal utility is zero", func(t *testing.T) {
		b := NewBoard(WithLocations(0, 98))

		require.False(t, b.Terminal())
		require.Equal(t, 0.0, b.Utility(0))
		require.Equal(t, 0.0, b.Utility(1))
	})
}

func TestBoardString(t *testing.T) {
	b := NewBoard(WithSize(3, 3), WithBlocked(8), WithLocations(4, 0))

	require.Equal(t, "2 . .\n. 1 .\n. . #\n", b.String())
}

func TestPlayerOpponent(t *testing.T) {
	require.Equal(t, PlayerID(1), PlayerID(0).Opponent())
	require.Equal(t, PlayerID(0), PlayerID(1).Opponent())
}
