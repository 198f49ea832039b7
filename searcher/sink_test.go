package searcher

import (
	"isolation/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatest(t *testing.T) {
	t.Run("empty until published", func(t *testing.T) {
		l := NewLatest()

		_, ok := l.Load()

		require.False(t, ok)
		require.Equal(t, 0, l.Count())
	})

	t.Run("latest value wins", func(t *testing.T) {
		l := NewLatest()

		l.Publish(Decision{Action: 5})
		l.Publish(Decision{Action: 9, Depth: 3, Value: 2})
		got, ok := l.Load()

		require.True(t, ok)
		require.Equal(t, Decision{Action: 9, Depth: 3, Value: 2}, got)
		require.Equal(t, 2, l.Count())
	})

	t.Run("concurrent publish and load", func(t *testing.T) {
		l := NewLatest()
		var wg sync.WaitGroup

		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.Publish(Decision{Action: game.Action(i), Depth: i})
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if d, ok := l.Load(); ok && int(d.Action) != d.Depth {
					t.Errorf("torn decision %+v", d)
				}
			}
		}()
		wg.Wait()

		got, _ := l.Load()
		require.Equal(t, game.Action(99), got.Action)
		require.Equal(t, 100, l.Count())
	})
}

func TestSinkFunc(t *testing.T) {
	var got []Decision
	var sink Sink = SinkFunc(func(d Decision) { got = append(got, d) })

	sink.Publish(Decision{Action: 1})
	sink.Publish(Decision{Action: 2})

	require.Equal(t, []Decision{{Action: 1}, {Action: 2}}, got)
}
