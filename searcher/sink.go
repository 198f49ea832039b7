package searcher

import (
	"isolation/game"
	"sync"
)

// Decision is a candidate action. Depth is the completed depth limit that
// produced it, 0 for a fallback chosen without searching.
type Decision struct {
	Action game.Action
	Depth  int
	Value  float64
}

// Sink receives successive decisions; the last one published before the
// search is stopped is the one played.
type Sink interface {
	Publish(decision Decision)
}

type SinkFunc func(decision Decision)

func (f SinkFunc) Publish(decision Decision) {
	f(decision)
}

// Latest is a single-slot sink: each decision replaces the previous one. It is
// safe to read while a search goroutine publishes.
type Latest struct {
	sync.RWMutex
	decision Decision
	count    int
}

func NewLatest() *Latest {
	return &Latest{}
}

func (l *Latest) Publish(decision Decision) {
	l.Lock()
	defer l.Unlock()

	l.decision = decision
	l.count++
}

// Load returns the latest decision and whether anything was published.
func (l *Latest) Load() (Decision, bool) {
	l.RLock()
	defer l.RUnlock()

	return l.decision, l.count > 0
}

func (l *Latest) Count() int {
	l.RLock()
	defer l.RUnlock()

	return l.count
}
