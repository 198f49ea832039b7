package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration    time.Duration
	MinDepth    int
	MaxDepth    int
	Pruning     bool
	Depth       int // Deepest completed depth, 0 if none
	Nodes       int
	Evaluations int // Heuristic leaf evaluations
	Cutoffs     int
	IsOpening   bool
}

type MoveMetric struct {
	Step    int
	Player  int // Player ID
	Action  int
	Forfeit bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates search statistics for one decision at a time. Start
// resets the counters.
type Collector interface {
	Start(minDepth, maxDepth int, pruning bool)
	SetOpening(value bool)
	AddNode()
	AddEvaluation()
	AddCutoff()
	CompleteDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	minDepth    int
	maxDepth    int
	pruning     bool
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
	depth       atomic.Int32
	isOpening   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(minDepth, maxDepth int, pruning bool) {
	m.startTime = time.Now()
	m.minDepth = minDepth
	m.maxDepth = maxDepth
	m.pruning = pruning
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
	m.depth.Store(0)
	m.isOpening.Store(false)
}

func (m *collector) SetOpening(value bool) {
	m.isOpening.Store(value)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		MinDepth:    m.minDepth,
		MaxDepth:    m.maxDepth,
		Pruning:     m.pruning,
		Depth:       int(m.depth.Load()),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		IsOpening:   m.isOpening.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(minDepth, maxDepth int, pruning bool) {}
func (m *dummyCollector) SetOpening(value bool)                      {}
func (m *dummyCollector) AddNode()                                   {}
func (m *dummyCollector) AddEvaluation()                             {}
func (m *dummyCollector) AddCutoff()                                 {}
func (m *dummyCollector) CompleteDepth(depth int)                    {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
