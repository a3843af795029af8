package metrics

import (
	"time"
)

// SearchMetric describes the work done by one move search.
type SearchMetric struct {
	Algorithm string
	Depth     int
	Nodes     int // Positions visited, leaves included
	Leaves    int // Positions scored by the static evaluation
	Cutoffs   int // Move loops abandoned because beta <= alpha
	Duration  time.Duration
}

type MoveMetric struct {
	Step   int
	Player string // Color name of the side that moved
	SearchMetric
}

type GameMetric struct {
	Winner      string // Color name, "draw" if tied
	BlackStones int
	WhiteStones int
	Plies       int
	Passes      int
	Forfeit     bool
	Nodes       int // Search nodes summed over the game
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

// Searches run on a single goroutine, so the counters are plain ints.
type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth int) {
	*m = collector{
		algorithm: algorithm,
		depth:     depth,
		startTime: time.Now(),
	}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Cutoffs:   m.cutoffs,
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddLeaf()                          {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
