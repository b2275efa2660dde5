package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one agent's tree searches over a game: visited
// nodes, beta cutoffs, deepest completed depth, and the number of
// CalcBestMove calls.
type SearchMetric struct {
	Calls    int
	Nodes    int
	Cutoffs  int
	MaxDepth int
}

// GameMetric describes one finished match.
type GameMetric struct {
	StartingPlayer int
	Winner         string
	Reason         string
	Moves          int
	StartTime      time.Time
	Duration       time.Duration
}

// MoveMetric describes one ply as observed by the match driver.
type MoveMetric struct {
	Step      int
	Player    int
	Elapsed   time.Duration
	Remaining time.Duration
}

// Collector accumulates search counters. Agents call it from the search
// hot path, so implementations must be cheap and safe to read after the
// game.
type Collector interface {
	AddCall()
	AddNode()
	AddCutoff()
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	calls    atomic.Int64
	nodes    atomic.Int64
	cutoffs  atomic.Int64
	maxDepth atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddCall() {
	c.calls.Add(1)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) ObserveDepth(depth int) {
	for {
		current := c.maxDepth.Load()
		if int64(depth) <= current || c.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Calls:    int(c.calls.Load()),
		Nodes:    int(c.nodes.Load()),
		Cutoffs:  int(c.cutoffs.Load()),
		MaxDepth: int(c.maxDepth.Load()),
	}
}

// dummyCollector drops everything; the default when metrics are off.
type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) AddCall()         {}
func (dummyCollector) AddNode()         {}
func (dummyCollector) AddCutoff()       {}
func (dummyCollector) ObserveDepth(int) {}
func (dummyCollector) Complete() SearchMetric {
	return SearchMetric{}
}
