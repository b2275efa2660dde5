package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"ostle/experiments/metrics"
	"ostle/game"
)

// settings holds the knobs shared by the searching agents. Each agent
// embeds its own copy; options mutate it at construction time only.
type settings struct {
	depth    int
	schedule []DepthStep
	maxDepth int
	buffer   time.Duration
	evaluate game.Evaluate
	rng      *rand.Rand
	ordered  bool
	metrics  metrics.Collector
}

func defaultSettings() settings {
	return settings{
		evaluate: game.EvaluateBalanced,
		metrics:  metrics.NewDummyCollector(),
	}
}

type Option func(*settings)

// WithDepth fixes the search depth (also the schedule fallback).
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithDepthSchedule picks the depth from the remaining time budget: the
// first step whose threshold exceeds the budget wins, WithDepth otherwise.
func WithDepthSchedule(schedule []DepthStep) Option {
	return func(s *settings) {
		s.schedule = schedule
	}
}

// WithMaxDepth caps iterative deepening.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithBuffer reserves part of the budget so the search unwinds before the
// driver's clock runs out.
func WithBuffer(buffer time.Duration) Option {
	return func(s *settings) {
		if buffer >= 0 {
			s.buffer = buffer
		}
	}
}

func WithEvaluator(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithShuffle randomizes candidate order at every node. Openings play out
// identically without it.
func WithShuffle(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrdering tries opponent-displacing moves first to improve the
// alpha-beta cutoff rate. Does not change the chosen move's value.
func WithOrdering() Option {
	return func(s *settings) {
		s.ordered = true
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// DepthStep maps a remaining-budget threshold to a search depth.
type DepthStep struct {
	Remaining time.Duration
	Depth     int
}

// DefaultSchedule searches shallower as the clock runs down.
var DefaultSchedule = []DepthStep{
	{Remaining: time.Second, Depth: 3},
	{Remaining: 3 * time.Second, Depth: 4},
}

func scheduleDepth(schedule []DepthStep, remaining time.Duration, fallback int) int {
	for _, step := range schedule {
		if remaining < step.Remaining {
			return step.Depth
		}
	}
	return fallback
}
