package experiments

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"ostle/engine"
	"ostle/experiments/metrics"
	"ostle/meta"
	"ostle/searcher"
)

// constructors maps published agent names to their builders. Kept out of
// the searcher package so the core stays free of string dispatch.
var constructors = map[string]func(seed uint64, collector metrics.Collector) searcher.Agent{
	"random": func(seed uint64, _ metrics.Collector) searcher.Agent {
		return searcher.NewRandom(seed)
	},
	"alphabeta": func(seed uint64, collector metrics.Collector) searcher.Agent {
		return searcher.NewAlphaBeta(
			searcher.WithShuffle(seed),
			searcher.WithMetrics(collector),
		)
	},
	"budget": func(seed uint64, collector metrics.Collector) searcher.Agent {
		return searcher.NewAlphaBeta(
			searcher.WithShuffle(seed),
			searcher.WithDepthSchedule(searcher.DefaultSchedule),
			searcher.WithOrdering(),
			searcher.WithMetrics(collector),
		)
	},
	"deepening": func(_ uint64, collector metrics.Collector) searcher.Agent {
		return searcher.NewDeepening(
			searcher.WithOrdering(),
			searcher.WithMetrics(collector),
		)
	},
}

// AgentNames lists the registered agent names, sorted.
func AgentNames() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewAgent builds a registered agent by name.
func NewAgent(name string, seed uint64, collector metrics.Collector) (searcher.Agent, error) {
	construct, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q (have %v)", name, AgentNames())
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return construct(seed, collector), nil
}

// RunBenchmark plays games between two named agents and writes the
// records to CSV under resultsDir (skipped when resultsDir is empty).
func RunBenchmark(name1, name2 string, games int, budget time.Duration, resultsDir string) (metrics.Summary, error) {
	if games <= 0 {
		games = meta.NUM_GAMES
	}
	if budget <= 0 {
		budget = meta.TIME_LIMIT
	}

	configs := []metrics.AgentConfig{
		{ID: 1, Name: name1, Budget: budget},
		{ID: 2, Name: name2, Budget: budget},
	}

	log.Info().Msgf("starting benchmark: %s vs %s, %d games", name1, name2, games)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for i := 0; i < games; i++ {
		seed := uint64(i + 1)
		collector1 := metrics.NewCollector()
		collector2 := metrics.NewCollector()

		agent1, err := NewAgent(name1, seed, collector1)
		if err != nil {
			return metrics.Summary{}, err
		}
		agent2, err := NewAgent(name2, seed+uint64(games), collector2)
		if err != nil {
			return metrics.Summary{}, err
		}

		e := engine.NewLocalEngine(agent1, agent2,
			engine.WithTimeLimit(budget),
			engine.WithSeed(int64(seed)),
		)
		winner, gameMetric, moveMetrics := e.Run()

		record := metrics.GameRecord{
			ID:         i + 1,
			Agent1:     configs[0].ID,
			Agent2:     configs[1].ID,
			GameMetric: gameMetric,
			Search1:    collector1.Complete(),
			Search2:    collector2.Complete(),
		}
		gameRecords = append(gameRecords, record)
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       record.ID,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, games, winner)
	}

	summary := metrics.Summarize(gameRecords, moveRecords)
	log.Info().Msgf("completed benchmark: %s", summary)

	if resultsDir != "" {
		if err := writeRecords(resultsDir, name1, name2, configs, gameRecords, moveRecords); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func writeRecords(resultsDir, name1, name2 string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(resultsDir, fmt.Sprintf("%s_vs_%s", name1, name2))
	if err != nil {
		return fmt.Errorf("failed to create benchmark writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("wrote benchmark records to %s", writer.BaseDir())
	return nil
}
