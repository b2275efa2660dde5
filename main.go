package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ostle/experiments"
	"ostle/meta"
)

func main() {
	agent1 := flag.String("agent1", "deepening", fmt.Sprintf("first agent %v", experiments.AgentNames()))
	agent2 := flag.String("agent2", "budget", fmt.Sprintf("second agent %v", experiments.AgentNames()))
	games := flag.Int("games", meta.NUM_GAMES, "number of games to play")
	budget := flag.Duration("budget", meta.TIME_LIMIT, "thinking budget per player per game")
	results := flag.String("results", "", "directory for CSV records (empty to skip)")
	verbose := flag.Bool("v", false, "per-game logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	summary, err := experiments.RunBenchmark(*agent1, *agent2, *games, *budget, *results)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}

	fmt.Printf("%s vs %s: %s\n", *agent1, *agent2, summary)
}
