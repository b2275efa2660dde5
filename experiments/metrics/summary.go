package metrics

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the records of one matchup.
type Summary struct {
	Games          int
	Wins           map[string]int
	Reasons        map[string]int
	MeanMoves      float64
	StdDevMoves    float64
	MeanThinkTime  time.Duration
	TotalThinkTime time.Duration
}

func Summarize(games []GameRecord, moves []MoveRecord) Summary {
	s := Summary{
		Games:   len(games),
		Wins:    make(map[string]int),
		Reasons: make(map[string]int),
	}

	lengths := make([]float64, 0, len(games))
	for _, g := range games {
		s.Wins[g.Winner]++
		s.Reasons[g.Reason]++
		lengths = append(lengths, float64(g.Moves))
	}
	if len(lengths) > 0 {
		s.MeanMoves = stat.Mean(lengths, nil)
		s.StdDevMoves = stat.StdDev(lengths, nil)
	}

	var total time.Duration
	for _, m := range moves {
		total += m.Elapsed
	}
	s.TotalThinkTime = total
	if len(moves) > 0 {
		s.MeanThinkTime = total / time.Duration(len(moves))
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("games=%d wins=%v reasons=%v moves=%.1f±%.1f think=%s/move",
		s.Games, s.Wins, s.Reasons, s.MeanMoves, s.StdDevMoves, s.MeanThinkTime)
}
