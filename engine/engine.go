package engine

import "ostle/experiments/metrics"

// Reason records why a game ended.
type Reason string

const (
	ReasonWinCondition Reason = "win_condition"
	ReasonTimeout      Reason = "timeout"
	ReasonIllegalMove  Reason = "illegal_move"
	ReasonNoMoves      Reason = "no_moves"
	ReasonMoveLimit    Reason = "move_limit"
)

type Engine interface {
	// Run plays a game to the end and reports the winner ("" when the
	// move limit was hit) along with its metrics.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
