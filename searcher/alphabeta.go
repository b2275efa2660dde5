package searcher

import (
	"time"

	"ostle/game"
)

// AlphaBeta is a depth-limited negamax searcher with alpha-beta pruning.
// The depth is fixed by default; WithDepthSchedule adapts it to the
// remaining budget, and WithShuffle turns it into the randomized variant
// that keeps openings from playing out identically every game.
type AlphaBeta struct {
	settings
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := defaultSettings()
	s.depth = 5
	for _, option := range options {
		option(&s)
	}
	return &AlphaBeta{settings: s}
}

func (a *AlphaBeta) CalcBestMove(board, prev game.Board, player game.Cell, remaining time.Duration) (game.Move, error) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}
	opponent, err := player.Opponent()
	if err != nil {
		return game.Move{}, err
	}

	depth := a.depth
	if len(a.schedule) > 0 {
		depth = scheduleDepth(a.schedule, remaining, a.depth)
	}

	a.metrics.AddCall()
	s := &search{
		evaluate: a.evaluate,
		rng:      a.rng,
		ordered:  a.ordered,
		metrics:  a.metrics,
	}
	_, move, chose := s.negamax(board, prev, player, opponent, depth, -scoreInfinity, scoreInfinity)
	a.metrics.ObserveDepth(depth)
	if !chose {
		// Only repetitions were available; any legal move beats forfeiting.
		return moves[0], nil
	}
	return move, nil
}
