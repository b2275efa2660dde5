package searcher

import (
	"time"

	"ostle/game"
)

// Deepening searches depth 1, 2, 3, ... until the budget runs out,
// keeping the deepest completed result. Interrupting at any depth
// boundary still yields a legal move, so any positive budget is safe.
type Deepening struct {
	settings
}

func NewDeepening(options ...Option) *Deepening {
	s := defaultSettings()
	s.maxDepth = 10
	s.buffer = 20 * time.Millisecond
	for _, option := range options {
		option(&s)
	}
	return &Deepening{settings: s}
}

func (a *Deepening) CalcBestMove(board, prev game.Board, player game.Cell, remaining time.Duration) (game.Move, error) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}
	opponent, err := player.Opponent()
	if err != nil {
		return game.Move{}, err
	}

	// One-ply scan: any immediately winning move ends the search.
	for _, move := range moves {
		if board.Apply(move).IsWinner(player) {
			return move, nil
		}
	}

	deadline := time.Now().Add(remaining - a.buffer)
	best := moves[0]
	a.metrics.AddCall()

	for depth := 1; depth <= a.maxDepth; depth++ {
		s := &search{
			evaluate: a.evaluate,
			rng:      a.rng,
			ordered:  a.ordered,
			metrics:  a.metrics,
			deadline: deadline,
		}
		score, move, chose := s.negamax(board, prev, player, opponent, depth, -scoreInfinity, scoreInfinity)
		if s.expired {
			// Partial iteration: keep the last completed depth's result.
			break
		}
		if chose {
			best = move
			a.metrics.ObserveDepth(depth)
		}
		if score >= game.WinScore {
			// Forced win found; deeper search cannot improve it.
			break
		}
		if time.Now().After(deadline) {
			break
		}
	}
	return best, nil
}
