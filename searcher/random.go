package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"ostle/game"
)

// Random picks uniformly among the legal moves. Baseline opponent for
// benchmarks.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) CalcBestMove(board, _ game.Board, player game.Cell, _ time.Duration) (game.Move, error) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}
