package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"ostle/experiments/metrics"
	"ostle/game"
)

// Bounds wide enough to dominate any depth-adjusted terminal score.
const scoreInfinity = 1 << 20

// Check the clock once per this many visited nodes. Per-node timing would
// distort the effective search depth.
const timeCheckInterval = 256

// search is the per-call state of one negamax run. A fresh value is built
// for every CalcBestMove, so concurrent agents share nothing.
type search struct {
	evaluate game.Evaluate
	rng      *rand.Rand
	ordered  bool
	metrics  metrics.Collector
	deadline time.Time
	nodes    int
	expired  bool
}

func (s *search) timeUp() bool {
	if s.expired {
		return true
	}
	if s.deadline.IsZero() {
		return false
	}
	s.nodes++
	if s.nodes%timeCheckInterval == 0 && time.Now().After(s.deadline) {
		s.expired = true
	}
	return s.expired
}

// negamax returns player's best score on b searching depth plies, with the
// move achieving it. Alpha and beta are threaded as parameters; recursing
// to the opponent negates and swaps them. A child equal to prev is skipped
// (one-ply repetition avoidance). When the deadline passes mid-recursion
// the best result found so far unwinds instead of an error.
//
// chose is false when no move was picked: terminal or leaf nodes, and the
// degenerate case where every candidate recreates prev.
func (s *search) negamax(b, prev game.Board, player, opponent game.Cell, depth, alpha, beta int) (score int, best game.Move, chose bool) {
	s.metrics.AddNode()

	if b.IsWinner(player) {
		return game.WinScore + depth, game.Move{}, false
	}
	if b.IsWinner(opponent) {
		return game.LoseScore - depth, game.Move{}, false
	}
	if depth == 0 || s.timeUp() {
		return s.evaluate(b, player), game.Move{}, false
	}

	moves := b.LegalMoves(player)
	if len(moves) == 0 {
		// Boxed in: the player to move has lost.
		return game.LoseScore - depth, game.Move{}, false
	}
	s.arrange(b, moves, opponent)

	bestScore := -scoreInfinity
	for _, move := range moves {
		next := b.Apply(move)
		if next == prev {
			continue
		}
		value, _, _ := s.negamax(next, b, opponent, player, depth-1, -beta, -alpha)
		value = -value

		if !chose || value > bestScore {
			bestScore = value
			best = move
			chose = true
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
		if s.expired {
			break
		}
	}

	if !chose {
		// Every candidate repeated prev; score the position as it stands.
		return s.evaluate(b, player), game.Move{}, false
	}
	return bestScore, best, true
}
