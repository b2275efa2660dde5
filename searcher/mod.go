package searcher

import (
	"errors"
	"time"

	"ostle/game"
)

// ErrNoLegalMoves is returned when the active player cannot move. The
// match driver treats it as an immediate loss, not as a crash.
var ErrNoLegalMoves = errors.New("no legal moves available")

// Agent picks a move for player on board within the remaining time budget.
// prev is the board one ply earlier (the zero Board on the first ply) and
// is used to skip moves that would recreate it. Agents are stateless
// across calls; concurrent calls on different agents share nothing.
type Agent interface {
	CalcBestMove(board, prev game.Board, player game.Cell, remaining time.Duration) (game.Move, error)
}
