package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ostle/experiments/metrics"
	"ostle/game"
)

func board(cells map[[2]int]game.Cell) game.Board {
	var b game.Board
	for pos, cell := range cells {
		b[game.Index(pos[0], pos[1])] = cell
	}
	return b
}

func newSearch() *search {
	return &search{
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector(),
	}
}

// Pushing the lone edge piece off drops the opponent to three pieces and
// wins; the search must find it at depth 1.
func winInOne() game.Board {
	return board(map[[2]int]game.Cell{
		{3, 0}: game.Player1, {4, 0}: game.Player2,
		{0, 0}: game.Player1, {0, 1}: game.Player1,
		{0, 4}: game.Player2, {1, 4}: game.Player2, {2, 4}: game.Player2,
	})
}

func TestNegamaxFindsWinningPush(t *testing.T) {
	b := winInOne()

	s := newSearch()
	score, move, chose := s.negamax(b, game.Board{}, game.Player1, game.Player2, 1, -scoreInfinity, scoreInfinity)

	require.True(t, chose)
	require.Equal(t, game.Move{X: 3, Y: 0, DX: 1, DY: 0}, move)
	require.Greater(t, score, game.WinScore, "a winning line scores above the terminal base")
}

func TestNegamaxPrefersFasterWin(t *testing.T) {
	b := winInOne()

	s := newSearch()
	shallow, _, _ := s.negamax(b, game.Board{}, game.Player1, game.Player2, 1, -scoreInfinity, scoreInfinity)
	deep, _, _ := newSearch().negamax(b, game.Board{}, game.Player1, game.Player2, 4, -scoreInfinity, scoreInfinity)

	require.Greater(t, deep, shallow,
		"the same one-ply win carries a larger depth bonus from a deeper root")
}

func TestNegamaxTerminalScores(t *testing.T) {
	won := board(map[[2]int]game.Cell{
		{0, 0}: game.Player1, {0, 4}: game.Player2,
	})

	s := newSearch()
	score, _, chose := s.negamax(won, game.Board{}, game.Player1, game.Player2, 3, -scoreInfinity, scoreInfinity)
	require.False(t, chose, "terminal nodes pick no move")
	require.Equal(t, game.WinScore+3, score)

	// Both sides are below threshold here; the side to move's own win is
	// checked first, mirroring the driver's mover-first tie-break.
	score, _, _ = s.negamax(won, game.Board{}, game.Player2, game.Player1, 3, -scoreInfinity, scoreInfinity)
	require.Equal(t, game.WinScore+3, score)
}

func TestNegamaxSkipsRepetition(t *testing.T) {
	// Player1's piece just moved from (1,2) to (1,1); moving it back would
	// recreate prev and must not be chosen even though all leaves tie.
	prev := board(map[[2]int]game.Cell{
		{1, 2}: game.Player1, {0, 0}: game.Player1, {4, 0}: game.Player1, {2, 0}: game.Player1,
		{0, 4}: game.Player2, {2, 4}: game.Player2, {4, 4}: game.Player2, {3, 4}: game.Player2,
	})
	b := prev
	b[game.Index(1, 2)] = game.Empty
	b[game.Index(1, 1)] = game.Player1

	s := newSearch()
	_, move, chose := s.negamax(b, prev, game.Player1, game.Player2, 1, -scoreInfinity, scoreInfinity)

	require.True(t, chose)
	require.NotEqual(t, game.Move{X: 1, Y: 1, DX: 0, DY: 1}, move,
		"the undoing move recreates prev and is skipped")
	require.Contains(t, b.LegalMoves(game.Player1), move)
}

func TestNegamaxNoMovesLoses(t *testing.T) {
	// Player1 has no pieces left and the hole is boxed in: no legal moves.
	b := board(map[[2]int]game.Cell{
		{0, 0}: game.Hole, {1, 0}: game.Player2, {0, 1}: game.Player2,
		{4, 4}: game.Player2, {3, 4}: game.Player2,
	})
	require.Empty(t, b.LegalMoves(game.Player1))

	s := newSearch()
	score, _, chose := s.negamax(b, game.Board{}, game.Player1, game.Player2, 2, -scoreInfinity, scoreInfinity)
	require.False(t, chose)
	require.Equal(t, game.LoseScore-2, score, "a moveless, pieceless side has lost")
}

func TestNegamaxDeadlineUnwinds(t *testing.T) {
	s := newSearch()
	s.deadline = time.Now().Add(-time.Second)

	start := time.Now()
	_, move, chose := s.negamax(game.CreateInitialBoard(), game.Board{}, game.Player1, game.Player2, 8, -scoreInfinity, scoreInfinity)
	elapsed := time.Since(start)

	require.True(t, chose, "an expired deadline still unwinds with a move")
	require.Contains(t, game.CreateInitialBoard().LegalMoves(game.Player1), move)
	require.Less(t, elapsed, 2*time.Second, "the search must stop soon after expiry")
	require.True(t, s.expired)
}

func TestNegamaxCollectsMetrics(t *testing.T) {
	collector := metrics.NewCollector()
	s := &search{
		evaluate: game.EvaluateMaterial,
		ordered:  true,
		metrics:  collector,
	}

	s.negamax(game.CreateInitialBoard(), game.Board{}, game.Player1, game.Player2, 3, -scoreInfinity, scoreInfinity)

	m := collector.Complete()
	require.Greater(t, m.Nodes, 17, "a depth-3 search visits more than the root's children")
}
