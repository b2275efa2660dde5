package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"ostle/game"
)

func TestDisplaces(t *testing.T) {
	b := board(map[[2]int]game.Cell{
		{0, 0}: game.Player1, {1, 0}: game.Player2, {0, 1}: game.Player1,
	})

	require.True(t, displaces(b, game.Move{X: 0, Y: 0, DX: 1, DY: 0}, game.Player2))
	require.False(t, displaces(b, game.Move{X: 0, Y: 1, DX: 0, DY: 1}, game.Player2),
		"stepping into empty space displaces nothing")
	require.False(t, displaces(b, game.Move{X: 0, Y: 0, DX: 1, DY: 0}, game.Player1),
		"pushing a friendly piece is not an opponent displacement")
}

func TestArrangeOrdersDisplacingFirst(t *testing.T) {
	b := board(map[[2]int]game.Cell{
		{2, 2}: game.Player1, {3, 2}: game.Player2,
		{0, 0}: game.Player1,
	})
	moves := b.LegalMoves(game.Player1)

	s := &search{ordered: true}
	s.arrange(b, moves, game.Player2)

	require.Equal(t, game.Move{X: 2, Y: 2, DX: 1, DY: 0}, moves[0],
		"the only displacing move comes first")
	for _, move := range moves[1:] {
		require.False(t, displaces(b, move, game.Player2))
	}
}

func TestArrangeStableWithoutShuffle(t *testing.T) {
	b := game.CreateInitialBoard()
	first := b.LegalMoves(game.Player1)
	second := b.LegalMoves(game.Player1)

	s := &search{ordered: true}
	s.arrange(b, first, game.Player2)
	s.arrange(b, second, game.Player2)

	require.Equal(t, first, second, "ordering is deterministic without a shuffle")
}

func TestArrangeShufflePermutes(t *testing.T) {
	b := game.CreateInitialBoard()
	moves := b.LegalMoves(game.Player1)

	s := &search{rng: rand.New(rand.NewSource(1))}
	shuffled := append([]game.Move(nil), moves...)
	s.arrange(b, shuffled, game.Player2)

	require.ElementsMatch(t, moves, shuffled, "a shuffle keeps the same move set")
}
