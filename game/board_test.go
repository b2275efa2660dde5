package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// setCells places cells on an empty board, for building test positions.
func setCells(cells map[[2]int]Cell) Board {
	var b Board
	for pos, cell := range cells {
		b[Index(pos[0], pos[1])] = cell
	}
	return b
}

func TestCreateInitialBoard(t *testing.T) {
	b := CreateInitialBoard()

	for x := 0; x < BoardWidth; x++ {
		require.Equal(t, Player1, b.At(x, 0), "row 0 should be Player1")
		require.Equal(t, Player2, b.At(x, 4), "row 4 should be Player2")
	}
	require.Equal(t, Hole, b.At(2, 2), "hole should start at (2,2)")

	require.Equal(t, 5, b.Count(Player1))
	require.Equal(t, 5, b.Count(Player2))
	require.Equal(t, 1, b.Count(Hole))
	require.Equal(t, 14, b.Count(Empty))
}

func TestOpponent(t *testing.T) {
	opp, err := Player1.Opponent()
	require.NoError(t, err)
	require.Equal(t, Player2, opp)

	opp, err = Player2.Opponent()
	require.NoError(t, err)
	require.Equal(t, Player1, opp)

	_, err = Empty.Opponent()
	require.ErrorIs(t, err, ErrNoOpponent)
	_, err = Hole.Opponent()
	require.ErrorIs(t, err, ErrNoOpponent)
}

func TestIndexInBounds(t *testing.T) {
	require.Equal(t, 0, Index(0, 0))
	require.Equal(t, 12, Index(2, 2))
	require.Equal(t, 24, Index(4, 4))

	require.True(t, InBounds(0, 0))
	require.True(t, InBounds(4, 4))
	require.False(t, InBounds(-1, 0))
	require.False(t, InBounds(0, 5))
	require.False(t, InBounds(5, 2))
}

func TestBoardEquality(t *testing.T) {
	a := CreateInitialBoard()
	b := CreateInitialBoard()
	require.True(t, a == b, "identical layouts should compare equal")

	c := a.Apply(Move{0, 0, 0, 1})
	require.False(t, a == c)
	require.NotEqual(t, a.Hash(), c.Hash())
}

func TestBoardString(t *testing.T) {
	b := CreateInitialBoard()
	want := "11111\n.....\n..O..\n.....\n22222"
	require.Equal(t, want, b.String())
}
