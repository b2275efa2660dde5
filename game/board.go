package game

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"strings"
)

const (
	BoardWidth = 5
	BoardSize  = BoardWidth * BoardWidth
)

// Starting rows and hole position of the standard layout.
const (
	Player1Row = 0
	Player2Row = BoardWidth - 1
	HoleX      = 2
	HoleY      = 2
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Player1
	Player2
	Hole
)

var ErrNoOpponent = errors.New("cell has no opponent")

// Opponent returns the other player. Empty and Hole have no opponent;
// calling Opponent on them is a caller bug surfaced as ErrNoOpponent.
func (c Cell) Opponent() (Cell, error) {
	switch c {
	case Player1:
		return Player2, nil
	case Player2:
		return Player1, nil
	default:
		return Empty, ErrNoOpponent
	}
}

// mustOpponent backs paths whose preconditions already guarantee a player cell.
func (c Cell) mustOpponent() Cell {
	opp, err := c.Opponent()
	if err != nil {
		panic("game: opponent of non-player cell")
	}
	return opp
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Player1:
		return "1"
	case Player2:
		return "2"
	case Hole:
		return "O"
	default:
		return "?"
	}
}

// Board is an immutable snapshot of the 5x5 grid, row-major, index = y*5+x.
// Board is a value type: every transformation returns a new Board and two
// boards compare equal with ==.
type Board [BoardSize]Cell

// CreateInitialBoard returns the standard starting layout: five Player1
// pieces on row 0, five Player2 pieces on row 4, the hole at (2,2).
func CreateInitialBoard() Board {
	var b Board
	for x := 0; x < BoardWidth; x++ {
		b[Index(x, Player1Row)] = Player1
		b[Index(x, Player2Row)] = Player2
	}
	b[Index(HoleX, HoleY)] = Hole
	return b
}

func Index(x, y int) int {
	return y*BoardWidth + x
}

func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardWidth
}

// At returns the cell at (x, y). Coordinates must be in bounds.
func (b Board) At(x, y int) Cell {
	return b[Index(x, y)]
}

// Count returns how many cells hold c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, cell := range b {
		if cell == c {
			n++
		}
	}
	return n
}

// Hash returns an FNV-1a digest of the board, for logging and bookkeeping.
func (b Board) Hash() uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, b[:])
	return hasher.Sum64()
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < BoardWidth; y++ {
		for x := 0; x < BoardWidth; x++ {
			sb.WriteString(b.At(x, y).String())
		}
		if y < BoardWidth-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
