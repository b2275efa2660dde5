package game

// Move slides the piece or hole at (X, Y) one step along (DX, DY).
// A Move is only meaningful for the exact board it was generated from.
type Move struct {
	X, Y   int
	DX, DY int
}

// Direction is one of the four axis-aligned unit steps. Diagonals are
// never legal.
type Direction struct {
	DX, DY int
}

var Directions = [4]Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// LegalMoves returns every legal move for player, scanning cells row-major
// and directions in the fixed order of Directions. A player's piece may
// step toward any in-bounds neighbor (pushing resolves at apply time); the
// hole may only slide into an empty neighbor. An empty result means player
// has lost.
func (b Board) LegalMoves(player Cell) []Move {
	var moves []Move
	for y := 0; y < BoardWidth; y++ {
		for x := 0; x < BoardWidth; x++ {
			switch b.At(x, y) {
			case player:
				for _, d := range Directions {
					if InBounds(x+d.DX, y+d.DY) {
						moves = append(moves, Move{x, y, d.DX, d.DY})
					}
				}
			case Hole:
				for _, d := range Directions {
					nx, ny := x+d.DX, y+d.DY
					if InBounds(nx, ny) && b.At(nx, ny) == Empty {
						moves = append(moves, Move{x, y, d.DX, d.DY})
					}
				}
			}
		}
	}
	return moves
}

// Apply returns the board after move. The move must be legal for b; no
// validation is performed here, matching the generator/applicator split
// (the engine validates agent moves before applying them).
//
// A hole move swaps the hole with the empty destination. A piece move
// walks the push chain: contiguous pieces ahead of the mover all shift one
// cell, and a piece shoved past the edge or into the hole vanishes. The
// hole itself is never displaced by a push.
func (b Board) Apply(move Move) Board {
	next := b

	switch next[Index(move.X, move.Y)] {
	case Hole:
		next[Index(move.X, move.Y)] = Empty
		next[Index(move.X+move.DX, move.Y+move.DY)] = Hole

	case Player1, Player2:
		x, y := move.X, move.Y
		carried := Empty
		for {
			nx, ny := x+move.DX, y+move.DY
			if !InBounds(nx, ny) || next[Index(nx, ny)] == Hole {
				// Leading piece falls off the board or into the hole.
				next[Index(x, y)] = carried
				return next
			}
			if next[Index(nx, ny)] == Empty {
				next[Index(nx, ny)] = next[Index(x, y)]
				next[Index(x, y)] = carried
				return next
			}
			// A piece ahead: it becomes the carried piece and the walk
			// continues from its square.
			pushed := next[Index(x, y)]
			next[Index(x, y)] = carried
			carried = pushed
			x, y = nx, ny
		}
	}
	return next
}
