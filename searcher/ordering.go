package searcher

import (
	"sort"

	"ostle/game"
)

// arrange reorders moves in place: an optional shuffle first, then a
// stable partition putting opponent-displacing moves in front. Ordering
// only affects pruning efficiency, never the search result's value.
func (s *search) arrange(b game.Board, moves []game.Move, opponent game.Cell) {
	if s.rng != nil {
		s.rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}
	if s.ordered {
		sort.SliceStable(moves, func(i, j int) bool {
			return displaces(b, moves[i], opponent) && !displaces(b, moves[j], opponent)
		})
	}
}

// displaces reports whether move steps onto an opponent piece. Hole moves
// never do: their destination is always empty.
func displaces(b game.Board, move game.Move, opponent game.Cell) bool {
	nx, ny := move.X+move.DX, move.Y+move.DY
	return game.InBounds(nx, ny) && b.At(nx, ny) == opponent
}
