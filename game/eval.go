package game

// Terminal scores. A win is worth more the sooner it arrives and a loss
// less the later it arrives; the searcher adds the remaining depth on top
// of these bases.
const (
	WinScore  = 10000
	LoseScore = -20000
)

// Evaluate scores a non-terminal board from player's perspective. Higher
// is better for player; the zero-sum convention makes the opponent's score
// the negation.
type Evaluate func(b Board, player Cell) int

// Weights tunes the leaf heuristic. Piece difference dominates, mobility
// and center occupancy break ties.
type Weights struct {
	Piece    int
	Mobility int
	Center   int
}

var DefaultWeights = Weights{
	Piece:    100,
	Mobility: 3,
	Center:   10,
}

// centerPositions are the hole's starting square and its four neighbors.
var centerPositions = [5][2]int{{1, 2}, {2, 1}, {2, 2}, {2, 3}, {3, 2}}

// Weighted builds an Evaluate from w. Components with weight zero are not
// computed: mobility in particular costs two legal-move scans per leaf.
func Weighted(w Weights) Evaluate {
	return func(b Board, player Cell) int {
		opponent := player.mustOpponent()
		score := 0

		if w.Piece != 0 {
			score += (b.Count(player) - b.Count(opponent)) * w.Piece
		}
		if w.Mobility != 0 {
			score += (len(b.LegalMoves(player)) - len(b.LegalMoves(opponent))) * w.Mobility
		}
		if w.Center != 0 {
			for _, pos := range centerPositions {
				switch b.At(pos[0], pos[1]) {
				case player:
					score += w.Center
				case opponent:
					score -= w.Center
				}
			}
		}
		return score
	}
}

// EvaluateMaterial scores by signed piece difference alone.
var EvaluateMaterial = Weighted(Weights{Piece: 100})

// EvaluateBalanced combines material with mobility and center occupancy.
var EvaluateBalanced = Weighted(DefaultWeights)
