package game

// WinThreshold is the opponent piece count at or below which a player has
// won: losing two of the original five pieces loses the game.
const WinThreshold = 3

// IsWinner reports whether player has won on b. Player must be Player1 or
// Player2. Note that after a single push both players can satisfy this at
// once; the match driver resolves that by checking the mover first.
func (b Board) IsWinner(player Cell) bool {
	return b.Count(player.mustOpponent()) <= WinThreshold
}
