// meta/meta.go
package meta

import "time"

// TIME_LIMIT is each player's thinking budget for a whole game.
const TIME_LIMIT = 5 * time.Second

// MAX_MOVES caps a game's plies before it is called off with no winner.
const MAX_MOVES = 500

// NUM_GAMES is the default game count per benchmark matchup.
const NUM_GAMES = 10

// TICK is the driver's polling interval while an agent is thinking.
const TICK = time.Millisecond
