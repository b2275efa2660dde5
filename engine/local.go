package engine

import (
	"errors"
	"math/rand"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"ostle/experiments/metrics"
	"ostle/game"
	"ostle/meta"
	"ostle/searcher"
)

// State of the driver's turn loop.
type State int

const (
	Idle State = iota
	Thinking
	Finished
)

// Update is one history entry: the board as it was before the move, who
// moved, and the think time charged against their clock.
type Update struct {
	Board     game.Board
	Move      game.Move
	Player    game.Cell
	Elapsed   time.Duration
	Remaining time.Duration
}

type result struct {
	move game.Move
	err  error
}

// LocalEngine alternates turns between two agents. Each turn the current
// agent's CalcBestMove runs on its own goroutine, delivering through a
// buffered channel that the driver polls once per Update tick. The driver
// never preempts a search: an agent that overruns its clock simply loses
// on time whenever its move eventually arrives or the budget hits zero.
type LocalEngine struct {
	agents    map[game.Cell]searcher.Agent
	timeLimit time.Duration
	maxMoves  int
	rng       *rand.Rand

	state     State
	board     game.Board
	turn      game.Cell
	remaining map[game.Cell]time.Duration
	history   []Update
	thinking  time.Duration
	winner    game.Cell
	reason    Reason
	moveCh    chan result
}

type LocalOption func(*LocalEngine)

func WithTimeLimit(limit time.Duration) LocalOption {
	return func(e *LocalEngine) {
		if limit > 0 {
			e.timeLimit = limit
		}
	}
}

func WithMaxMoves(moves int) LocalOption {
	return func(e *LocalEngine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithSeed makes the starting-player coin flip reproducible.
func WithSeed(seed int64) LocalOption {
	return func(e *LocalEngine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func NewLocalEngine(agent1, agent2 searcher.Agent, options ...LocalOption) *LocalEngine {
	e := &LocalEngine{
		agents: map[game.Cell]searcher.Agent{
			game.Player1: agent1,
			game.Player2: agent2,
		},
		timeLimit: meta.TIME_LIMIT,
		maxMoves:  meta.MAX_MOVES,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, option := range options {
		option(e)
	}
	e.Reset()
	return e
}

// Reset discards any game in progress and sets up a fresh one with a
// random starting player.
func (e *LocalEngine) Reset() {
	e.board = game.CreateInitialBoard()
	e.turn = game.Player1
	if e.rng.Intn(2) == 1 {
		e.turn = game.Player2
	}
	e.remaining = map[game.Cell]time.Duration{
		game.Player1: e.timeLimit,
		game.Player2: e.timeLimit,
	}
	e.history = nil
	e.thinking = 0
	e.state = Idle
	e.winner = game.Empty
	e.reason = ""
	// Buffered so an overrunning worker can always deliver and exit.
	e.moveCh = make(chan result, 1)
}

// Update advances the turn loop by one scheduling tick. dt is the wall
// time since the previous tick and is charged to the thinking player.
func (e *LocalEngine) Update(dt time.Duration) {
	switch e.state {
	case Idle:
		e.startThinking()
	case Thinking:
		e.remaining[e.turn] -= dt
		e.thinking += dt
		if e.remaining[e.turn] <= 0 {
			e.finish(opponentOf(e.turn), ReasonTimeout)
			return
		}
		select {
		case r := <-e.moveCh:
			e.receive(r)
		default:
		}
	case Finished:
	}
}

func (e *LocalEngine) startThinking() {
	agent := e.agents[e.turn]
	board := e.board
	prev := e.prevBoard()
	player := e.turn
	budget := e.remaining[e.turn]
	ch := e.moveCh

	e.thinking = 0
	e.state = Thinking
	go func() {
		move, err := agent.CalcBestMove(board, prev, player, budget)
		ch <- result{move: move, err: err}
	}()
}

func (e *LocalEngine) receive(r result) {
	mover := e.turn
	opponent := opponentOf(mover)

	if r.err != nil {
		if errors.Is(r.err, searcher.ErrNoLegalMoves) {
			e.finish(opponent, ReasonNoMoves)
		} else {
			log.Error().Err(r.err).Msgf("agent for %v failed", mover)
			e.finish(opponent, ReasonIllegalMove)
		}
		return
	}
	if !slices.Contains(e.board.LegalMoves(mover), r.move) {
		e.finish(opponent, ReasonIllegalMove)
		return
	}

	e.history = append(e.history, Update{
		Board:     e.board,
		Move:      r.move,
		Player:    mover,
		Elapsed:   e.thinking,
		Remaining: e.remaining[mover],
	})
	e.board = e.board.Apply(r.move)

	// Both players can cross the threshold on one push; the mover's win
	// is checked first. Driver tie-break, not a rule of the game.
	if e.board.IsWinner(mover) {
		e.finish(mover, ReasonWinCondition)
		return
	}
	if e.board.IsWinner(opponent) {
		e.finish(opponent, ReasonWinCondition)
		return
	}
	if len(e.history) >= e.maxMoves {
		e.state = Finished
		e.reason = ReasonMoveLimit
		return
	}

	e.turn = opponent
	e.state = Idle
}

func (e *LocalEngine) finish(winner game.Cell, reason Reason) {
	e.state = Finished
	e.winner = winner
	e.reason = reason
	log.Info().
		Str("winner", playerName(winner)).
		Str("reason", string(reason)).
		Int("moves", len(e.history)).
		Msg("game finished")
}

// Run plays a full game, driving Update with measured wall time.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	e.Reset()
	start := time.Now()
	startingPlayer := playerNumber(e.turn)
	log.Info().Msgf("player %d is starting", startingPlayer)

	last := start
	for e.state != Finished {
		now := time.Now()
		e.Update(now.Sub(last))
		last = now
		if e.state == Thinking {
			time.Sleep(meta.TICK)
		}
	}

	gameMetric := metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         playerName(e.winner),
		Reason:         string(e.reason),
		Moves:          len(e.history),
		StartTime:      start,
		Duration:       time.Since(start),
	}
	moveMetrics := make([]metrics.MoveMetric, len(e.history))
	for i, u := range e.history {
		moveMetrics[i] = metrics.MoveMetric{
			Step:      i + 1,
			Player:    playerNumber(u.Player),
			Elapsed:   u.Elapsed,
			Remaining: u.Remaining,
		}
	}
	return gameMetric.Winner, gameMetric, moveMetrics
}

func (e *LocalEngine) Board() game.Board { return e.board }

func (e *LocalEngine) Turn() game.Cell { return e.turn }

func (e *LocalEngine) State() State { return e.state }

func (e *LocalEngine) Winner() game.Cell { return e.winner }

func (e *LocalEngine) Reason() Reason { return e.reason }

func (e *LocalEngine) History() []Update { return e.history }

func (e *LocalEngine) Remaining(player game.Cell) time.Duration {
	return e.remaining[player]
}

// prevBoard is the board one ply back, or the zero Board on the first ply
// (no reachable position equals it, so repetition checks never match).
func (e *LocalEngine) prevBoard() game.Board {
	if len(e.history) == 0 {
		return game.Board{}
	}
	return e.history[len(e.history)-1].Board
}

func opponentOf(player game.Cell) game.Cell {
	opponent, err := player.Opponent()
	if err != nil {
		panic(err)
	}
	return opponent
}

func playerNumber(player game.Cell) int {
	switch player {
	case game.Player1:
		return 1
	case game.Player2:
		return 2
	default:
		return 0
	}
}

func playerName(player game.Cell) string {
	switch player {
	case game.Player1:
		return "Player1"
	case game.Player2:
		return "Player2"
	default:
		return ""
	}
}
