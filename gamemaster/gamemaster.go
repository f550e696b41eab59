package gamemaster

import (
	"checkers/game"

	"github.com/rs/zerolog/log"
)

// Phase is the state of the selection state machine.
type Phase int

const (
	AwaitingSelection Phase = iota
	PieceSelected
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingSelection:
		return "awaiting selection"
	case PieceSelected:
		return "piece selected"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Forecaster is told about every new position. Start returns false when it
// is still busy with an earlier one.
type Forecaster interface {
	Start(state game.State) bool
}

type Option func(gm *GameMaster)

func WithForecaster(f Forecaster) Option {
	return func(gm *GameMaster) {
		gm.forecaster = f
	}
}

// WithState makes games start from state instead of the opening position.
func WithState(state game.State) Option {
	return func(gm *GameMaster) {
		gm.start = state
	}
}

// WithForcedCapture only lets pieces that can capture move whenever the side
// to move has a capture.
func WithForcedCapture(forced bool) Option {
	return func(gm *GameMaster) {
		gm.forced = forced
	}
}

// GameMaster owns the live game and resolves clicks into moves. It is driven
// by a single input loop and is not safe for concurrent use.
type GameMaster struct {
	state    game.State
	phase    Phase
	selected game.Square
	moves    game.MoveSet
	winner   game.Side

	start      game.State
	forced     bool
	forecaster Forecaster
	pending    bool // last forecast request was rejected
}

// NewGameMaster initializes a new game.
func NewGameMaster(options ...Option) *GameMaster {
	gm := &GameMaster{start: game.NewState()}
	for _, option := range options {
		option(gm)
	}
	gm.Reset()
	return gm
}

// Reset discards the current game and starts a fresh one.
func (gm *GameMaster) Reset() {
	gm.state = gm.start
	gm.phase = AwaitingSelection
	gm.winner = game.NoSide
	gm.pending = false
	gm.clearSelection()
	log.Info().Msgf("new game started, %s to move", gm.state.Turn)

	gm.checkWinner()
	if gm.phase != GameOver {
		gm.turnChanged()
	}
}

// Select handles a click on (row, col) and reports whether the phase or the
// selection changed. A click on a legal destination plays the move; any other
// click drops the selection and is retried as a fresh selection. Clicks after
// the game is over are ignored.
func (gm *GameMaster) Select(row, col int) bool {
	if gm.phase == GameOver {
		return false
	}
	sq := game.Square{Row: row, Col: col}
	if !sq.OnBoard() {
		return false
	}

	phase, selected := gm.phase, gm.selected
	if gm.phase == PieceSelected {
		if gm.move(sq) {
			return true
		}
		gm.clearSelection()
	}
	gm.selectPiece(sq)
	return gm.phase != phase || gm.selected != selected
}

// Tick retries a forecast request that was rejected because the forecaster
// was busy. It is meant to be called once per frame.
func (gm *GameMaster) Tick() bool {
	if !gm.pending || gm.phase == GameOver || gm.forecaster == nil {
		return false
	}
	gm.pending = !gm.forecaster.Start(gm.state)
	return !gm.pending
}

func (gm *GameMaster) selectPiece(sq game.Square) bool {
	piece, ok := gm.state.Position.Get(sq)
	if !ok || piece.Side != gm.state.Turn {
		return false
	}
	gm.selected = sq
	gm.moves = gm.legalMoves(sq)
	gm.phase = PieceSelected
	return true
}

// legalMoves applies the side-wide capture policy on top of the piece's own
// move set.
func (gm *GameMaster) legalMoves(sq game.Square) game.MoveSet {
	if !gm.forced {
		return game.LegalMoves(&gm.state.Position, sq)
	}
	for _, pm := range game.Movable(&gm.state.Position, gm.state.Turn, true) {
		if pm.From == sq {
			return pm.Moves
		}
	}
	return game.MoveSet{}
}

func (gm *GameMaster) move(to game.Square) bool {
	m, ok := gm.moves[to]
	if !ok {
		return false
	}
	from := gm.selected
	gm.state.Play(from, m)
	gm.clearSelection()
	log.Debug().Msgf("ply %d: %v -> %v captured %d", gm.state.Ply, from, to, len(m.Captures))

	gm.checkWinner()
	if gm.phase != GameOver {
		gm.turnChanged()
	}
	return true
}

func (gm *GameMaster) clearSelection() {
	gm.selected = game.Square{Row: -1, Col: -1}
	gm.moves = nil
	if gm.phase == PieceSelected {
		gm.phase = AwaitingSelection
	}
}

// checkWinner determines if the side now to move has lost.
func (gm *GameMaster) checkWinner() {
	winner, over := gm.state.Outcome()
	if !over {
		return
	}
	gm.phase = GameOver
	gm.winner = winner
	gm.pending = false
	log.Info().Msgf("player %s wins after %d plies", winner, gm.state.Ply)
}

func (gm *GameMaster) turnChanged() {
	if gm.forecaster == nil {
		return
	}
	gm.pending = !gm.forecaster.Start(gm.state)
	if gm.pending {
		log.Debug().Msgf("forecast for ply %d deferred", gm.state.Ply)
	}
}
