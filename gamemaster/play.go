package gamemaster

import (
	"errors"
	"fmt"

	"checkers/game"
)

var (
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrNotYourPiece = errors.New("no piece of the side to move")
	ErrIllegalMove  = errors.New("illegal move")
)

// Play moves the piece on from to to as two clicks would, but reports why a
// move was refused instead of falling back to a new selection.
func (gm *GameMaster) Play(from, to game.Square) error {
	if gm.phase == GameOver {
		return ErrGameOver
	}
	if !from.OnBoard() || !to.OnBoard() {
		return fmt.Errorf("%w: %v -> %v is off the board", ErrIllegalMove, from, to)
	}
	piece, ok := gm.state.Position.Get(from)
	if !ok || piece.Side != gm.state.Turn {
		return fmt.Errorf("%w: %v", ErrNotYourPiece, from)
	}
	moves := gm.legalMoves(from)
	if !moves.Contains(to) {
		return fmt.Errorf("%w: %v -> %v", ErrIllegalMove, from, to)
	}

	gm.clearSelection()
	gm.selected = from
	gm.moves = moves
	gm.phase = PieceSelected
	gm.move(to)
	return nil
}

// Movable lists the pieces of the side to move that have a legal move under
// the controller's capture policy.
func (gm *GameMaster) Movable() []game.PieceMoves {
	if gm.phase == GameOver {
		return nil
	}
	return game.Movable(&gm.state.Position, gm.state.Turn, gm.forced)
}
