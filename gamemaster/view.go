package gamemaster

import "checkers/game"

// View is a read-only snapshot of the controller for a renderer.
type View struct {
	State    game.State
	Phase    Phase
	Selected game.Square
	Moves    game.MoveSet // nil unless a piece is selected
	Winner   game.Side
}

func (v View) HasSelection() bool {
	return v.Phase == PieceSelected
}

func (v View) GameOver() bool {
	return v.Phase == GameOver
}

// View copies the current state so the caller may keep it across frames.
func (gm *GameMaster) View() View {
	return View{
		State:    gm.state,
		Phase:    gm.phase,
		Selected: gm.selected,
		Moves:    gm.Moves(),
		Winner:   gm.winner,
	}
}

// State returns a copy of the live game state.
func (gm *GameMaster) State() game.State {
	return gm.state
}

func (gm *GameMaster) Turn() game.Side {
	return gm.state.Turn
}

func (gm *GameMaster) Phase() Phase {
	return gm.phase
}

func (gm *GameMaster) Winner() game.Side {
	return gm.winner
}

func (gm *GameMaster) GameOver() bool {
	return gm.phase == GameOver
}

// Selected returns the selected square, if any.
func (gm *GameMaster) Selected() (game.Square, bool) {
	return gm.selected, gm.phase == PieceSelected
}

// Moves returns a copy of the cached move set of the selected piece.
func (gm *GameMaster) Moves() game.MoveSet {
	if gm.moves == nil {
		return nil
	}
	moves := make(game.MoveSet, len(gm.moves))
	for sq, m := range gm.moves {
		moves[sq] = m
	}
	return moves
}

// Pending reports whether a forecast for the current position is still owed.
func (gm *GameMaster) Pending() bool {
	return gm.pending
}
