package searcher

import (
	"checkers/game"
	"checkers/meta"

	"github.com/google/uuid"
)

// Defaults for a batch of playouts.
const (
	DefaultSimulations = meta.SIMULATIONS
	DefaultCutoff      = meta.MAX_MOVES
	DefaultYieldEvery  = meta.YIELD_EVERY
)

// Tally is the outcome count of one batch. Batch, Position, Ply and Turn
// identify the state the batch was started for.
type Tally struct {
	Batch       uuid.UUID
	Position    game.Position
	Ply         int
	Turn        game.Side
	Simulations int
	WinsA       int
	WinsB       int
	Draws       int
	Total       int
}

func (t Tally) Wins(side game.Side) int {
	switch side {
	case game.SideA:
		return t.WinsA
	case game.SideB:
		return t.WinsB
	}
	return 0
}

// Probabilities returns the observed share of wins for A, wins for B and
// draws. All are zero before the first playout completes.
func (t Tally) Probabilities() (a, b, draw float64) {
	if t.Total == 0 {
		return 0, 0, 0
	}
	total := float64(t.Total)
	return float64(t.WinsA) / total, float64(t.WinsB) / total, float64(t.Draws) / total
}

// Complete reports whether every playout of the batch has been counted.
func (t Tally) Complete() bool {
	return t.Simulations > 0 && t.Total == t.Simulations
}

// For reports whether the tally was computed for state.
func (t Tally) For(state game.State) bool {
	return t.Batch != uuid.Nil && t.Ply == state.Ply && t.Turn == state.Turn && t.Position == state.Position
}
