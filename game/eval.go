package game

// Outcome reports whether the game is decided. A side with no pieces loses
// whoever is to move; otherwise the side to move loses when none of its
// pieces can move.
func Outcome(pos *Position, toMove Side) (winner Side, over bool) {
	if pos.Remaining(SideA) == 0 {
		return SideB, true
	}
	if pos.Remaining(SideB) == 0 {
		return SideA, true
	}
	if !CanMove(pos, toMove) {
		return toMove.Opponent(), true
	}
	return NoSide, false
}

// Evaluate scores material from side A's point of view: one point per piece
// and half a point per king.
func Evaluate(pos *Position) float64 {
	pieces := pos.Remaining(SideA) - pos.Remaining(SideB)
	kings := pos.Kings(SideA) - pos.Kings(SideB)
	return float64(pieces) + 0.5*float64(kings)
}
