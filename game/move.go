package game

import "golang.org/x/exp/slices"

// Move is a destination plus the ordered squares of the pieces jumped to
// reach it. Captures is empty for a simple step.
type Move struct {
	To       Square
	Captures []Square
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// MoveSet maps each reachable destination to the move that reaches it.
type MoveSet map[Square]Move

// add records m unless a chain with at least as many captures already ends
// on the same square.
func (ms MoveSet) add(m Move) {
	if prev, ok := ms[m.To]; ok && len(prev.Captures) >= len(m.Captures) {
		return
	}
	ms[m.To] = m
}

func (ms MoveSet) Contains(sq Square) bool {
	_, ok := ms[sq]
	return ok
}

func (ms MoveSet) HasCapture() bool {
	for _, m := range ms {
		if m.IsCapture() {
			return true
		}
	}
	return false
}

// Destinations returns the keys in row-major order.
func (ms MoveSet) Destinations() []Square {
	squares := make([]Square, 0, len(ms))
	for sq := range ms {
		squares = append(squares, sq)
	}
	slices.SortFunc(squares, compareSquares)
	return squares
}

func compareSquares(a, b Square) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// PieceMoves is the legal move set of the piece on From.
type PieceMoves struct {
	From  Square
	Moves MoveSet
}
