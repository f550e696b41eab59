package game

import "golang.org/x/exp/slices"

// LegalMoves returns the destinations open to the piece on from. Men step
// forward only, kings in every diagonal. A jump continues while another
// capture is available from the landing square, and only the fully extended
// chain is offered. Once any capture exists, simple steps are dropped.
// The position is not modified. An empty square yields nil.
func LegalMoves(pos *Position, from Square) MoveSet {
	piece, ok := pos.Get(from)
	if !ok {
		return nil
	}

	s := chainSearch{pos: pos, from: from, piece: piece, moves: MoveSet{}}
	for _, d := range piece.directions() {
		next := from.Step(d)
		if !next.OnBoard() {
			continue
		}
		target, occupied := pos.Get(next)
		if !occupied {
			s.moves.add(Move{To: next})
			continue
		}
		if target.Side == piece.Side {
			continue
		}
		landing := next.Step(d)
		if !landing.OnBoard() || !s.vacant(landing) {
			continue
		}
		s.extend(landing, d, []Square{next})
	}

	if s.moves.HasCapture() {
		for sq, m := range s.moves {
			if !m.IsCapture() {
				delete(s.moves, sq)
			}
		}
	}
	return s.moves
}

type chainSearch struct {
	pos   *Position
	from  Square
	piece Piece
	moves MoveSet
}

// vacant treats the origin as empty: the moving piece has left it.
func (s *chainSearch) vacant(sq Square) bool {
	if sq == s.from {
		return true
	}
	_, occupied := s.pos.Get(sq)
	return !occupied
}

// extend continues a capture chain that has just landed on at after jumping
// in direction arrived. captures is never modified; every branch gets its
// own copy.
func (s *chainSearch) extend(at Square, arrived Direction, captures []Square) {
	// A man reaching the far row is crowned and the move ends.
	if !s.piece.King && at.Row == s.piece.Side.PromotionRow() {
		s.moves.add(Move{To: at, Captures: captures})
		return
	}

	extended := false
	for _, d := range Diagonals {
		if d == arrived.Reverse() {
			continue
		}
		over := at.Step(d)
		landing := over.Step(d)
		if !landing.OnBoard() {
			continue
		}
		victim, occupied := s.pos.Get(over)
		if !occupied || victim.Side == s.piece.Side || slices.Contains(captures, over) {
			continue
		}
		if !s.vacant(landing) {
			continue
		}
		extended = true
		s.extend(landing, d, withCapture(captures, over))
	}
	if !extended {
		s.moves.add(Move{To: at, Captures: captures})
	}
}

func withCapture(captures []Square, sq Square) []Square {
	next := make([]Square, len(captures), len(captures)+1)
	copy(next, captures)
	return append(next, sq)
}

// Movable returns the move sets of every piece of side that has at least one
// legal move, in row-major order. With forced set, pieces without a capture
// are left out whenever some piece of the side can capture.
func Movable(pos *Position, side Side, forced bool) []PieceMoves {
	var movable []PieceMoves
	capturing := false
	for _, pl := range pos.AllPieces(side) {
		moves := LegalMoves(pos, pl.Square)
		if len(moves) == 0 {
			continue
		}
		if moves.HasCapture() {
			capturing = true
		}
		movable = append(movable, PieceMoves{From: pl.Square, Moves: moves})
	}
	if !forced || !capturing {
		return movable
	}
	forcedMoves := movable[:0]
	for _, pm := range movable {
		if pm.Moves.HasCapture() {
			forcedMoves = append(forcedMoves, pm)
		}
	}
	return forcedMoves
}

// CanMove reports whether any piece of side has a legal move.
func CanMove(pos *Position, side Side) bool {
	for _, pl := range pos.AllPieces(side) {
		if len(LegalMoves(pos, pl.Square)) > 0 {
			return true
		}
	}
	return false
}
