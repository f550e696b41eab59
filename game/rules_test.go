package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

func TestLegalMovesSimple(t *testing.T) {
	t.Run("opening man on the edge has a single forward step", func(t *testing.T) {
		p := NewPosition()
		moves := LegalMoves(&p, sq(5, 0))

		require.Equal(t, MoveSet{sq(4, 1): {To: sq(4, 1)}}, moves)
	})

	t.Run("men never step backwards", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			".b......",
			"........",
			"...a....",
		)

		require.Equal(t, []Square{sq(3, 2), sq(3, 4)}, LegalMoves(&p, sq(4, 3)).Destinations())
		require.Equal(t, []Square{sq(3, 0), sq(3, 2)}, LegalMoves(&p, sq(2, 1)).Destinations())
	})

	t.Run("kings step in all four diagonals", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			"........",
			"........",
			"...A....",
		)

		require.Equal(t, []Square{sq(3, 2), sq(3, 4), sq(5, 2), sq(5, 4)}, LegalMoves(&p, sq(4, 3)).Destinations())
	})

	t.Run("empty square has no moves", func(t *testing.T) {
		p := NewPosition()
		require.Nil(t, LegalMoves(&p, sq(4, 1)))
	})

	t.Run("own pieces and doubled opponents block a direction", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			"........",
			"....b...",
			".a.b....",
			"..a.....",
		)

		require.Empty(t, LegalMoves(&p, sq(5, 2)))
	})

	t.Run("board edge stops a jump", func(t *testing.T) {
		p := FromRows(
			"........",
			"b.......",
			".a......",
		)

		require.Equal(t, MoveSet{sq(1, 2): {To: sq(1, 2)}}, LegalMoves(&p, sq(2, 1)))
	})

	t.Run("does not modify the position", func(t *testing.T) {
		p := NewPosition()
		before := p.String()
		for _, pl := range p.AllPieces(SideA) {
			LegalMoves(&p, pl.Square)
		}
		require.Equal(t, before, p.String())
	})
}

func TestLegalMovesCaptures(t *testing.T) {
	t.Run("single capture replaces the simple steps", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			"........",
			"..b.....",
			"...a....",
		)

		require.Equal(t, MoveSet{sq(5, 4): {To: sq(5, 4), Captures: []Square{sq(4, 3)}}}, LegalMoves(&p, sq(3, 2)))
	})

	t.Run("only the extended chain is offered", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			"........",
			"..b.....",
			"...a....",
			"........",
			".....a..",
		)

		moves := LegalMoves(&p, sq(3, 2))

		require.Equal(t, MoveSet{sq(7, 6): {To: sq(7, 6), Captures: []Square{sq(4, 3), sq(6, 5)}}}, moves)
		require.False(t, moves.Contains(sq(5, 4)), "intermediate landing must not be a destination")
	})

	t.Run("side A chains toward row zero", func(t *testing.T) {
		p := FromRows(
			"........",
			"..b.....",
			"........",
			"....b...",
			".....a..",
		)

		require.Equal(t, MoveSet{sq(0, 1): {To: sq(0, 1), Captures: []Square{sq(3, 4), sq(1, 2)}}}, LegalMoves(&p, sq(4, 5)))
	})

	t.Run("sibling chains keep independent capture lists", func(t *testing.T) {
		p := FromRows(
			"...b....",
			"..a.a...",
			"........",
			"..a...a.",
		)

		moves := LegalMoves(&p, sq(0, 3))

		require.Equal(t, MoveSet{
			sq(4, 3): {To: sq(4, 3), Captures: []Square{sq(1, 2), sq(3, 2)}},
			sq(4, 7): {To: sq(4, 7), Captures: []Square{sq(1, 4), sq(3, 6)}},
		}, moves)
	})

	t.Run("a man may continue a chain backwards", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			"........",
			"........",
			"........",
			"..b.b...",
			".a......",
		)

		require.Equal(t, MoveSet{sq(6, 5): {To: sq(6, 5), Captures: []Square{sq(5, 2), sq(5, 4)}}}, LegalMoves(&p, sq(6, 1)))
	})

	t.Run("a man reaching the far row ends its move", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			"........",
			"........",
			"........",
			"....b...",
			".a.a....",
		)

		require.Equal(t, MoveSet{sq(7, 2): {To: sq(7, 2), Captures: []Square{sq(6, 3)}}}, LegalMoves(&p, sq(5, 4)))
	})

	t.Run("a king ring ends on its origin without recapturing", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			".b.b....",
			"........",
			".b.b....",
			"..A.....",
		)

		moves := LegalMoves(&p, sq(5, 2))

		require.Equal(t, MoveSet{
			sq(5, 2): {To: sq(5, 2), Captures: []Square{sq(4, 1), sq(2, 1), sq(2, 3), sq(4, 3)}},
		}, moves)

		p.Apply(sq(5, 2), moves[sq(5, 2)])
		require.Zero(t, p.Remaining(SideB))
		piece, ok := p.Get(sq(5, 2))
		require.True(t, ok)
		require.True(t, piece.King)
		require.True(t, p.Consistent())
	})
}

func TestMoveSetAdd(t *testing.T) {
	short := Move{To: sq(3, 4), Captures: []Square{sq(4, 3)}}
	long := Move{To: sq(3, 4), Captures: []Square{sq(4, 1), sq(2, 1), sq(2, 3)}}
	other := Move{To: sq(3, 4), Captures: []Square{sq(4, 5)}}

	t.Run("keeps the longer chain whichever comes first", func(t *testing.T) {
		ms := MoveSet{}
		ms.add(short)
		ms.add(long)
		require.Equal(t, long, ms[sq(3, 4)])

		ms = MoveSet{}
		ms.add(long)
		ms.add(short)
		require.Equal(t, long, ms[sq(3, 4)])
	})

	t.Run("keeps the first chain on equal length", func(t *testing.T) {
		ms := MoveSet{}
		ms.add(short)
		ms.add(other)
		require.Equal(t, short, ms[sq(3, 4)])
	})
}

func TestMovable(t *testing.T) {
	t.Run("lists every piece with a move in the opening", func(t *testing.T) {
		p := NewPosition()
		movable := Movable(&p, SideA, true)

		from := make([]Square, 0, len(movable))
		for _, pm := range movable {
			from = append(from, pm.From)
		}
		require.Equal(t, []Square{sq(5, 0), sq(5, 2), sq(5, 4), sq(5, 6)}, from)
	})

	t.Run("forced capture keeps only capturing pieces", func(t *testing.T) {
		p := FromRows(
			"........",
			"........",
			"........",
			"........",
			"...b....",
			"..a...a.",
		)

		require.Len(t, Movable(&p, SideA, false), 2)
		forced := Movable(&p, SideA, true)
		require.Len(t, forced, 1)
		require.Equal(t, sq(5, 2), forced[0].From)
	})
}
