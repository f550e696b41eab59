package game

import (
	"fmt"
	"strings"
)

// Position is the board grid plus piece counters kept in step with it.
// It holds no references, so a plain copy is a fully independent clone.
type Position struct {
	grid      [Rows][Cols]Piece
	remaining [2]int
	kings     [2]int
}

// Placement is a piece together with the square it stands on.
type Placement struct {
	Square Square
	Piece  Piece
}

// EmptyPosition returns a board without pieces.
func EmptyPosition() Position {
	return Position{}
}

// NewPosition returns the standard opening: 12 men per side on the dark
// squares of the three rows nearest to each player.
func NewPosition() Position {
	p := EmptyPosition()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			sq := Square{Row: row, Col: col}
			if !sq.Playable() {
				continue
			}
			switch {
			case row < 3:
				p.Place(sq, Piece{Side: SideB})
			case row > 4:
				p.Place(sq, Piece{Side: SideA})
			}
		}
	}
	return p
}

func (p *Position) Clone() Position {
	return *p
}

// Get returns the piece on sq, if any. Asking for a square off the board is a bug.
func (p *Position) Get(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		panic(fmt.Sprintf("square %v is off the board", sq))
	}
	piece := p.grid[sq.Row][sq.Col]
	return piece, !piece.Empty()
}

// Place puts a piece on an empty playable square. Used to set up positions.
func (p *Position) Place(sq Square, piece Piece) {
	if !sq.Playable() {
		panic(fmt.Sprintf("square %v is not playable", sq))
	}
	if piece.Empty() {
		panic("cannot place an empty piece")
	}
	if _, occupied := p.Get(sq); occupied {
		panic(fmt.Sprintf("square %v is already occupied", sq))
	}
	p.grid[sq.Row][sq.Col] = piece
	i := piece.Side.index()
	p.remaining[i]++
	if piece.King {
		p.kings[i]++
	}
}

// MovePiece relocates the piece on from to the empty square to and crowns it
// if it lands on its promotion row. Legality is not checked here.
func (p *Position) MovePiece(from, to Square) {
	piece, ok := p.Get(from)
	if !ok {
		panic(fmt.Sprintf("no piece to move on %v", from))
	}
	if from == to {
		// A king's capture ring may end where it started.
		p.Promote(to)
		return
	}
	if _, occupied := p.Get(to); occupied {
		panic(fmt.Sprintf("cannot move %v onto occupied %v", from, to))
	}
	p.grid[from.Row][from.Col] = Piece{}
	p.grid[to.Row][to.Col] = piece
	p.Promote(to)
}

// Promote crowns the man on sq when it stands on its promotion row and
// reports whether it did. Kings and men elsewhere are left untouched.
func (p *Position) Promote(sq Square) bool {
	piece, ok := p.Get(sq)
	if !ok || piece.King || sq.Row != piece.Side.PromotionRow() {
		return false
	}
	p.grid[sq.Row][sq.Col].King = true
	p.kings[piece.Side.index()]++
	return true
}

// RemovePieces clears every listed square, keeping the counters of the
// owning side in step. Empty squares are skipped.
func (p *Position) RemovePieces(squares []Square) {
	for _, sq := range squares {
		piece, ok := p.Get(sq)
		if !ok {
			continue
		}
		p.grid[sq.Row][sq.Col] = Piece{}
		i := piece.Side.index()
		p.remaining[i]--
		if piece.King {
			p.kings[i]--
		}
		if p.remaining[i] < 0 || p.kings[i] < 0 {
			panic(fmt.Sprintf("counters for side %v went negative", piece.Side))
		}
	}
}

// Apply plays m for the piece on from: the piece moves and everything it
// jumped is removed.
func (p *Position) Apply(from Square, m Move) {
	p.MovePiece(from, m.To)
	p.RemovePieces(m.Captures)
}

// AllPieces lists the pieces of side in row-major order.
func (p *Position) AllPieces(side Side) []Placement {
	pieces := make([]Placement, 0, p.Remaining(side))
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			piece := p.grid[row][col]
			if piece.Side == side {
				pieces = append(pieces, Placement{Square: Square{Row: row, Col: col}, Piece: piece})
			}
		}
	}
	return pieces
}

func (p *Position) Remaining(side Side) int {
	return p.remaining[side.index()]
}

func (p *Position) Kings(side Side) int {
	return p.kings[side.index()]
}

// Consistent recounts the grid and reports whether the counters match it.
func (p *Position) Consistent() bool {
	var remaining, kings [2]int
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			piece := p.grid[row][col]
			if piece.Empty() {
				continue
			}
			remaining[piece.Side.index()]++
			if piece.King {
				kings[piece.Side.index()]++
			}
		}
	}
	return remaining == p.remaining && kings == p.kings
}

func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			sb.WriteByte(p.grid[row][col].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
