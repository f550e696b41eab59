package game

import "fmt"

// Rune is the board text of p. Board text uses one character per square:
// 'a'/'b' for men, 'A'/'B' for kings and '.' (or ' ') for an empty square.
func (p Piece) Rune() byte {
	switch {
	case p.Side == SideA && p.King:
		return 'A'
	case p.Side == SideA:
		return 'a'
	case p.Side == SideB && p.King:
		return 'B'
	case p.Side == SideB:
		return 'b'
	default:
		return '.'
	}
}

// FromRows builds a position from up to eight rows of board text, top row
// first. It panics on malformed input.
func FromRows(rows ...string) Position {
	if len(rows) > Rows {
		panic(fmt.Sprintf("got %d rows, board has %d", len(rows), Rows))
	}
	p := EmptyPosition()
	for row, line := range rows {
		if len(line) > Cols {
			panic(fmt.Sprintf("row %d has %d columns, board has %d", row, len(line), Cols))
		}
		for col := 0; col < len(line); col++ {
			sq := Square{Row: row, Col: col}
			switch line[col] {
			case '.', ' ':
			case 'a':
				p.Place(sq, Piece{Side: SideA})
			case 'A':
				p.Place(sq, Piece{Side: SideA, King: true})
			case 'b':
				p.Place(sq, Piece{Side: SideB})
			case 'B':
				p.Place(sq, Piece{Side: SideB, King: true})
			default:
				panic(fmt.Sprintf("unknown piece %q at %v", line[col], sq))
			}
		}
	}
	return p
}
