package game

import "fmt"

const (
	Rows = 8
	Cols = 8

	// PiecesPerSide is the number of men each side starts with.
	PiecesPerSide = 12
)

// Side identifies one of the two players. NoSide marks an empty square.
type Side int8

const (
	NoSide Side = iota
	SideA       // starts on rows 5-7 and moves first
	SideB       // starts on rows 0-2
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "-"
	}
}

func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	panic(fmt.Sprintf("side %d has no opponent", s))
}

// Forward is the row step a man of this side advances by.
func (s Side) Forward() int {
	if s == SideA {
		return -1
	}
	return 1
}

// PromotionRow is the farthest row for the side, where its men are crowned.
func (s Side) PromotionRow() int {
	if s == SideA {
		return 0
	}
	return Rows - 1
}

func (s Side) index() int {
	switch s {
	case SideA:
		return 0
	case SideB:
		return 1
	}
	panic(fmt.Sprintf("side %d has no counters", s))
}

// Piece is a value held by a board square. The zero Piece is an empty square.
type Piece struct {
	Side Side
	King bool
}

func (p Piece) Empty() bool {
	return p.Side == NoSide
}

// directions returns the diagonals a piece may start a move in.
func (p Piece) directions() []Direction {
	if p.King {
		return Diagonals[:]
	}
	if p.Side == SideA {
		return []Direction{NorthWest, NorthEast}
	}
	return []Direction{SouthWest, SouthEast}
}

// Square is a board coordinate. Only squares with an odd row+col sum are playable.
type Square struct {
	Row, Col int
}

func (sq Square) OnBoard() bool {
	return sq.Row >= 0 && sq.Row < Rows && sq.Col >= 0 && sq.Col < Cols
}

func (sq Square) Playable() bool {
	return sq.OnBoard() && (sq.Row+sq.Col)%2 == 1
}

func (sq Square) Step(d Direction) Square {
	return Square{Row: sq.Row + d.DRow, Col: sq.Col + d.DCol}
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
}

// Direction is a unit diagonal step.
type Direction struct {
	DRow, DCol int
}

var (
	NorthWest = Direction{DRow: -1, DCol: -1}
	NorthEast = Direction{DRow: -1, DCol: 1}
	SouthWest = Direction{DRow: 1, DCol: -1}
	SouthEast = Direction{DRow: 1, DCol: 1}
)

// Diagonals lists every direction in search order.
var Diagonals = [4]Direction{NorthWest, NorthEast, SouthWest, SouthEast}

func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}
