package game

// State is a position together with the side to move and the number of
// half-moves played to reach it.
type State struct {
	Position Position
	Turn     Side
	Ply      int
}

// NewState returns the opening position with side A to move.
func NewState() State {
	return State{Position: NewPosition(), Turn: SideA}
}

// Play applies m for the piece on from and hands the turn to the opponent.
func (s *State) Play(from Square, m Move) {
	s.Position.Apply(from, m)
	s.Turn = s.Turn.Opponent()
	s.Ply++
}

func (s *State) Outcome() (winner Side, over bool) {
	return Outcome(&s.Position, s.Turn)
}
