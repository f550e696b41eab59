package player

import (
	"checkers/game"

	"golang.org/x/exp/rand"
)

// Player chooses a move for the side to move from the pieces that can move.
type Player interface {
	TakeTurn(movable []game.PieceMoves) (from, to game.Square, ok bool)
}

// Random picks a movable piece uniformly, then one of its destinations
// uniformly, the same policy the playouts use.
type Random struct {
	Side game.Side
	rng  *rand.Rand
}

// NewRandom creates a random player for side.
func NewRandom(side game.Side, seed uint64) *Random {
	return &Random{
		Side: side,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// TakeTurn decides on a move to perform. ok is false when nothing can move.
func (p *Random) TakeTurn(movable []game.PieceMoves) (from, to game.Square, ok bool) {
	if len(movable) == 0 {
		return game.Square{}, game.Square{}, false
	}
	picked := movable[p.rng.Intn(len(movable))]
	destinations := picked.Moves.Destinations()
	if len(destinations) == 0 {
		return game.Square{}, game.Square{}, false
	}
	return picked.From, destinations[p.rng.Intn(len(destinations))], true
}
