package player

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

func TestRandomTakeTurn(t *testing.T) {
	t.Run("picks a legal move", func(t *testing.T) {
		p := NewRandom(game.SideA, 1)
		pos := game.NewPosition()
		movable := game.Movable(&pos, game.SideA, false)

		for i := 0; i < 20; i++ {
			from, to, ok := p.TakeTurn(movable)
			require.True(t, ok)
			require.True(t, game.LegalMoves(&pos, from).Contains(to), "%v -> %v should be legal", from, to)
		}
	})

	t.Run("reports when nothing can move", func(t *testing.T) {
		p := NewRandom(game.SideB, 1)

		_, _, ok := p.TakeTurn(nil)
		require.False(t, ok)
	})

	t.Run("same seed makes the same choices", func(t *testing.T) {
		pos := game.NewPosition()
		movable := game.Movable(&pos, game.SideA, false)
		p1, p2 := NewRandom(game.SideA, 9), NewRandom(game.SideA, 9)

		for i := 0; i < 10; i++ {
			from1, to1, _ := p1.TakeTurn(movable)
			from2, to2, _ := p2.TakeTurn(movable)
			require.Equal(t, from1, from2)
			require.Equal(t, to1, to2)
		}
	})
}
