package gamemaster

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

type mockForecaster struct {
	busy    bool
	started []game.State
}

func (m *mockForecaster) Start(state game.State) bool {
	if m.busy {
		return false
	}
	m.started = append(m.started, state)
	return true
}

func sq(row, col int) game.Square {
	return game.Square{Row: row, Col: col}
}

func stateOf(turn game.Side, rows ...string) game.State {
	return game.State{Position: game.FromRows(rows...), Turn: turn}
}

func TestNewGameMaster(t *testing.T) {
	forecaster := &mockForecaster{}
	gm := NewGameMaster(WithForecaster(forecaster))

	require.Equal(t, AwaitingSelection, gm.Phase())
	require.Equal(t, game.SideA, gm.Turn())
	require.Len(t, forecaster.started, 1, "a new game should request a forecast")
	require.Zero(t, forecaster.started[0].Ply)
	_, selected := gm.Selected()
	require.False(t, selected)
}

func TestSelect(t *testing.T) {
	t.Run("selecting an own piece caches its moves", func(t *testing.T) {
		gm := NewGameMaster()

		require.True(t, gm.Select(5, 0))
		require.Equal(t, PieceSelected, gm.Phase())
		selected, ok := gm.Selected()
		require.True(t, ok)
		require.Equal(t, sq(5, 0), selected)
		require.Equal(t, game.MoveSet{sq(4, 1): {To: sq(4, 1)}}, gm.Moves())
	})

	t.Run("opponent pieces and empty squares are not selectable", func(t *testing.T) {
		gm := NewGameMaster()

		require.False(t, gm.Select(2, 1))
		require.False(t, gm.Select(4, 1))
		require.False(t, gm.Select(9, 9))
		require.Equal(t, AwaitingSelection, gm.Phase())
	})

	t.Run("simple opening move flips the turn and keeps counts", func(t *testing.T) {
		forecaster := &mockForecaster{}
		gm := NewGameMaster(WithForecaster(forecaster))

		require.True(t, gm.Select(5, 0))
		require.True(t, gm.Select(4, 1))

		state := gm.State()
		require.Equal(t, game.SideB, state.Turn)
		require.Equal(t, 1, state.Ply)
		require.Equal(t, game.PiecesPerSide, state.Position.Remaining(game.SideA))
		require.Equal(t, game.PiecesPerSide, state.Position.Remaining(game.SideB))
		require.Equal(t, AwaitingSelection, gm.Phase())
		require.Nil(t, gm.Moves())
		require.Len(t, forecaster.started, 2)
		require.Equal(t, 1, forecaster.started[1].Ply)
		require.Equal(t, game.SideB, forecaster.started[1].Turn)
	})

	t.Run("clicking another own piece moves the selection", func(t *testing.T) {
		gm := NewGameMaster()

		require.True(t, gm.Select(5, 0))
		require.True(t, gm.Select(5, 2))
		selected, _ := gm.Selected()
		require.Equal(t, sq(5, 2), selected)
		require.Equal(t, []game.Square{sq(4, 1), sq(4, 3)}, gm.Moves().Destinations())
	})

	t.Run("clicking an illegal square drops the selection", func(t *testing.T) {
		gm := NewGameMaster()

		require.True(t, gm.Select(5, 0))
		require.True(t, gm.Select(3, 2))
		require.Equal(t, AwaitingSelection, gm.Phase())
		require.Equal(t, game.SideA, gm.Turn())
	})

	t.Run("clicking the selected piece again changes nothing", func(t *testing.T) {
		gm := NewGameMaster()

		require.True(t, gm.Select(5, 2))
		require.False(t, gm.Select(5, 2))
		require.Equal(t, PieceSelected, gm.Phase())
	})

	t.Run("a capture removes the jumped pieces", func(t *testing.T) {
		gm := NewGameMaster(WithState(stateOf(game.SideB,
			"........",
			"........",
			"........",
			"..b.....",
			"...a....",
			"........",
			".....a..",
			"........",
		)))

		require.True(t, gm.Select(3, 2))
		require.Equal(t, []game.Square{sq(7, 6)}, gm.Moves().Destinations())
		require.True(t, gm.Select(7, 6))

		state := gm.State()
		require.Zero(t, state.Position.Remaining(game.SideA))
		piece, ok := state.Position.Get(sq(7, 6))
		require.True(t, ok)
		require.True(t, piece.King)
		require.Equal(t, GameOver, gm.Phase())
		require.Equal(t, game.SideB, gm.Winner())
	})
}

func TestGameOver(t *testing.T) {
	t.Run("blocking the last opponent piece ends the game", func(t *testing.T) {
		forecaster := &mockForecaster{}
		gm := NewGameMaster(WithForecaster(forecaster), WithState(stateOf(game.SideA,
			"........",
			"........",
			"........",
			"........",
			"........",
			"....a...",
			".b......",
			"a.a.....",
		)))
		require.Len(t, forecaster.started, 1)

		require.True(t, gm.Select(5, 4))
		require.True(t, gm.Select(4, 3))

		require.True(t, gm.GameOver())
		require.Equal(t, game.SideA, gm.Winner())
		require.Len(t, forecaster.started, 1, "no forecast once the game is decided")
		require.True(t, gm.View().GameOver())
	})

	t.Run("input is ignored until reset", func(t *testing.T) {
		forecaster := &mockForecaster{}
		gm := NewGameMaster(WithForecaster(forecaster), WithState(stateOf(game.SideA,
			"........",
			"........",
			"........",
			"........",
			"...b....",
			"..a.....",
		)))

		require.True(t, gm.Select(5, 2))
		require.True(t, gm.Select(3, 4))
		require.True(t, gm.GameOver())

		require.False(t, gm.Select(3, 4))
		require.ErrorIs(t, gm.Play(sq(3, 4), sq(2, 3)), ErrGameOver)
		require.Nil(t, gm.Movable())

		gm.Reset()
		require.Equal(t, AwaitingSelection, gm.Phase())
		require.Equal(t, game.NoSide, gm.Winner())
		state := gm.State()
		require.Equal(t, 1, state.Position.Remaining(game.SideB))
		require.Len(t, forecaster.started, 2, "reset should request a forecast")
	})

	t.Run("a decided start position is over immediately", func(t *testing.T) {
		gm := NewGameMaster(WithState(stateOf(game.SideB, "", "", "", "", "...a....")))

		require.True(t, gm.GameOver())
		require.Equal(t, game.SideA, gm.Winner())
	})
}

func TestTick(t *testing.T) {
	t.Run("retries a rejected forecast once the forecaster is free", func(t *testing.T) {
		forecaster := &mockForecaster{}
		gm := NewGameMaster(WithForecaster(forecaster))

		forecaster.busy = true
		require.True(t, gm.Select(5, 0))
		require.True(t, gm.Select(4, 1))
		require.True(t, gm.Pending())
		require.False(t, gm.Tick())

		forecaster.busy = false
		require.True(t, gm.Tick())
		require.False(t, gm.Pending())
		require.Len(t, forecaster.started, 2)
		require.Equal(t, 1, forecaster.started[1].Ply)

		require.False(t, gm.Tick(), "nothing left to retry")
	})

	t.Run("does nothing without a forecaster", func(t *testing.T) {
		gm := NewGameMaster()
		require.False(t, gm.Tick())
	})
}

func TestForcedCapture(t *testing.T) {
	start := stateOf(game.SideA,
		"........",
		"........",
		"........",
		"........",
		"...b....",
		"..a...a.",
	)

	t.Run("free choice by default", func(t *testing.T) {
		gm := NewGameMaster(WithState(start))

		require.True(t, gm.Select(5, 6))
		require.Len(t, gm.Moves(), 2)
		require.Len(t, gm.Movable(), 2)
	})

	t.Run("only capturing pieces may move when forced", func(t *testing.T) {
		gm := NewGameMaster(WithState(start), WithForcedCapture(true))

		require.True(t, gm.Select(5, 6))
		require.Empty(t, gm.Moves())
		require.Len(t, gm.Movable(), 1)
		require.ErrorIs(t, gm.Play(sq(5, 6), sq(4, 5)), ErrIllegalMove)
		require.NoError(t, gm.Play(sq(5, 2), sq(3, 4)))
	})
}

func TestPlay(t *testing.T) {
	gm := NewGameMaster()

	require.ErrorIs(t, gm.Play(sq(2, 1), sq(3, 0)), ErrNotYourPiece)
	require.ErrorIs(t, gm.Play(sq(5, 0), sq(3, 2)), ErrIllegalMove)
	require.ErrorIs(t, gm.Play(sq(5, 0), sq(-1, 2)), ErrIllegalMove)
	require.NoError(t, gm.Play(sq(5, 0), sq(4, 1)))
	require.Equal(t, game.SideB, gm.Turn())
	require.Equal(t, AwaitingSelection, gm.Phase())
}

func TestView(t *testing.T) {
	gm := NewGameMaster()
	require.True(t, gm.Select(5, 2))

	view := gm.View()
	require.True(t, view.HasSelection())
	require.Equal(t, sq(5, 2), view.Selected)

	delete(view.Moves, sq(4, 1))
	require.Len(t, gm.Moves(), 2, "view must not share the cached move set")
}
