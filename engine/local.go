package engine

import (
	"context"
	"fmt"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/player"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

// FrameFunc receives one snapshot per frame. It must not keep the view's
// move set beyond the call.
type FrameFunc func(view gamemaster.View, tally searcher.Tally, running bool)

type Option func(e *Local)

func WithMaxMoves(moves int) Option {
	return func(e *Local) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithFrameInterval paces the game so the estimator can make progress
// between moves.
func WithFrameInterval(interval time.Duration) Option {
	return func(e *Local) {
		if interval > 0 {
			e.frame = interval
		}
	}
}

// WithCompleteEstimates waits for a full estimate of every position before
// the player to move is asked for a move.
func WithCompleteEstimates() Option {
	return func(e *Local) {
		e.complete = true
	}
}

func WithOnFrame(fn FrameFunc) Option {
	return func(e *Local) {
		e.onFrame = fn
	}
}

// Local plays a game between two players on one machine, feeding their
// moves through the controller as clicks.
type Local struct {
	Master    *gamemaster.GameMaster
	Estimator *searcher.Estimator
	Players   [2]player.Player // side A, side B

	maxMoves int
	frame    time.Duration
	complete bool
	onFrame  FrameFunc
}

func LocalEngine(players []player.Player, estimator *searcher.Estimator, masterOptions []gamemaster.Option, options ...Option) *Local {
	if len(players) != 2 {
		panic("need exactly two players")
	}
	if estimator == nil {
		panic("need an estimator")
	}

	e := &Local{
		Estimator: estimator,
		Players:   [2]player.Player{players[0], players[1]},
		maxMoves:  MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	e.Master = gamemaster.NewGameMaster(append(masterOptions, gamemaster.WithForecaster(estimator))...)
	return e
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run(ctx context.Context) (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	gm := e.Master
	startTime := time.Now()
	startingPlayer := gm.Turn()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", startingPlayer)

	step := 0
	for !gm.GameOver() && step < e.maxMoves {
		if ctx.Err() != nil {
			log.Warn().Msgf("game stopped after %d moves: %v", step, ctx.Err())
			break
		}

		gm.Tick()
		for e.complete {
			e.Estimator.Wait()
			if !gm.Pending() {
				break
			}
			gm.Tick()
		}

		view := gm.View()
		tally := e.frameOut(view)
		if tally.For(view.State) {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:   step + 1,
				Player: view.State.Turn.String(),
				WinsA:  tally.WinsA,
				WinsB:  tally.WinsB,
				Draws:  tally.Draws,
				Total:  tally.Total,
			})
		}

		e.play(view.State)
		step++

		if e.frame > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(e.frame):
			}
		}
	}
	e.frameOut(gm.View())

	if gm.GameOver() {
		log.Info().Msgf("game over after %d moves, winner: %s", step, gm.Winner())
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", step)
	}

	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: startingPlayer.String(),
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     step,
	}
	if gm.GameOver() {
		gameMetric.Winner = gm.Winner().String()
	}
	return gm.Winner(), gameMetric, moveMetrics
}

func (e *Local) frameOut(view gamemaster.View) searcher.Tally {
	tally := e.Estimator.Tally()
	if e.onFrame != nil {
		e.onFrame(view, tally, e.Estimator.Running())
	}
	return tally
}

// play asks the player to move and clicks its choice through the controller.
func (e *Local) play(state game.State) {
	p := e.Players[0]
	if state.Turn == game.SideB {
		p = e.Players[1]
	}
	from, to, ok := p.TakeTurn(e.Master.Movable())
	if !ok {
		panic(fmt.Sprintf("player %s has no move in a game that is not over", state.Turn))
	}

	e.Master.Select(from.Row, from.Col)
	e.Master.Select(to.Row, to.Col)
	if e.Master.State().Ply != state.Ply+1 {
		panic(fmt.Sprintf("move %v -> %v by %s was not played", from, to, state.Turn))
	}
}
