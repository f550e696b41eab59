package searcher

import (
	"runtime"
	"sync"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Estimator forecasts the outcome of a position by playing random games from
// it on a single background worker. At most one batch runs at a time.
type Estimator struct {
	simulations int
	cutoff      int
	yieldEvery  int
	yieldPause  time.Duration
	seed        uint64
	seeded      bool
	forced      bool
	metrics     metrics.Collector
	onComplete  func(Tally, metrics.BatchMetric)

	mu      sync.Mutex
	running bool
	batches uint64
	tally   Tally
	done    chan struct{}
}

func NewEstimator(options ...Option) *Estimator {
	e := &Estimator{ // Default values
		simulations: DefaultSimulations,
		cutoff:      DefaultCutoff,
		yieldEvery:  DefaultYieldEvery,
		yieldPause:  meta.YIELD_PAUSE,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Start resets the tally and launches a batch for a private copy of state.
// It returns false and changes nothing while a batch is still running.
func (e *Estimator) Start(state game.State) bool {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		log.Debug().Msgf("estimate for ply %d rejected: batch %s still running", state.Ply, e.tally.Batch)
		return false
	}
	e.running = true
	e.batches++
	e.tally = Tally{
		Batch:       uuid.New(),
		Position:    state.Position,
		Ply:         state.Ply,
		Turn:        state.Turn,
		Simulations: e.simulations,
	}
	e.done = make(chan struct{})
	batch, done := e.tally.Batch, e.done
	rng := rand.New(rand.NewSource(e.seedFor(e.batches)))
	e.mu.Unlock()

	log.Debug().Msgf("estimate batch %s started for ply %d, %s to move", batch, state.Ply, state.Turn)
	go e.run(state, rng, done)
	return true
}

// Tally returns a consistent snapshot of the current batch counters.
func (e *Estimator) Tally() Tally {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tally
}

func (e *Estimator) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Wait blocks until the batch in flight, if any, has finished.
func (e *Estimator) Wait() {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (e *Estimator) seedFor(batch uint64) uint64 {
	if e.seeded {
		return e.seed + batch
	}
	return uint64(time.Now().UnixNano())
}

func (e *Estimator) run(root game.State, rng *rand.Rand, done chan struct{}) {
	defer close(done)

	e.metrics.Start(e.simulations, e.cutoff)
	for i := 1; i <= e.simulations; i++ {
		winner, plies := rollout(root, e.cutoff, e.forced, rng)
		e.metrics.AddPlayout(plies)
		if winner != game.NoSide {
			e.metrics.AddFullPlayout()
		}
		e.record(winner)

		if e.yieldEvery > 0 && i%e.yieldEvery == 0 {
			e.pause()
		}
	}
	metric := e.metrics.Complete()

	e.mu.Lock()
	e.running = false
	tally := e.tally
	e.mu.Unlock()

	log.Debug().Msgf("estimate batch %s finished: A=%d B=%d draw=%d of %d", tally.Batch, tally.WinsA, tally.WinsB, tally.Draws, tally.Total)
	if e.onComplete != nil {
		e.onComplete(tally, metric)
	}
}

// record counts one playout. All four counters change under one lock so a
// reader never sees a total that disagrees with the outcomes.
func (e *Estimator) record(winner game.Side) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch winner {
	case game.SideA:
		e.tally.WinsA++
	case game.SideB:
		e.tally.WinsB++
	default:
		e.tally.Draws++
	}
	e.tally.Total++
}

func (e *Estimator) pause() {
	if e.yieldPause > 0 {
		time.Sleep(e.yieldPause)
		return
	}
	runtime.Gosched()
}

// rollout plays uniformly random legal moves on its own copy of state until
// a side wins or cutoff half-moves have been played. It returns the winner,
// NoSide for a draw, and the number of half-moves played.
func rollout(state game.State, cutoff int, forced bool, rng *rand.Rand) (game.Side, int) {
	moves := 0
	for {
		pos := &state.Position
		if pos.Remaining(game.SideA) == 0 {
			return game.SideB, moves
		}
		if pos.Remaining(game.SideB) == 0 {
			return game.SideA, moves
		}

		movable := game.Movable(pos, state.Turn, forced)
		if len(movable) == 0 {
			return state.Turn.Opponent(), moves
		}
		picked := movable[rng.Intn(len(movable))]
		destinations := picked.Moves.Destinations()
		to := destinations[rng.Intn(len(destinations))]
		state.Play(picked.From, picked.Moves[to])

		moves++
		if moves >= cutoff {
			return game.NoSide, moves
		}
	}
}
