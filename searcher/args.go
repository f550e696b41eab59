package searcher

import (
	"time"

	"checkers/experiments/metrics"
)

type Option func(e *Estimator)

func WithSimulations(simulations int) Option {
	return func(e *Estimator) {
		if simulations > 0 {
			e.simulations = simulations
		}
	}
}

// WithCutoff sets the number of half-moves after which a playout is a draw.
func WithCutoff(moves int) Option {
	return func(e *Estimator) {
		if moves > 0 {
			e.cutoff = moves
		}
	}
}

// WithYield makes the worker pause every n playouts. A zero pause only
// yields the processor.
func WithYield(every int, pause time.Duration) Option {
	return func(e *Estimator) {
		if every >= 0 {
			e.yieldEvery = every
		}
		if pause >= 0 {
			e.yieldPause = pause
		}
	}
}

// WithSeed makes batches reproducible. Batch n is seeded with seed+n.
func WithSeed(seed uint64) Option {
	return func(e *Estimator) {
		e.seed = seed
		e.seeded = true
	}
}

// WithForcedCapture restricts playouts to capturing pieces whenever the side
// to move has a capture.
func WithForcedCapture(forced bool) Option {
	return func(e *Estimator) {
		e.forced = forced
	}
}

func WithMetrics() Option {
	return func(e *Estimator) {
		e.metrics = metrics.NewCollector()
	}
}

// WithOnComplete registers a callback run by the worker after each batch.
func WithOnComplete(fn func(Tally, metrics.BatchMetric)) Option {
	return func(e *Estimator) {
		e.onComplete = fn
	}
}
