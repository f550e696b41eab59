package engine

import (
	"context"

	"checkers/experiments/metrics"
	"checkers/game"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till there's a winner, a max number of moves is reached
	// or ctx is done
	Run(ctx context.Context) (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
