package experiments

import (
	"time"

	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

var BatchSizes = []int{50, 100, 250, 500, 1000, 2000}

// RunThroughput times one batch of each size from the opening, so the
// batch size can be picked for the frame budget of the display.
func RunThroughput(setup Setup, sizes []int) (string, error) {
	name := "throughput"
	log.Info().Msgf("starting %s experiment...", name)

	records := []metrics.BatchRecord{}
	for i, size := range sizes {
		sized := setup
		sized.Simulations = size
		record := estimate(sized, setup.Seed, game.NewState())
		records = append(records, record)

		perPlayout := record.Duration / time.Duration(max(1, record.Playouts))
		log.Info().Msgf("batch %d of %d: %d playouts in %s (%s per playout, %d plies)", i+1, len(sizes), record.Playouts, record.Duration, perPlayout, record.Plies)
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(setup.Root, name, func(w *metrics.Writer) error {
		return w.WriteBatchRecords(records)
	})
}
