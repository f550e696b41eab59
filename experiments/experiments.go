package experiments

import (
	"context"
	"fmt"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/player"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

const (
	NumGames = 30
	NumSeeds = 10
)

// Setup is shared by every experiment.
type Setup struct {
	Root        string // results go to Root/<experiment>/<timestamp>
	Simulations int
	Cutoff      int
	Seed        uint64 // first seed, later runs count up from it
	Forced      bool
}

func DefaultSetup() Setup {
	return Setup{
		Root:        "results",
		Simulations: searcher.DefaultSimulations,
		Cutoff:      searcher.DefaultCutoff,
		Seed:        1,
	}
}

// RunConvergence estimates the opening position once per seed. On the
// symmetric opening the estimates should agree on a near even game.
func RunConvergence(setup Setup, seeds int) (string, error) {
	name := "convergence"
	log.Info().Msgf("starting %s experiment over %d seeds...", name, seeds)

	records := []metrics.BatchRecord{}
	for i := 0; i < seeds; i++ {
		seed := setup.Seed + uint64(i)
		record := estimate(setup, seed, game.NewState())
		records = append(records, record)

		log.Info().Msgf("seed %d of %d: A=%d B=%d draw=%d in %s", i+1, seeds, record.WinsA, record.WinsB, record.Draws, record.Duration)
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(setup.Root, name, func(w *metrics.Writer) error {
		return w.WriteBatchRecords(records)
	})
}

// RunSelfPlay plays games between random players and records the estimate
// shown before every move.
func RunSelfPlay(ctx context.Context, setup Setup, games int) (string, error) {
	name := "selfplay"
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for i := 0; i < games; i++ {
		if ctx.Err() != nil {
			log.Warn().Msgf("%s experiment stopped after %d games", name, i)
			break
		}
		log.Info().Msgf("starting game %d of %d...", i+1, games)

		seed := setup.Seed + uint64(i)
		winner, gameMetric, moveMetrics := runGame(ctx, setup, seed)
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Seed:       seed,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, games, winner)
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(setup.Root, name, func(w *metrics.Writer) error {
		err := w.WriteGameRecords(gameRecords)
		if err != nil {
			return err
		}
		log.Info().Msg("stored game records")
		return w.WriteMoveRecords(moveRecords)
	})
}

// runGame executes a single game between two random players. Every position
// gets a complete estimate before it is played.
func runGame(ctx context.Context, setup Setup, seed uint64) (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	players := []player.Player{
		player.NewRandom(game.SideA, seed),
		player.NewRandom(game.SideB, seed+1),
	}
	e := engine.LocalEngine(players, newEstimator(setup, seed), masterOptions(setup), engine.WithCompleteEstimates())
	defer e.Estimator.Wait()

	return e.Run(ctx)
}

// estimate runs one batch for state and waits for it.
func estimate(setup Setup, seed uint64, state game.State) metrics.BatchRecord {
	var record metrics.BatchRecord
	onComplete := func(tally searcher.Tally, metric metrics.BatchMetric) {
		record = metrics.BatchRecord{
			ID:          tally.Batch.String(),
			Seed:        seed,
			Ply:         tally.Ply,
			WinsA:       tally.WinsA,
			WinsB:       tally.WinsB,
			Draws:       tally.Draws,
			BatchMetric: metric,
		}
	}

	estimator := newEstimator(setup, seed, searcher.WithOnComplete(onComplete))
	if !estimator.Start(state) {
		panic("fresh estimator rejected a batch")
	}
	estimator.Wait()
	return record
}

// newEstimator seeds batch n with seed+n, so the first batch of a seeded
// experiment uses seed+1.
func newEstimator(setup Setup, seed uint64, extra ...searcher.Option) *searcher.Estimator {
	options := []searcher.Option{
		searcher.WithSimulations(setup.Simulations),
		searcher.WithCutoff(setup.Cutoff),
		searcher.WithSeed(seed),
		searcher.WithForcedCapture(setup.Forced),
		searcher.WithYield(0, 0),
		searcher.WithMetrics(),
	}
	return searcher.NewEstimator(append(options, extra...)...)
}

func masterOptions(setup Setup) []gamemaster.Option {
	return []gamemaster.Option{gamemaster.WithForcedCapture(setup.Forced)}
}

func store(root, name string, write func(w *metrics.Writer) error) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = write(writer)
	if err != nil {
		return "", fmt.Errorf("failed to store %s results: %w", name, err)
	}
	log.Info().Msgf("stored %s results in %s", name, writer.Dir())
	return writer.Dir(), nil
}
