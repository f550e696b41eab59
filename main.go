package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"checkers/config"
	"checkers/engine"
	"checkers/experiments"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/player"
	"checkers/render"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	mode := flag.String("mode", "play", "play, selfplay, games, convergence or throughput")
	simulations := flag.Int("simulations", 0, "Number of playouts per estimate")
	seed := flag.Uint64("seed", 0, "Seed for playouts and random players, 0 for the clock")
	forced := flag.Bool("forced", false, "Only pieces that can capture may move when a capture exists")
	games := flag.Int("games", experiments.NumGames, "Number of self-play games")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(2)
	}
	applyFlags(flag.CommandLine, cfg, *simulations, *seed, *forced)
	err = cfg.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		runInteractive(ctx, cfg)
	case "selfplay":
		runSelfPlay(ctx, cfg)
	case "games", "convergence", "throughput":
		runExperiment(ctx, cfg, *mode, *games)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// applyFlags overrides cfg with the flags given on the command line only, so
// -seed 0 or -forced=false can undo a config file.
func applyFlags(fs *flag.FlagSet, cfg *config.Config, simulations int, seed uint64, forced bool) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "simulations":
			cfg.Simulations = simulations
		case "seed":
			cfg.Seed = seed
		case "forced":
			cfg.ForcedCapture = forced
		}
	})
}

func setupLogging(cfg *config.Config) {
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly, NoColor: !cfg.Color})
}

func newEstimator(cfg *config.Config) *searcher.Estimator {
	options := []searcher.Option{
		searcher.WithSimulations(cfg.Simulations),
		searcher.WithCutoff(cfg.MaxMoves),
		searcher.WithYield(cfg.YieldEvery, cfg.YieldPause),
		searcher.WithForcedCapture(cfg.ForcedCapture),
	}
	if cfg.Seed > 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}
	return searcher.NewEstimator(options...)
}

// runInteractive reads "row col" clicks from stdin and redraws the board
// every frame while the estimate fills in.
func runInteractive(ctx context.Context, cfg *config.Config) {
	estimator := newEstimator(cfg)
	gm := gamemaster.NewGameMaster(
		gamemaster.WithForecaster(estimator),
		gamemaster.WithForcedCapture(cfg.ForcedCapture),
	)
	r := render.New(os.Stdout, render.WithColor(cfg.Color), render.WithClear())

	commands := make(chan string)
	go readCommands(commands)

	interval := cfg.FrameInterval
	if interval == 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	dirty := true
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-commands:
			if !ok || cmd == "quit" || cmd == "q" {
				return
			}
			dirty = handleCommand(gm, cmd) || dirty
		case <-ticker.C:
		}

		gm.Tick()
		running := estimator.Running()
		if dirty || running {
			r.Frame(gm.View(), estimator.Tally(), running)
			fmt.Println("enter: row col | reset | quit")
			dirty = running
		}
	}
}

func readCommands(commands chan<- string) {
	defer close(commands)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		commands <- strings.TrimSpace(scanner.Text())
	}
}

func handleCommand(gm *gamemaster.GameMaster, cmd string) bool {
	if cmd == "reset" || cmd == "r" {
		gm.Reset()
		return true
	}
	fields := strings.Fields(cmd)
	if len(fields) != 2 {
		log.Warn().Msgf("expected \"row col\", got %q", cmd)
		return false
	}
	row, err1 := strconv.Atoi(fields[0])
	col, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		log.Warn().Msgf("expected \"row col\", got %q", cmd)
		return false
	}
	return gm.Select(row, col)
}

// runSelfPlay shows one game between random players at the frame rate.
func runSelfPlay(ctx context.Context, cfg *config.Config) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	players := []player.Player{player.NewRandom(game.SideA, seed), player.NewRandom(game.SideB, seed+1)}
	r := render.New(os.Stdout, render.WithColor(cfg.Color), render.WithClear())

	e := engine.LocalEngine(players, newEstimator(cfg),
		[]gamemaster.Option{gamemaster.WithForcedCapture(cfg.ForcedCapture)},
		engine.WithFrameInterval(cfg.FrameInterval),
		engine.WithOnFrame(r.Frame),
	)
	winner, gameMetric, _ := e.Run(ctx)
	e.Estimator.Wait()

	log.Info().Msgf("winner %s after %d moves in %s", winner, gameMetric.TotalMoves, gameMetric.Duration)
}

func runExperiment(ctx context.Context, cfg *config.Config, name string, games int) {
	setup := experiments.DefaultSetup()
	setup.Root = cfg.ResultsDir
	setup.Simulations = cfg.Simulations
	setup.Cutoff = cfg.MaxMoves
	setup.Forced = cfg.ForcedCapture
	if cfg.Seed > 0 {
		setup.Seed = cfg.Seed
	}

	var (
		dir string
		err error
	)
	switch name {
	case "games":
		dir, err = experiments.RunSelfPlay(ctx, setup, games)
	case "convergence":
		dir, err = experiments.RunConvergence(setup, experiments.NumSeeds)
	case "throughput":
		dir, err = experiments.RunThroughput(setup, experiments.BatchSizes)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	log.Info().Msgf("results in %s", dir)
}
