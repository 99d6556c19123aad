package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/DebuggersLV/ants.debuggers.lv/internal/render"
	"github.com/DebuggersLV/ants.debuggers.lv/pkg/simulation"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// headlessBatch is how many steps one Ask runs.
	headlessBatch = 500
	askTimeout    = time.Minute
)

func main() {
	configFile := flag.String("config", "configs/config.json", "JSON or YAML config file")
	schemaFile := flag.String("schema", "", "JSON schema for the config file (empty: embedded schema)")
	headless := flag.Bool("headless", false, "run without a window until the clock halts")
	debug := flag.Bool("debug", false, "log every pick and drop")
	flag.Parse()

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	if err := run(logger, *configFile, *schemaFile, *headless); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(logger golog.Logger, configFile, schemaFile string, headless bool) error {
	ctx := context.Background()
	runID := uuid.New()

	cfg, err := simulation.LoadConfig(configFile, schemaFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// pin the seed so the run can be replayed from the log
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	logger.Infof("run %s: %dx%d torus, %d agents, %d objects, seed %d, until t=%s",
		runID, cfg.WorldWidth, cfg.WorldHeight, cfg.NumAgents, cfg.NumObjects, cfg.Seed, humanize.Commaf(cfg.AvailableTime))

	system, err := actor.NewActorSystem("Foraging-"+runID.String(),
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(1))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	defer func() { _ = system.Stop(ctx) }()

	if headless {
		return runHeadless(ctx, logger, system, cfg, runID)
	}

	game, err := render.GetNewGame(ctx, cfg, system)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.WorldWidth, cfg.WorldHeight)
	ebiten.SetWindowTitle("Foraging ants")
	return ebiten.RunGame(game)
}

// runHeadless drives the world in batches as fast as the actor answers.
func runHeadless(ctx context.Context, logger golog.Logger, system actor.ActorSystem, cfg *simulation.Config, runID uuid.UUID) error {
	pid, err := system.Spawn(ctx, "world", simulation.NewWorldActor(nil, cfg))
	if err != nil {
		return fmt.Errorf("failed to spawn world: %w", err)
	}

	start := time.Now()
	for batches := 1; ; batches++ {
		reply, err := actor.Ask(ctx, pid, simulation.RunSteps(headlessBatch), askTimeout)
		if err != nil {
			return fmt.Errorf("failed to advance world: %w", err)
		}
		halted, ok := reply.(*wrapperspb.BoolValue)
		if !ok {
			return fmt.Errorf("unexpected reply %T from world", reply)
		}
		if halted.GetValue() {
			logger.Infof("run %s halted after %d batches in %s", runID, batches, time.Since(start).Round(time.Millisecond))
			return nil
		}
	}
}
