package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	paramsPath := flag.String("params", "", "Path to a flat 'key value' parameter file")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", -1, "Stop after N ticks (0 = unlimited, -1 = use config)")
	cells := flag.Int("cells", 0, "Initial population (0 = use config)")
	width := flag.Float64("width", 0, "Arena width (0 = use config)")
	height := flag.Float64("height", 0, "Arena height (0 = use config)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per frame in graphical mode")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *paramsPath != "" {
		pd, err := config.ReadParamFile(*paramsPath)
		if err != nil {
			slog.Error("failed to read params", "path", *paramsPath, "error", err)
			os.Exit(1)
		}
		applied, unknown, err := cfg.ApplyParams(pd)
		if err != nil {
			slog.Error("failed to apply params", "path", *paramsPath, "error", err)
			os.Exit(1)
		}
		if len(unknown) > 0 {
			slog.Warn("ignoring unknown params", "keys", unknown)
		}
		slog.Info("applied params", "keys", applied)
	}

	cfg.ApplyOverrides(config.Overrides{
		MaxTimesteps: *maxTicks,
		Initial:      *cells,
		Width:        *width,
		Height:       *height,
	})
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
		Logger:         logger,
	}

	if *headless {
		if err := runHeadless(cfg, opts); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runGraphical(cfg, opts); err != nil {
		slog.Error("graphical run failed", "error", err)
		os.Exit(1)
	}
}

func runHeadless(cfg *config.Config, opts game.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"cells", g.CellCount(),
		"max_ticks", cfg.Run.MaxTimesteps,
	)

	start := time.Now()
	reason, err := g.Run(ctx)
	slog.Info("simulation finished",
		"reason", reason.String(),
		"tick", g.Tick(),
		"cells", g.CellCount(),
		"stats", g.Statistics(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if reason == game.StopCancelled {
		return nil
	}
	return err
}
