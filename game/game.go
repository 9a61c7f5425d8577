// Package game drives a simulation run: stepping, progress logging,
// telemetry windows and stop conditions. It has no graphics dependency.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/simulation"
	"github.com/pthm-cable/openlife/telemetry"
)

// StopReason says why a run ended.
type StopReason uint8

const (
	NotStopped StopReason = iota
	StopExtinct
	StopMaxTicks
	StopCancelled
)

// String returns the display name for a StopReason.
func (r StopReason) String() string {
	switch r {
	case StopExtinct:
		return "extinct"
	case StopMaxTicks:
		return "max ticks reached"
	case StopCancelled:
		return "cancelled"
	default:
		return "running"
	}
}

// Options holds optional game configuration.
type Options struct {
	Seed           int64
	LogStats       bool   // Log window and perf stats via slog
	OutputDir      string // Directory for CSV/config output (empty = disabled)
	StepsPerUpdate int    // Ticks per Update call in graphical mode
	Logger         *slog.Logger
	StatsCallback  func(telemetry.WindowStats)
}

// Game holds a simulation and everything needed to run it.
type Game struct {
	cfg *config.Config
	sim *simulation.Simulation
	log *slog.Logger

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// Progress reporting
	batchStart time.Time

	// Graphical control
	paused         bool
	stepsPerUpdate int

	stopped StopReason
	view    []simulation.CellView
	records []telemetry.CellRecord
}

// NewGame creates a game for cfg. The config is cloned; later changes by the
// caller have no effect.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	cfg = cfg.Clone()

	sim, err := simulation.New(cfg, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		sim:            sim,
		log:            logger,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager:  om,
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
		batchStart:     time.Now(),
		stepsPerUpdate: steps,
	}
	sim.SetPhaseTimer(g.perfCollector)
	g.checkStop()

	return g, nil
}

// Step runs one simulation tick with telemetry and progress reporting.
// It does nothing once the run has stopped.
func (g *Game) Step() simulation.TickResult {
	if g.stopped != NotStopped {
		return simulation.TickResult{Tick: g.sim.Tick(), Population: g.sim.CellCount()}
	}

	g.perfCollector.StartTick()
	res := g.sim.Step()
	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndTick()

	g.logProgress()
	g.checkStop()
	return res
}

// Update runs StepsPerUpdate ticks unless paused.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate && g.stopped == NotStopped; i++ {
		g.Step()
	}
}

// Run steps until extinction, the configured maximum tick, or ctx is done.
func (g *Game) Run(ctx context.Context) (StopReason, error) {
	for g.stopped == NotStopped {
		select {
		case <-ctx.Done():
			g.stopped = StopCancelled
			g.log.Info("run cancelled", "tick", g.sim.Tick())
			return g.stopped, ctx.Err()
		default:
		}
		g.Step()
	}
	return g.stopped, nil
}

// checkStop records and logs the stop condition the first time it holds.
func (g *Game) checkStop() {
	if g.stopped != NotStopped {
		return
	}
	switch {
	case g.sim.State() == simulation.Extinct:
		g.stopped = StopExtinct
		g.log.Info("extinct", "tick", g.sim.Tick(), "stats", g.sim.Statistics())
	case g.cfg.Run.MaxTimesteps > 0 && g.sim.Tick() >= g.cfg.Run.MaxTimesteps:
		g.stopped = StopMaxTicks
		g.log.Info("max ticks reached", "tick", g.sim.Tick(), "cells", g.sim.CellCount())
	}
}

// logProgress emits a progress record every logging_timesteps ticks.
func (g *Game) logProgress() {
	every := g.cfg.Run.LoggingTimesteps
	tick := g.sim.Tick()
	if every <= 0 || tick%every != 0 {
		return
	}

	now := time.Now()
	stats := g.sim.Statistics()
	g.log.Info("timesteps",
		"tick", tick,
		"batch_ms", now.Sub(g.batchStart).Milliseconds(),
		"alive", g.sim.CellCount(),
		"births", stats.Births,
		"deaths", stats.Deaths,
		"overpop_deaths", stats.OverpopulationDeaths,
		"underpop_deaths", stats.UnderpopulationDeaths,
	)
	g.batchStart = now
}

// Snapshot returns the render view. The cell slice is reused by the next call.
func (g *Game) Snapshot() simulation.View {
	v := g.sim.Snapshot(g.view)
	g.view = v.Cells
	return v
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int {
	return g.sim.Tick()
}

// CellCount returns the live population size.
func (g *Game) CellCount() int {
	return g.sim.CellCount()
}

// Area returns the summed area of the live population.
func (g *Game) Area() float64 {
	return g.sim.Area()
}

// Statistics returns the cumulative run statistics.
func (g *Game) Statistics() telemetry.Statistics {
	return g.sim.Statistics()
}

// Stopped returns why the run stopped, or NotStopped.
func (g *Game) Stopped() StopReason {
	return g.stopped
}

// Config returns the run configuration.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Paused reports whether Update is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes Update.
func (g *Game) SetPaused(p bool) {
	g.paused = p
}

// StepsPerUpdate returns the ticks run per Update call.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetStepsPerUpdate sets the ticks run per Update call (minimum 1).
func (g *Game) SetStepsPerUpdate(n int) {
	g.stepsPerUpdate = max(n, 1)
}

// PerfStats returns timing over the recent perf window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Close flushes and closes run output.
func (g *Game) Close() error {
	return g.outputManager.Close()
}
