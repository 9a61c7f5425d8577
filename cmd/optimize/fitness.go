package main

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/game"
	"github.com/pthm-cable/openlife/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalTicks int                     // ticks before extinction (or maxTicks if survived)
	windowStats   []telemetry.WindowStats // collected via StatsCallback each window
}

type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for raw parameter values (lower = better).
// Configs that fail validation score zero, the worst possible fitness.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return 0
	}
	cfg.Run.MaxTimesteps = fe.maxTicks
	if err := cfg.Validate(); err != nil {
		return 0
	}

	// Seeds are independent simulations; run them in parallel
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			r, err := runSimulation(cfg, s)
			if err != nil {
				return
			}
			q := computeQuality(r.windowStats)
			results[idx] = seedResult{fitness: computeFitness(r.survivalTicks, q), quality: q}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run until extinction or
// cfg.Run.MaxTimesteps.
func runSimulation(cfg *config.Config, seed int64) (*runResult, error) {
	result := &runResult{}

	g, err := game.NewGame(cfg, game.Options{
		Seed:   seed,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	if err != nil {
		return nil, err
	}
	defer g.Close()

	for g.Stopped() == game.NotStopped {
		g.Step()
	}
	result.survivalTicks = g.Tick()
	return result, nil
}

// computeFitness combines survival and quality into a scalar (lower = better).
// Formula: -(survivalTicks × (1.0 + 0.2 × quality))
func computeFitness(survivalTicks int, quality float64) float64 {
	return -(float64(survivalTicks) * (1.0 + 0.2*quality))
}

const (
	qualityWeightStability = 0.6
	qualityWeightHealth    = 0.4

	qualityWarmupWindows = 2 // skip first N windows
	qualityMinPop        = 3 // exclude windows below this population
)

// computeQuality scores population health in [0, 1] from window stats:
// a steady population with a healthy median life.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}

	var counts []float64
	var healthSum float64
	for _, w := range windows[qualityWarmupWindows:] {
		if w.Cells < qualityMinPop {
			continue
		}
		counts = append(counts, float64(w.Cells))
		healthSum += math.Exp(-math.Pow((w.LifeP50-0.6)/0.3, 2))
	}
	if len(counts) == 0 {
		return 0
	}

	stabilityScore := 0.0
	if len(counts) >= 2 {
		c := cv(counts)
		stabilityScore = math.Exp(-c * c)
	}
	healthScore := healthSum / float64(len(counts))

	return clamp01(qualityWeightStability*stabilityScore + qualityWeightHealth*healthScore)
}

// cv computes the coefficient of variation (std/mean) for a slice of values.
func cv(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean, std := stat.MeanStdDev(values, nil)
	if mean == 0 {
		return 0
	}
	return std / mean
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
