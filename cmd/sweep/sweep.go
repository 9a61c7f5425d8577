package main

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/game"
	"github.com/pthm-cable/openlife/telemetry"
)

// SweepRow is one (parameter, value, metric) line of sweep.csv.
type SweepRow struct {
	Param    string  `csv:"param"`
	Value    float64 `csv:"value"`
	Metric   string  `csv:"metric"`
	Runs     int     `csv:"runs"`
	Mean     float64 `csv:"mean"`
	Std      float64 `csv:"std"`
	TPrev    float64 `csv:"t_prev"`
	SigPrev  string  `csv:"sig_prev"`
	TStart   float64 `csv:"t_start"`
	SigStart string  `csv:"sig_start"`
}

// Sweeper runs headless simulations for each swept value.
type Sweeper struct {
	Base     *config.Config
	Seeds    []int64
	MaxTicks int

	// Progress is called after each value finishes; nil disables it.
	Progress func(name string, value float64, samples map[string][]float64)
}

// runOnce runs one headless simulation and returns its metrics.
func runOnce(cfg *config.Config, seed int64) (map[string]float64, error) {
	g, err := game.NewGame(cfg, game.Options{
		Seed:   seed,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return nil, err
	}
	defer g.Close()

	for g.Stopped() == game.NotStopped {
		g.Step()
	}

	s := g.Statistics()
	return map[string]float64{
		MetricPopulation: float64(g.CellCount()),
		MetricBirths:     float64(s.Births),
		MetricDeaths:     float64(s.Deaths),
		MetricSurvival:   float64(g.Tick()),
		MetricArea:       g.Area(),
	}, nil
}

// sample runs every seed for cfg in parallel and groups results by metric.
func (sw *Sweeper) sample(cfg *config.Config) (map[string][]float64, error) {
	results := make([]map[string]float64, len(sw.Seeds))
	errs := make([]error, len(sw.Seeds))

	var wg sync.WaitGroup
	for i, seed := range sw.Seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx], errs[idx] = runOnce(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	out := make(map[string][]float64, len(Metrics))
	for i, r := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		for _, m := range Metrics {
			out[m] = append(out[m], r[m])
		}
	}
	return out, nil
}

// Sweep varies one parameter through its values, leaving all others at
// their base settings, and returns a row per value and metric. Each value is
// t-tested against the previous value's mean and against the first value's.
func (sw *Sweeper) Sweep(v Variance) ([]SweepRow, error) {
	// A run without a tick cap may never go extinct.
	if sw.MaxTicks <= 0 {
		return nil, fmt.Errorf("sweeping %s: max ticks must be positive, got %d", v.Name, sw.MaxTicks)
	}
	var rows []SweepRow
	prevMean := make(map[string]float64)
	startMean := make(map[string]float64)

	for i, value := range v.Values() {
		cfg := sw.Base.Clone()
		if err := cfg.Set(v.Name, value); err != nil {
			return nil, fmt.Errorf("sweeping %s: %w", v.Name, err)
		}
		cfg.Run.MaxTimesteps = sw.MaxTicks
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("sweeping %s=%v: %w", v.Name, value, err)
		}

		samples, err := sw.sample(cfg)
		if err != nil {
			return nil, fmt.Errorf("sweeping %s=%v: %w", v.Name, value, err)
		}
		if sw.Progress != nil {
			sw.Progress(v.Name, value, samples)
		}

		for _, m := range Metrics {
			mean, std := telemetry.MeanStd(samples[m])
			row := SweepRow{
				Param:  v.Name,
				Value:  value,
				Metric: m,
				Runs:   len(samples[m]),
				Mean:   mean,
				Std:    std,
			}
			if i == 0 {
				startMean[m] = mean
			} else {
				row.TPrev = tStatistic(samples[m], prevMean[m])
				row.SigPrev = significance(row.TPrev)
				row.TStart = tStatistic(samples[m], startMean[m])
				row.SigStart = significance(row.TStart)
			}
			prevMean[m] = mean
			rows = append(rows, row)
		}
	}
	return rows, nil
}
