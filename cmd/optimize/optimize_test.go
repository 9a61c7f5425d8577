package main

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/telemetry"
)

func TestParamVectorNormalizeRoundtrip(t *testing.T) {
	pv := NewParamVector()
	raw := make([]float64, pv.Dim())
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + 0.3*(spec.Max-spec.Min)
	}

	norm := pv.Normalize(raw)
	for i, v := range norm {
		if math.Abs(v-0.3) > 1e-9 {
			t.Errorf("%s normalized = %v, want 0.3", pv.Specs[i].Name, v)
		}
	}
	back := pv.Denormalize(norm)
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s roundtrip = %v, want %v", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestParamVectorKeysExist(t *testing.T) {
	pv := NewParamVector()
	if _, err := pv.ExtractFromConfig(config.Default()); err != nil {
		t.Fatalf("ExtractFromConfig: %v", err)
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	values := make([]float64, pv.Dim())
	for i, spec := range pv.Specs {
		values[i] = spec.Max * 10
	}

	cfg := config.Default()
	if err := pv.ApplyToConfig(cfg, values); err != nil {
		t.Fatalf("ApplyToConfig: %v", err)
	}
	for _, spec := range pv.Specs {
		got, _ := cfg.Get(spec.Name)
		if got != spec.Max {
			t.Errorf("%s = %v, want clamped to %v", spec.Name, got, spec.Max)
		}
	}
}

func TestComputeQuality(t *testing.T) {
	steady := make([]telemetry.WindowStats, 8)
	for i := range steady {
		steady[i] = telemetry.WindowStats{Cells: 50, LifeP50: 0.6}
	}
	if q := computeQuality(steady); math.Abs(q-1) > 1e-9 {
		t.Errorf("steady quality = %v, want 1", q)
	}

	if q := computeQuality(steady[:2]); q != 0 {
		t.Errorf("warmup-only quality = %v, want 0", q)
	}

	swinging := make([]telemetry.WindowStats, 8)
	for i := range swinging {
		swinging[i] = telemetry.WindowStats{Cells: 10 + 80*(i%2), LifeP50: 0.6}
	}
	if q := computeQuality(swinging); q >= computeQuality(steady) {
		t.Errorf("swinging quality %v should be below steady", q)
	}

	sparse := []telemetry.WindowStats{{}, {}, {Cells: 1}, {Cells: 2}}
	if q := computeQuality(sparse); q != 0 {
		t.Errorf("sparse quality = %v, want 0", q)
	}
}

func TestComputeFitness(t *testing.T) {
	if got := computeFitness(1000, 0); got != -1000 {
		t.Errorf("computeFitness(1000, 0) = %v", got)
	}
	if got := computeFitness(1000, 1); math.Abs(got+1200) > 1e-9 {
		t.Errorf("computeFitness(1000, 1) = %v, want -1200", got)
	}
}

func TestEvaluateShortRun(t *testing.T) {
	cfg := config.Default()
	cfg.Population.Initial = 10
	cfg.Telemetry.StatsWindow = 10

	pv := NewParamVector()
	start, _ := pv.ExtractFromConfig(cfg)
	fe := NewFitnessEvaluator(pv, 30, []int64{1, 2}, cfg)

	f := fe.Evaluate(start)
	if f > 0 || f < -30*1.2 {
		t.Errorf("fitness = %v, want in [-36, 0]", f)
	}
}

func TestNewMethod(t *testing.T) {
	for _, name := range []string{"nelder-mead", "cmaes"} {
		if _, err := newMethod(name, 4); err != nil {
			t.Errorf("newMethod(%q): %v", name, err)
		}
	}
	if _, err := newMethod("annealing", 4); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(75 * time.Second); got != "1m15s" {
		t.Errorf("formatDuration(75s) = %q", got)
	}
	if got := formatDuration(3725 * time.Second); got != "1h02m05s" {
		t.Errorf("formatDuration(3725s) = %q", got)
	}
}
