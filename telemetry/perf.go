package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the simulation step.
const (
	PhaseInteraction = "interaction"
	PhaseBounds      = "bounds"
	PhaseUpdate      = "update"
	PhaseReconcile   = "reconcile"
	PhaseTelemetry   = "telemetry"
)

// Phases lists every phase in tick order.
var Phases = [...]string{PhaseInteraction, PhaseBounds, PhaseUpdate, PhaseReconcile, PhaseTelemetry}

const numPhases = len(Phases)

func phaseIndex(name string) int {
	for i, p := range Phases {
		if p == name {
			return i
		}
	}
	return -1
}

type tickTiming struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times ticks and their phases over a rolling window of ticks.
// Time spent in a phase not listed in Phases counts towards the tick total
// only.
type PerfCollector struct {
	window []tickTiming
	next   int
	filled int

	cur        tickTiming
	tickStart  time.Time
	phaseStart time.Time
	phase      int

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{window: make([]tickTiming, window), phase: -1}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.cur = tickTiming{}
	p.phase = -1
}

// StartPhase closes the running phase and starts timing the named one.
func (p *PerfCollector) StartPhase(name string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phaseIndex(name)
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase >= 0 {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick records the current tick into the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.phase = -1
	p.cur.total = now.Sub(p.tickStart)

	p.window[p.next] = p.cur
	p.next = (p.next + 1) % len(p.window)
	p.filled = min(p.filled+1, len(p.window))
}

// RecordFrame marks the start of a rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarises the collector's window.
type PerfStats struct {
	AvgTick        time.Duration
	MinTick        time.Duration
	MaxTick        time.Duration
	TicksPerSecond float64
	FPS            float64 // zero outside graphical mode

	// Share of the average tick spent in each phase, indexed like Phases.
	PhasePct [numPhases]float64
}

// Stats aggregates the ticks currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var phases [numPhases]time.Duration
	for i, t := range p.window[:p.filled] {
		total += t.total
		if i == 0 || t.total < s.MinTick {
			s.MinTick = t.total
		}
		s.MaxTick = max(s.MaxTick, t.total)
		for j, d := range t.phases {
			phases[j] += d
		}
	}

	s.AvgTick = total / time.Duration(p.filled)
	if total > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
		for j, d := range phases {
			s.PhasePct[j] = float64(d) / float64(total) * 100
		}
	}
	return s
}

// LogStats logs the summary at info level.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTick.Microseconds(),
		"min_tick_us", s.MinTick.Microseconds(),
		"max_tick_us", s.MaxTick.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for i, name := range Phases {
		if pct := s.PhasePct[i]; pct > 0.1 {
			attrs = append(attrs, name+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd      int     `csv:"window_end"`
	AvgTickUS      int64   `csv:"avg_tick_us"`
	MinTickUS      int64   `csv:"min_tick_us"`
	MaxTickUS      int64   `csv:"max_tick_us"`
	TicksPerSec    float64 `csv:"ticks_per_sec"`
	FPS            float64 `csv:"fps"`
	InteractionPct float64 `csv:"interaction_pct"`
	BoundsPct      float64 `csv:"bounds_pct"`
	UpdatePct      float64 `csv:"update_pct"`
	ReconcilePct   float64 `csv:"reconcile_pct"`
	TelemetryPct   float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:      windowEnd,
		AvgTickUS:      s.AvgTick.Microseconds(),
		MinTickUS:      s.MinTick.Microseconds(),
		MaxTickUS:      s.MaxTick.Microseconds(),
		TicksPerSec:    s.TicksPerSecond,
		FPS:            s.FPS,
		InteractionPct: s.PhasePct[0],
		BoundsPct:      s.PhasePct[1],
		UpdatePct:      s.PhasePct[2],
		ReconcilePct:   s.PhasePct[3],
		TelemetryPct:   s.PhasePct[4],
	}
}
