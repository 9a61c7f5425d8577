package telemetry

import (
	"testing"
	"time"
)

func runTicks(pc *PerfCollector, n int, phases map[string]time.Duration) {
	for i := 0; i < n; i++ {
		pc.StartTick()
		for _, name := range Phases {
			if d, ok := phases[name]; ok {
				pc.StartPhase(name)
				time.Sleep(d)
			}
		}
		pc.EndTick()
	}
}

func TestPerfCollectorPhaseShares(t *testing.T) {
	pc := NewPerfCollector(10)
	runTicks(pc, 5, map[string]time.Duration{
		PhaseInteraction: 2 * time.Millisecond,
		PhaseUpdate:      200 * time.Microsecond,
	})

	s := pc.Stats()
	if s.AvgTick <= 0 || s.TicksPerSecond <= 0 {
		t.Fatalf("stats = %+v, want positive tick timing", s)
	}
	if s.MinTick > s.AvgTick || s.AvgTick > s.MaxTick {
		t.Errorf("min %v, avg %v, max %v out of order", s.MinTick, s.AvgTick, s.MaxTick)
	}

	row := s.ToCSV(5)
	if row.InteractionPct <= row.UpdatePct {
		t.Errorf("interaction %.1f%% should exceed update %.1f%%", row.InteractionPct, row.UpdatePct)
	}
	if row.BoundsPct != 0 || row.ReconcilePct != 0 {
		t.Errorf("untimed phases have shares: %+v", row)
	}
	if sum := row.InteractionPct + row.UpdatePct; sum > 100 {
		t.Errorf("phase shares sum to %.1f%%", sum)
	}
}

func TestPerfCollectorWindowWraps(t *testing.T) {
	pc := NewPerfCollector(3)
	runTicks(pc, 3, map[string]time.Duration{PhaseInteraction: 5 * time.Millisecond})
	runTicks(pc, 3, map[string]time.Duration{PhaseInteraction: 0})

	// Only the three fast ticks remain in the window.
	if s := pc.Stats(); s.MaxTick >= 5*time.Millisecond {
		t.Errorf("MaxTick = %v, slow ticks should have left the window", s.MaxTick)
	}
}

func TestPerfCollectorIgnoresUnknownPhase(t *testing.T) {
	pc := NewPerfCollector(4)
	pc.StartTick()
	pc.StartPhase("render")
	time.Sleep(time.Millisecond)
	pc.EndTick()

	s := pc.Stats()
	if s.AvgTick < time.Millisecond {
		t.Errorf("AvgTick = %v, want at least 1ms", s.AvgTick)
	}
	for i, pct := range s.PhasePct {
		if pct != 0 {
			t.Errorf("%s share = %v, want 0", Phases[i], pct)
		}
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	s := NewPerfCollector(0).Stats()
	if s.AvgTick != 0 || s.TicksPerSecond != 0 || s.FPS != 0 {
		t.Errorf("empty stats = %+v, want zero", s)
	}
}

func TestPerfCollectorFrameRate(t *testing.T) {
	pc := NewPerfCollector(10)
	pc.RecordFrame()
	if pc.Stats().FPS != 0 {
		t.Error("FPS should be zero after a single frame")
	}
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	if fps := pc.Stats().FPS; fps <= 0 || fps > 70 {
		t.Errorf("FPS = %v, want (0, 70] for frames at least 16ms apart", fps)
	}
}
