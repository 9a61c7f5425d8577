package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mate_radius_factor", cfg.Tuning.MateRadiusFactor, 1.0},
		{"neighbor_radius_factor", cfg.Tuning.NeighborRadiusFactor, 10.0},
		{"move_modifier", cfg.Tuning.MoveModifier, 3.0},
		{"standard_radius", cfg.Tuning.StandardRadius, 3.0},
		{"minimum_radius", cfg.Tuning.MinimumRadius, 10.0},
		{"underpopulation_limit", float64(cfg.Tuning.UnderpopulationLimit), 2},
		{"overpopulation_limit", float64(cfg.Tuning.OverpopulationLimit), 5},
		{"max_neighbors", float64(cfg.Tuning.MaxNeighbors), 5},
		{"underpopulation_damage", cfg.Tuning.UnderpopulationDamage, 0.001},
		{"overpopulation_damage", cfg.Tuning.OverpopulationDamage, 0.2},
		{"affection_threshold", cfg.Tuning.AffectionThreshold, 1000},
		{"turn_rate", cfg.Tuning.TurnRate, 1.0},
		{"max_life", cfg.Tuning.MaxLife, 10.0},
		{"logging_timesteps", float64(cfg.Run.LoggingTimesteps), 250},
		{"positions_period", float64(cfg.Telemetry.PositionsPeriod), 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := "tuning:\n  turn_rate: 2.5\nworld:\n  width: 640\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Tuning.TurnRate != 2.5 {
		t.Errorf("turn_rate = %v, want 2.5", cfg.Tuning.TurnRate)
	}
	if cfg.World.Width != 640 {
		t.Errorf("world width = %v, want 640", cfg.World.Width)
	}
	// Untouched fields keep their defaults
	if cfg.World.Height != 720 {
		t.Errorf("world height = %v, want default 720", cfg.World.Height)
	}
	if cfg.Tuning.MaxLife != 10 {
		t.Errorf("max_life = %v, want default 10", cfg.Tuning.MaxLife)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateRejectsBadTuning(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero minimum radius", func(c *Config) { c.Tuning.MinimumRadius = 0 }, "minimum_radius"},
		{"zero max life", func(c *Config) { c.Tuning.MaxLife = 0 }, "max_life"},
		{"mate wider than neighbor", func(c *Config) { c.Tuning.MateRadiusFactor = 20 }, "mate_radius_factor"},
		{"inverted limits", func(c *Config) { c.Tuning.UnderpopulationLimit = 9 }, "underpopulation_limit"},
		{"empty world", func(c *Config) { c.World.Width = 0 }, "world"},
		{"inverted genome range", func(c *Config) { c.Genome.Size = Range{Min: 2, Max: 1} }, "size"},
		{"negative positions period", func(c *Config) { c.Telemetry.PositionsPeriod = -1 }, "positions_period"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Tuning.AffectionThreshold = 42
	cfg.Population.Initial = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Tuning != cfg.Tuning {
		t.Errorf("tuning mismatch after roundtrip: got %+v, want %+v", loaded.Tuning, cfg.Tuning)
	}
	if loaded.Population.Initial != 7 {
		t.Errorf("initial = %d, want 7", loaded.Population.Initial)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Default()
	cp := cfg.Clone()
	cp.Tuning.TurnRate = 99
	if cfg.Tuning.TurnRate == 99 {
		t.Error("Clone shares tuning with its source")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	base := *cfg

	cfg.ApplyOverrides(Overrides{MaxTimesteps: -1})
	if cfg.Run != base.Run || cfg.Population != base.Population || cfg.World != base.World {
		t.Error("unset overrides changed the config")
	}

	cfg.ApplyOverrides(Overrides{MaxTimesteps: 0, Initial: 12, Width: 400, Height: 300})
	if cfg.Run.MaxTimesteps != 0 {
		t.Errorf("MaxTimesteps = %d, want 0 (unlimited)", cfg.Run.MaxTimesteps)
	}
	if cfg.Population.Initial != 12 {
		t.Errorf("Initial = %d, want 12", cfg.Population.Initial)
	}
	if cfg.World.Width != 400 || cfg.World.Height != 300 {
		t.Errorf("world = %vx%v, want 400x300", cfg.World.Width, cfg.World.Height)
	}
}
