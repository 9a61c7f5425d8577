// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Run        RunConfig        `yaml:"run"`
	Tuning     Tuning           `yaml:"tuning"`
	Genome     GenomeConfig     `yaml:"genome"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the arena dimensions and the spawn rectangle for the
// initial population. A zero spawn width or height means the whole arena.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	SpawnWidth  float64 `yaml:"spawn_width"`
	SpawnHeight float64 `yaml:"spawn_height"`
}

// PopulationConfig holds population parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
}

// RunConfig holds run-loop parameters.
type RunConfig struct {
	MaxTimesteps     int `yaml:"max_timesteps"`     // 0 = unlimited
	LoggingTimesteps int `yaml:"logging_timesteps"` // ticks between progress reports
}

// Tuning holds the physics and biology constants of a cell.
// It is treated as immutable once a simulation has been constructed.
type Tuning struct {
	MateRadiusFactor      float64 `yaml:"mate_radius_factor"`     // mate if dist < radius * this
	NeighborRadiusFactor  float64 `yaml:"neighbor_radius_factor"` // neighbor if dist < radius * this
	MoveModifier          float64 `yaml:"move_modifier"`
	StandardRadius        float64 `yaml:"standard_radius"`
	MinimumRadius         float64 `yaml:"minimum_radius"`
	UnderpopulationLimit  int     `yaml:"underpopulation_limit"`
	OverpopulationLimit   int     `yaml:"overpopulation_limit"`
	MaxNeighbors          int     `yaml:"max_neighbors"` // cells with this many neighbors can't mate
	UnderpopulationDamage float64 `yaml:"underpopulation_damage"`
	OverpopulationDamage  float64 `yaml:"overpopulation_damage"`
	AffectionThreshold    float64 `yaml:"affection_threshold"`
	TurnRate              float64 `yaml:"turn_rate"` // degrees per tick
	MaxLife               float64 `yaml:"max_life"`
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// GenomeConfig holds the value range of every trait.
type GenomeConfig struct {
	Size           Range `yaml:"size"`
	AffectionPrime Range `yaml:"affection_prime"`
	Red            Range `yaml:"red"`
	Blue           Range `yaml:"blue"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
	PositionsPeriod     int `yaml:"positions_period"` // ticks between cells.csv dumps (0 = off)
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world: width and height must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Population.Initial < 0 {
		return fmt.Errorf("population: initial must not be negative, got %d", c.Population.Initial)
	}
	if c.Telemetry.PositionsPeriod < 0 {
		return fmt.Errorf("telemetry: positions_period must not be negative, got %d", c.Telemetry.PositionsPeriod)
	}
	if c.Run.MaxTimesteps < 0 {
		return fmt.Errorf("run: max_timesteps must not be negative, got %d", c.Run.MaxTimesteps)
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	for name, r := range map[string]Range{
		"size":            c.Genome.Size,
		"affection_prime": c.Genome.AffectionPrime,
		"red":             c.Genome.Red,
		"blue":            c.Genome.Blue,
	} {
		if r.Min > r.Max {
			return fmt.Errorf("genome: %s range is inverted (%v > %v)", name, r.Min, r.Max)
		}
	}
	return nil
}

// Validate rejects tuning values that break the cell model.
func (t Tuning) Validate() error {
	var errs []error
	if t.MinimumRadius <= 0 {
		errs = append(errs, fmt.Errorf("minimum_radius must be positive, got %v", t.MinimumRadius))
	}
	if t.StandardRadius <= 0 {
		errs = append(errs, fmt.Errorf("standard_radius must be positive, got %v", t.StandardRadius))
	}
	if t.MaxLife <= 0 {
		errs = append(errs, fmt.Errorf("max_life must be positive, got %v", t.MaxLife))
	}
	if t.MateRadiusFactor > t.NeighborRadiusFactor {
		errs = append(errs, fmt.Errorf("mate_radius_factor %v exceeds neighbor_radius_factor %v",
			t.MateRadiusFactor, t.NeighborRadiusFactor))
	}
	if t.UnderpopulationLimit > t.OverpopulationLimit {
		errs = append(errs, fmt.Errorf("underpopulation_limit %d exceeds overpopulation_limit %d",
			t.UnderpopulationLimit, t.OverpopulationLimit))
	}
	if t.TurnRate < 0 {
		errs = append(errs, fmt.Errorf("turn_rate must not be negative, got %v", t.TurnRate))
	}
	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Overrides holds command-line values that replace loaded settings.
// Zero fields, and a negative MaxTimesteps, leave the config unchanged.
type Overrides struct {
	MaxTimesteps int
	Initial      int
	Width        float64
	Height       float64
}

// ApplyOverrides copies the set fields of o into the config.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.MaxTimesteps >= 0 {
		c.Run.MaxTimesteps = o.MaxTimesteps
	}
	if o.Initial > 0 {
		c.Population.Initial = o.Initial
	}
	if o.Width > 0 {
		c.World.Width = o.Width
	}
	if o.Height > 0 {
		c.World.Height = o.Height
	}
}
