package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrKeyNotFound is returned when a numeric parameter lookup misses.
var ErrKeyNotFound = errors.New("configuration key not found")

// Params is the numeric lookup contract consumed by the run driver.
type Params interface {
	Get(key string) (float64, error)
}

// ParamDict is a flat parameter set read from a "key value" text file.
// Blank lines and lines starting with '#' are ignored.
type ParamDict struct {
	values map[string]float64
	order  []string
}

// NewParamDict creates an empty parameter set.
func NewParamDict() *ParamDict {
	return &ParamDict{values: make(map[string]float64)}
}

// ReadParamFile parses a parameter file from disk.
func ReadParamFile(path string) (*ParamDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening param file: %w", err)
	}
	defer f.Close()

	pd, err := ParseParams(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pd, nil
}

// ParseParams parses "key value" lines separated by any run of whitespace.
func ParseParams(r io.Reader) (*ParamDict, error) {
	pd := NewParamDict()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"key value\", got %q", lineNo, line)
		}
		key := fields[0]
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing value for %q: %w", lineNo, key, err)
		}
		pd.Set(key, val)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading params: %w", err)
	}
	return pd, nil
}

// Set stores a value, keeping first-insertion order for Keys.
func (pd *ParamDict) Set(key string, val float64) {
	if _, exists := pd.values[key]; !exists {
		pd.order = append(pd.order, key)
	}
	pd.values[key] = val
}

// Get returns the value for key or an error wrapping ErrKeyNotFound.
func (pd *ParamDict) Get(key string) (float64, error) {
	v, ok := pd.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Keys returns keys in file order.
func (pd *ParamDict) Keys() []string {
	out := make([]string, len(pd.order))
	copy(out, pd.order)
	return out
}

// WriteTo writes the parameters back out in "key value" form.
func (pd *ParamDict) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, k := range pd.order {
		n, err := fmt.Fprintf(w, "%s %s\n", k, strconv.FormatFloat(pd.values[k], 'g', -1, 64))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// paramBinding maps a flat parameter key onto a Config field.
type paramBinding struct {
	get func(*Config) float64
	set func(*Config, float64)
}

var paramBindings = map[string]paramBinding{
	"max_timesteps": {
		func(c *Config) float64 { return float64(c.Run.MaxTimesteps) },
		func(c *Config, v float64) { c.Run.MaxTimesteps = int(v) },
	},
	"logging_timesteps": {
		func(c *Config) float64 { return float64(c.Run.LoggingTimesteps) },
		func(c *Config, v float64) { c.Run.LoggingTimesteps = int(v) },
	},
	"initial_cells": {
		func(c *Config) float64 { return float64(c.Population.Initial) },
		func(c *Config, v float64) { c.Population.Initial = int(v) },
	},
	"width": {
		func(c *Config) float64 { return c.World.Width },
		func(c *Config, v float64) { c.World.Width = v },
	},
	"height": {
		func(c *Config) float64 { return c.World.Height },
		func(c *Config, v float64) { c.World.Height = v },
	},
	"mate_radius_factor": {
		func(c *Config) float64 { return c.Tuning.MateRadiusFactor },
		func(c *Config, v float64) { c.Tuning.MateRadiusFactor = v },
	},
	"neighbor_radius_factor": {
		func(c *Config) float64 { return c.Tuning.NeighborRadiusFactor },
		func(c *Config, v float64) { c.Tuning.NeighborRadiusFactor = v },
	},
	"move_modifier": {
		func(c *Config) float64 { return c.Tuning.MoveModifier },
		func(c *Config, v float64) { c.Tuning.MoveModifier = v },
	},
	"standard_radius": {
		func(c *Config) float64 { return c.Tuning.StandardRadius },
		func(c *Config, v float64) { c.Tuning.StandardRadius = v },
	},
	"minimum_radius": {
		func(c *Config) float64 { return c.Tuning.MinimumRadius },
		func(c *Config, v float64) { c.Tuning.MinimumRadius = v },
	},
	"underpopulation_limit": {
		func(c *Config) float64 { return float64(c.Tuning.UnderpopulationLimit) },
		func(c *Config, v float64) { c.Tuning.UnderpopulationLimit = int(v) },
	},
	"overpopulation_limit": {
		func(c *Config) float64 { return float64(c.Tuning.OverpopulationLimit) },
		func(c *Config, v float64) { c.Tuning.OverpopulationLimit = int(v) },
	},
	"max_neighbors": {
		func(c *Config) float64 { return float64(c.Tuning.MaxNeighbors) },
		func(c *Config, v float64) { c.Tuning.MaxNeighbors = int(v) },
	},
	"underpopulation_damage": {
		func(c *Config) float64 { return c.Tuning.UnderpopulationDamage },
		func(c *Config, v float64) { c.Tuning.UnderpopulationDamage = v },
	},
	"overpopulation_damage": {
		func(c *Config) float64 { return c.Tuning.OverpopulationDamage },
		func(c *Config, v float64) { c.Tuning.OverpopulationDamage = v },
	},
	"affection_threshold": {
		func(c *Config) float64 { return c.Tuning.AffectionThreshold },
		func(c *Config, v float64) { c.Tuning.AffectionThreshold = v },
	},
	"turn_rate": {
		func(c *Config) float64 { return c.Tuning.TurnRate },
		func(c *Config, v float64) { c.Tuning.TurnRate = v },
	},
	"max_life": {
		func(c *Config) float64 { return c.Tuning.MaxLife },
		func(c *Config, v float64) { c.Tuning.MaxLife = v },
	},
}

// ParamKeys returns every flat key understood by ApplyParams, sorted.
func ParamKeys() []string {
	keys := make([]string, 0, len(paramBindings))
	for k := range paramBindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get implements Params over the config's flat key space.
func (c *Config) Get(key string) (float64, error) {
	b, ok := paramBindings[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return b.get(c), nil
}

// Set writes a flat key into the config.
func (c *Config) Set(key string, val float64) error {
	b, ok := paramBindings[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	b.set(c, val)
	return nil
}

// ApplyParams copies every recognised key of pd into the config and
// returns the keys it applied. max_timesteps is required. Unknown keys are
// returned separately so callers can warn about them.
func (c *Config) ApplyParams(pd *ParamDict) (applied, unknown []string, err error) {
	if _, err := pd.Get("max_timesteps"); err != nil {
		return nil, nil, err
	}
	for _, k := range pd.Keys() {
		v, _ := pd.Get(k)
		if c.Set(k, v) != nil {
			unknown = append(unknown, k)
			continue
		}
		applied = append(applied, k)
	}
	if err := c.Validate(); err != nil {
		return applied, unknown, fmt.Errorf("applying params: %w", err)
	}
	return applied, unknown, nil
}
