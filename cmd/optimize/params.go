package main

import (
	"fmt"

	"github.com/pthm-cable/openlife/config"
)

// ParamSpec defines a single optimizable parameter. Name is the flat
// parameter key understood by config.Config.Set.
type ParamSpec struct {
	Name string
	Min  float64
	Max  float64
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable tuning parameters.
// Integer limits stay fixed; the search is over the continuous constants.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Movement
			{Name: "move_modifier", Min: 0.5, Max: 6},
			{Name: "turn_rate", Min: 0.1, Max: 10},
			// Interaction ranges
			{Name: "mate_radius_factor", Min: 0.5, Max: 2},
			{Name: "neighbor_radius_factor", Min: 4, Max: 15},
			// Damage
			{Name: "underpopulation_damage", Min: 0.0001, Max: 0.01},
			{Name: "overpopulation_damage", Min: 0.01, Max: 1},
			{Name: "max_life", Min: 2, Max: 50},
			// Reproduction
			{Name: "affection_threshold", Min: 100, Max: 3000},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) ([]float64, error) {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val, err := cfg.Get(spec.Name)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", spec.Name, err)
		}
		v[i] = val
	}
	return v, nil
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	for i, val := range pv.Clamp(values) {
		if err := cfg.Set(pv.Specs[i].Name, val); err != nil {
			return fmt.Errorf("param %s: %w", pv.Specs[i].Name, err)
		}
	}
	return nil
}
