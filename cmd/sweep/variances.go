package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Variance describes one parameter sweep: Name takes every value from Begin
// to End inclusive in increments of Step.
type Variance struct {
	Name  string
	Begin float64
	End   float64
	Step  float64
}

// Values returns the swept values. Float drift is absorbed so End is included
// when it lies on the grid.
func (v Variance) Values() []float64 {
	if v.Step <= 0 || v.End < v.Begin {
		return []float64{v.Begin}
	}
	n := int(math.Floor((v.End-v.Begin)/v.Step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = v.Begin + float64(i)*v.Step
	}
	return out
}

// ReadVariances parses a variances file.
func ReadVariances(path string) ([]Variance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening variances file: %w", err)
	}
	defer f.Close()
	return ParseVariances(f)
}

// ParseVariances reads lines of "name begin end step". Blank lines and lines
// starting with '#' are skipped.
func ParseVariances(r io.Reader) ([]Variance, error) {
	var out []Variance
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: want 'name begin end step', got %q", line, text)
		}
		var nums [3]float64
		for i, s := range fields[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			nums[i] = v
		}
		if nums[2] <= 0 {
			return nil, fmt.Errorf("line %d: step must be positive", line)
		}
		out = append(out, Variance{Name: fields[0], Begin: nums[0], End: nums[1], Step: nums[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
