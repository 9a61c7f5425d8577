// Package genome defines the fixed set of heritable cell traits.
package genome

import (
	"math/rand"

	"github.com/pthm-cable/openlife/config"
)

// Trait indexes a gene in a Genome.
type Trait uint8

const (
	Size           Trait = iota // Scales body radius
	AffectionPrime              // Affection gained per balanced tick
	Red                         // Display colour, red channel
	Blue                        // Display colour, blue channel

	NumTraits
)

var traitNames = [NumTraits]string{
	Size:           "size",
	AffectionPrime: "affection_prime",
	Red:            "red",
	Blue:           "blue",
}

// String returns the trait's configuration name.
func (t Trait) String() string {
	if t >= NumTraits {
		return "unknown"
	}
	return traitNames[t]
}

// TraitByName looks up a trait by its configuration name.
func TraitByName(name string) (Trait, bool) {
	for i, n := range traitNames {
		if n == name {
			return Trait(i), true
		}
	}
	return 0, false
}

// Traits returns all traits in index order.
func Traits() []Trait {
	out := make([]Trait, NumTraits)
	for i := range out {
		out[i] = Trait(i)
	}
	return out
}

// Schema holds the allowed range of each trait.
type Schema [NumTraits]config.Range

// SchemaFromConfig builds a Schema from the genome config section.
func SchemaFromConfig(cfg config.GenomeConfig) Schema {
	var s Schema
	s[Size] = cfg.Size
	s[AffectionPrime] = cfg.AffectionPrime
	s[Red] = cfg.Red
	s[Blue] = cfg.Blue
	return s
}

// Genome is an immutable set of trait values.
// Every genome carries exactly NumTraits genes.
type Genome struct {
	genes [NumTraits]float64
}

// New creates a genome from explicit values, clamped to the schema.
func New(s Schema, values [NumTraits]float64) Genome {
	var g Genome
	for i, v := range values {
		g.genes[i] = clamp(v, s[i].Min, s[i].Max)
	}
	return g
}

// NewRandom draws every trait uniformly from its range.
func NewRandom(rng *rand.Rand, s Schema) Genome {
	var g Genome
	for i, r := range s {
		g.genes[i] = r.Min + rng.Float64()*(r.Max-r.Min)
	}
	return g
}

// Blend produces a child genome by averaging each trait of the parents.
func Blend(a, b Genome) Genome {
	var g Genome
	for i := range g.genes {
		g.genes[i] = (a.genes[i] + b.genes[i]) / 2
	}
	return g
}

// Gene returns the value of a trait.
func (g Genome) Gene(t Trait) float64 {
	return g.genes[t]
}

// Lookup returns the value of a trait by configuration name.
func (g Genome) Lookup(name string) (float64, bool) {
	t, ok := TraitByName(name)
	if !ok {
		return 0, false
	}
	return g.genes[t], true
}

// Values returns a copy of all genes in trait order.
func (g Genome) Values() [NumTraits]float64 {
	return g.genes
}

// Representation returns the display colour. Green is fixed at 16 so every
// cell stays visible on a black background.
func (g Genome) Representation() (r, gr, b uint8) {
	return channel(g.genes[Red]), 16, channel(g.genes[Blue])
}

func channel(v float64) uint8 {
	return uint8(clamp(v, 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
