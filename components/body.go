package components

import (
	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/genome"
)

// Body holds physical properties of an entity.
type Body struct {
	Radius float64
}

// BodyFromGenome derives the body radius from the genome's size trait.
// The result is never below tuning.MinimumRadius.
func BodyFromGenome(g genome.Genome, tuning config.Tuning) Body {
	size := g.Gene(genome.Size)
	if size < 0 {
		size = 0
	}
	return Body{Radius: tuning.StandardRadius*size + tuning.MinimumRadius}
}
