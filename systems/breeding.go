package systems

import (
	"github.com/pthm-cable/openlife/components"
	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/genome"
)

// Offspring describes a child to be added once the update pass is over.
type Offspring struct {
	X, Y    float64
	Heading float64
	Genome  genome.Genome
}

// Mate breeds self with each of its mates whose combined affection exceeds
// the threshold, resetting both parents. Crowded cells (max_neighbors or
// more) do not breed. Both link lists are cleared whatever the outcome.
func Mate(self Cell, resolve Resolver, t config.Tuning) []Offspring {
	defer self.Links.Clear()

	if len(self.Links.Mates) == 0 || len(self.Links.Neighbors) >= t.MaxNeighbors {
		return nil
	}

	var children []Offspring
	for _, e := range self.Links.Mates {
		mate, ok := resolve(e)
		if !ok {
			continue
		}
		if self.Vitals.Affection+mate.Vitals.Affection <= t.AffectionThreshold {
			continue
		}
		self.Vitals.Affection = 0
		mate.Vitals.Affection = 0

		children = append(children, Offspring{
			X:       (self.Pos.X + mate.Pos.X) / 2,
			Y:       (self.Pos.Y + mate.Pos.Y) / 2,
			Heading: components.NormalizeDegrees(self.Rot.Heading + 90),
			Genome:  genome.Blend(*self.Genome, *mate.Genome),
		})
	}
	return children
}
