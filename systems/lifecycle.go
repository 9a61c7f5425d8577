package systems

import (
	"github.com/pthm-cable/openlife/components"
	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/genome"
)

// Regime classifies a cell's local population pressure.
type Regime uint8

const (
	Balanced Regime = iota
	Underpopulated
	Overpopulated
)

// String returns the display name for a Regime.
func (r Regime) String() string {
	switch r {
	case Underpopulated:
		return "underpopulated"
	case Overpopulated:
		return "overpopulated"
	default:
		return "balanced"
	}
}

// Classify maps a neighbor count to a regime.
func Classify(neighbors int, t config.Tuning) Regime {
	switch {
	case neighbors < t.UnderpopulationLimit:
		return Underpopulated
	case neighbors > t.OverpopulationLimit:
		return Overpopulated
	default:
		return Balanced
	}
}

// Update advances one cell by a tick: it moves forward at a speed that falls
// with body size, steers relative to its neighbors, then takes damage or
// gains affection according to its regime.
func Update(self Cell, resolve Resolver, t config.Tuning) Regime {
	self.Pos.MoveForward(self.Rot.Heading, t.MoveModifier*(t.StandardRadius/self.Body.Radius))

	regime := Classify(len(self.Links.Neighbors), t)

	if cx, cy, ok := Centroid(self, resolve); ok {
		ideal := IdealHeading(self.Pos.X, self.Pos.Y, cx, cy, regime == Overpopulated)
		self.Rot.Set(Steer(self.Rot.Heading, ideal, t.TurnRate))
	}

	switch regime {
	case Underpopulated:
		self.Vitals.TakeDamage(t.UnderpopulationDamage, t.MaxLife, components.CauseUnderpopulation)
	case Overpopulated:
		self.Vitals.TakeDamage(t.OverpopulationDamage, t.MaxLife, components.CauseOverpopulation)
	default:
		self.Vitals.Affection += self.Genome.Gene(genome.AffectionPrime)
	}
	return regime
}
