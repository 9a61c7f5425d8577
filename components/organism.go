package components

import "github.com/mlange-42/ark/ecs"

// DeathCause records which population regime last damaged a cell.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseUnderpopulation
	CauseOverpopulation
)

// String returns the display name for a DeathCause.
func (c DeathCause) String() string {
	switch c {
	case CauseUnderpopulation:
		return "underpopulation"
	case CauseOverpopulation:
		return "overpopulation"
	default:
		return "none"
	}
}

// Vitals tracks a cell's biological state.
type Vitals struct {
	Life      float64    // remaining life fraction in [0, 1]
	Damage    float64    // accumulated damage in life units
	Affection float64    // reproduction accumulator
	Cause     DeathCause // regime of the most recent damage
}

// NewVitals returns vitals for a newborn or freshly spawned cell.
func NewVitals() Vitals {
	return Vitals{Life: 1}
}

// TakeDamage removes amount/maxLife from the life fraction, flooring at 0.
func (v *Vitals) TakeDamage(amount, maxLife float64, cause DeathCause) {
	v.Damage += amount
	v.Cause = cause
	v.Life -= amount / maxLife
	if v.Life < 0 {
		v.Life = 0
	}
}

// Alive reports whether any life remains.
func (v *Vitals) Alive() bool {
	return v.Life > 0
}

// Alpha is the display opacity, fading with remaining life.
func (v *Vitals) Alpha() uint8 {
	a := 255 * v.Life
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}

// Links holds the per-tick interaction lists. Entries are non-owning
// references into the population and are rebuilt every tick.
type Links struct {
	Neighbors []ecs.Entity
	Mates     []ecs.Entity
}

// Clear empties both lists, keeping their capacity.
func (l *Links) Clear() {
	l.Neighbors = l.Neighbors[:0]
	l.Mates = l.Mates[:0]
}
