package systems

import "github.com/pthm-cable/openlife/components"

// Edge is a bit set of arena walls.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	EdgeNone Edge = 0
)

// Count returns how many walls are set.
func (e Edge) Count() int {
	n := 0
	for b := e; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Violations reports which walls a circle of the given radius overlaps.
func Violations(pos components.Position, radius float64, a Arena) Edge {
	var e Edge
	if pos.X-radius < 0 {
		e |= EdgeLeft
	}
	if pos.X+radius > a.Width {
		e |= EdgeRight
	}
	if pos.Y-radius < 0 {
		e |= EdgeTop
	}
	if pos.Y+radius > a.Height {
		e |= EdgeBottom
	}
	return e
}

// InBounds reports whether the circle lies strictly inside the arena.
func InBounds(pos components.Position, radius float64, a Arena) bool {
	return pos.X-radius > 0 && pos.X+radius < a.Width &&
		pos.Y-radius > 0 && pos.Y+radius < a.Height
}

// wallNormal is the inward-facing direction of each wall in degrees.
var wallNormal = map[Edge]float64{
	EdgeLeft:   0,
	EdgeRight:  180,
	EdgeTop:    90,
	EdgeBottom: 270,
}

// Bounce reflects the heading off the walls the cell overlaps and nudges it
// one unit back inside on each violated axis. Two or more walls reverse the
// heading. A cell that fails InBounds only by touching a wall overlaps none;
// it reflects as off the left wall and is not nudged. Bounce returns the
// walls that were hit.
func Bounce(pos *components.Position, rot *components.Rotation, radius float64, a Arena) Edge {
	hit := Violations(*pos, radius, a)

	var dx, dy float64
	if hit&EdgeLeft != 0 {
		dx++
	}
	if hit&EdgeRight != 0 {
		dx--
	}
	if hit&EdgeTop != 0 {
		dy++
	}
	if hit&EdgeBottom != 0 {
		dy--
	}

	if hit.Count() > 1 {
		rot.Set(rot.Heading + 180)
	} else {
		normal := wallNormal[hit] // EdgeNone maps to 0
		incoming := components.NormalizeDegrees(normal + 180)
		rot.Set(normal - (rot.Heading - incoming))
	}
	pos.Nudge(dx, dy)
	return hit
}
