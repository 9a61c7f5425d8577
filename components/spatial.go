package components

import "math"

// Position represents an entity's arena position.
type Position struct {
	X, Y float64
}

// MoveForward advances the position along heading (degrees) by scale units.
// 0 degrees points along +x; positive angles rotate toward +y, which is
// clockwise on a y-down screen.
func (p *Position) MoveForward(heading, scale float64) {
	rad := heading * math.Pi / 180
	p.X += math.Cos(rad) * scale
	p.Y += math.Sin(rad) * scale
}

// Nudge applies a small positional correction.
func (p *Position) Nudge(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Rotation holds an entity's heading in degrees, normalised to [0, 360).
type Rotation struct {
	Heading float64
}

// Set stores a heading, normalising it to [0, 360).
func (r *Rotation) Set(deg float64) {
	r.Heading = NormalizeDegrees(deg)
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
