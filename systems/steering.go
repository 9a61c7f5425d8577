package systems

import "math"

// Centroid returns the mean position of the resolved neighbors of self.
// ok is false when there are none.
func Centroid(self Cell, resolve Resolver) (x, y float64, ok bool) {
	n := 0
	for _, e := range self.Links.Neighbors {
		c, found := resolve(e)
		if !found {
			continue
		}
		x += c.Pos.X
		y += c.Pos.Y
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return x / float64(n), y / float64(n), true
}

// IdealHeading is the heading a cell aims for given its neighbors' centroid:
// the bearing from the centroid to the cell, rotated back by 90 degrees so
// the cell circles the group. Overpopulated cells aim the opposite way.
// The result is not normalised; it lies in (-270, 270).
func IdealHeading(selfX, selfY, cx, cy float64, overpopulated bool) float64 {
	ideal := degrees(math.Atan2(selfY-cy, selfX-cx)) - 90
	if overpopulated {
		ideal = math.Mod(ideal+180, 360)
	}
	return ideal
}

// Steer moves heading toward target by at most maxTurn degrees. Headings
// are compared as plain numbers, not as angles: a heading of 350 with a
// target of 80 turns down toward 80 rather than across 0.
func Steer(heading, target, maxTurn float64) float64 {
	switch {
	case target > heading+maxTurn:
		return heading + maxTurn
	case target < heading-maxTurn:
		return heading - maxTurn
	default:
		return target
	}
}
