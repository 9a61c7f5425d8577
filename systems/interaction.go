package systems

import "github.com/pthm-cable/openlife/config"

// Interact compares self against every candidate and records mates and
// neighbors. Candidates are the cells after self in population order, so
// each unordered pair is evaluated exactly once. Neighbor links are
// recorded on both sides; mate links only on self.
func Interact(self Cell, candidates []Cell, t config.Tuning) {
	mateDist := self.Body.Radius * t.MateRadiusFactor
	neighborDist := self.Body.Radius * t.NeighborRadiusFactor

	for _, other := range candidates {
		d := distance(self.Pos.X, self.Pos.Y, other.Pos.X, other.Pos.Y)
		if d < mateDist {
			self.Links.Mates = append(self.Links.Mates, other.Entity)
		}
		if d < neighborDist {
			self.Links.Neighbors = append(self.Links.Neighbors, other.Entity)
			other.Links.Neighbors = append(other.Links.Neighbors, self.Entity)
		}
	}
}

// InteractAll runs Interact for every cell against the cells after it in
// population order.
func InteractAll(cells []Cell, t config.Tuning) {
	for i, self := range cells {
		Interact(self, cells[i+1:], t)
	}
}
