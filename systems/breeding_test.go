package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/openlife/genome"
)

func TestMateAffectionThreshold(t *testing.T) {
	tests := []struct {
		name       string
		a, b       float64
		wantBirths int
	}{
		{"below", 400, 500, 0},
		{"exactly at threshold", 500, 500, 0},
		{"above", 501, 500, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newCellPool()
			self := p.add(100, 100, 30)
			mate := p.add(104, 102, 0)
			self.Vitals.Affection = tt.a
			mate.Vitals.Affection = tt.b
			self.Links.Mates = append(self.Links.Mates, mate.Entity)
			link(self, mate, p.add(120, 100, 0))

			children := Mate(self, p.resolve, testTuning())

			if len(children) != tt.wantBirths {
				t.Fatalf("children = %d, want %d", len(children), tt.wantBirths)
			}
			if tt.wantBirths > 0 {
				if self.Vitals.Affection != 0 || mate.Vitals.Affection != 0 {
					t.Errorf("parents not reset: %v, %v", self.Vitals.Affection, mate.Vitals.Affection)
				}
			} else if self.Vitals.Affection != tt.a || mate.Vitals.Affection != tt.b {
				t.Error("affection changed without a birth")
			}
			if len(self.Links.Mates) != 0 || len(self.Links.Neighbors) != 0 {
				t.Errorf("links not cleared: %d mates, %d neighbors", len(self.Links.Mates), len(self.Links.Neighbors))
			}
		})
	}
}

func TestMateChild(t *testing.T) {
	p := newCellPool()
	self := p.add(100, 100, 300)
	mate := p.add(104, 102, 0)
	*mate.Genome = genome.New(testSchema(), [genome.NumTraits]float64{1, 9, 200, 0})
	self.Vitals.Affection = 600
	mate.Vitals.Affection = 600
	self.Links.Mates = append(self.Links.Mates, mate.Entity)

	children := Mate(self, p.resolve, testTuning())
	if len(children) != 1 {
		t.Fatalf("children = %d, want 1", len(children))
	}
	child := children[0]

	if child.X != 102 || child.Y != 101 {
		t.Errorf("child position = (%v, %v), want parents' midpoint (102, 101)", child.X, child.Y)
	}
	if child.Heading != 30 {
		t.Errorf("child heading = %v, want parent heading + 90 = 30", child.Heading)
	}
	want := genome.Blend(*self.Genome, *mate.Genome)
	if child.Genome != want {
		t.Errorf("child genome = %v, want blend %v", child.Genome.Values(), want.Values())
	}
	if math.Abs(child.Genome.Gene(genome.AffectionPrime)-7) > 1e-9 {
		t.Errorf("child affection_prime = %v, want 7", child.Genome.Gene(genome.AffectionPrime))
	}
}

func TestMateOnlyOncePerPair(t *testing.T) {
	p := newCellPool()
	self := p.add(100, 100, 0)
	m1 := p.add(101, 100, 0)
	m2 := p.add(99, 100, 0)
	self.Vitals.Affection = 900
	m1.Vitals.Affection = 200
	m2.Vitals.Affection = 200
	self.Links.Mates = append(self.Links.Mates, m1.Entity, m2.Entity)

	children := Mate(self, p.resolve, testTuning())

	// After breeding with m1, self's affection is 0 so m2 alone cannot
	// reach the threshold.
	if len(children) != 1 {
		t.Errorf("children = %d, want 1", len(children))
	}
	if m2.Vitals.Affection != 200 {
		t.Errorf("second mate affection = %v, want untouched 200", m2.Vitals.Affection)
	}
}

func TestMateCrowdedCellDoesNotBreed(t *testing.T) {
	tun := testTuning()
	p := newCellPool()
	self := p.add(100, 100, 0)
	mate := p.add(101, 100, 0)
	self.Vitals.Affection = 2000
	mate.Vitals.Affection = 2000
	self.Links.Mates = append(self.Links.Mates, mate.Entity)
	for i := 0; i < tun.MaxNeighbors; i++ {
		link(self, p.add(110, 100, 0))
	}

	if children := Mate(self, p.resolve, tun); len(children) != 0 {
		t.Errorf("crowded cell bred %d children", len(children))
	}
	if len(self.Links.Neighbors) != 0 {
		t.Error("links not cleared for crowded cell")
	}
}

func TestMateWithoutMatesClears(t *testing.T) {
	p := newCellPool()
	self := p.add(100, 100, 0)
	link(self, p.add(110, 100, 0))

	if children := Mate(self, p.resolve, testTuning()); children != nil {
		t.Errorf("children = %v, want nil", children)
	}
	if len(self.Links.Neighbors) != 0 {
		t.Error("neighbors not cleared")
	}
}
