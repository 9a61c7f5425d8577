package genome

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/openlife/config"
)

func testSchema() Schema {
	return SchemaFromConfig(config.GenomeConfig{
		Size:           config.Range{Min: 0, Max: 1},
		AffectionPrime: config.Range{Min: 1, Max: 10},
		Red:            config.Range{Min: 0, Max: 255},
		Blue:           config.Range{Min: 0, Max: 255},
	})
}

func TestNewRandomWithinRange(t *testing.T) {
	s := testSchema()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		g := NewRandom(rng, s)
		for _, tr := range Traits() {
			v := g.Gene(tr)
			if v < s[tr].Min || v > s[tr].Max {
				t.Fatalf("trait %s = %v outside [%v, %v]", tr, v, s[tr].Min, s[tr].Max)
			}
		}
	}
}

func TestBlendAverages(t *testing.T) {
	s := testSchema()
	a := New(s, [NumTraits]float64{0.2, 2, 100, 0})
	b := New(s, [NumTraits]float64{0.6, 8, 200, 50})

	child := Blend(a, b)

	tests := []struct {
		trait Trait
		want  float64
	}{
		{Size, 0.4},
		{AffectionPrime, 5},
		{Red, 150},
		{Blue, 25},
	}
	for _, tt := range tests {
		t.Run(tt.trait.String(), func(t *testing.T) {
			if got := child.Gene(tt.trait); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Blend %s = %v, want %v", tt.trait, got, tt.want)
			}
		})
	}

	// Parents are unchanged
	if a.Gene(Size) != 0.2 || b.Gene(Size) != 0.6 {
		t.Error("Blend mutated a parent")
	}
}

func TestBlendIsSymmetric(t *testing.T) {
	s := testSchema()
	rng := rand.New(rand.NewSource(7))
	a := NewRandom(rng, s)
	b := NewRandom(rng, s)
	if Blend(a, b) != Blend(b, a) {
		t.Error("Blend(a, b) != Blend(b, a)")
	}
}

func TestNewClamps(t *testing.T) {
	g := New(testSchema(), [NumTraits]float64{5, -3, 300, 10})
	if g.Gene(Size) != 1 {
		t.Errorf("size = %v, want clamped 1", g.Gene(Size))
	}
	if g.Gene(AffectionPrime) != 1 {
		t.Errorf("affection_prime = %v, want clamped 1", g.Gene(AffectionPrime))
	}
	if g.Gene(Red) != 255 {
		t.Errorf("red = %v, want clamped 255", g.Gene(Red))
	}
}

func TestLookup(t *testing.T) {
	g := New(testSchema(), [NumTraits]float64{0.5, 3, 10, 20})

	if v, ok := g.Lookup("affection_prime"); !ok || v != 3 {
		t.Errorf("Lookup(affection_prime) = %v, %v; want 3, true", v, ok)
	}
	if _, ok := g.Lookup("wings"); ok {
		t.Error("Lookup(wings) should miss")
	}
}

func TestTraitNamesRoundtrip(t *testing.T) {
	for _, tr := range Traits() {
		got, ok := TraitByName(tr.String())
		if !ok || got != tr {
			t.Errorf("TraitByName(%q) = %v, %v", tr.String(), got, ok)
		}
	}
}

func TestRepresentation(t *testing.T) {
	g := New(testSchema(), [NumTraits]float64{0, 1, 200.7, 12})
	r, gr, b := g.Representation()
	if r != 200 || gr != 16 || b != 12 {
		t.Errorf("Representation() = (%d, %d, %d), want (200, 16, 12)", r, gr, b)
	}

	// Deterministic
	r2, g2, b2 := g.Representation()
	if r != r2 || gr != g2 || b != b2 {
		t.Error("Representation is not deterministic")
	}
}
