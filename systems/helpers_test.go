package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/openlife/components"
	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/genome"
)

func testTuning() config.Tuning {
	return config.Tuning{
		MateRadiusFactor:      1,
		NeighborRadiusFactor:  10,
		MoveModifier:          3,
		StandardRadius:        3,
		MinimumRadius:         10,
		UnderpopulationLimit:  2,
		OverpopulationLimit:   5,
		MaxNeighbors:          5,
		UnderpopulationDamage: 0.001,
		OverpopulationDamage:  0.2,
		AffectionThreshold:    1000,
		TurnRate:              1,
		MaxLife:               10,
	}
}

func testSchema() genome.Schema {
	return genome.Schema{
		genome.Size:           {Min: 0, Max: 1},
		genome.AffectionPrime: {Min: 0, Max: 10},
		genome.Red:            {Min: 0, Max: 255},
		genome.Blue:           {Min: 0, Max: 255},
	}
}

// cellPool hands out standalone cells with real entity handles.
type cellPool struct {
	handles *ecs.Map1[components.Position]
	cells   map[ecs.Entity]Cell
}

func newCellPool() *cellPool {
	world := ecs.NewWorld()
	return &cellPool{
		handles: ecs.NewMap1[components.Position](world),
		cells:   make(map[ecs.Entity]Cell),
	}
}

// add creates a cell at (x, y) with radius 10 and the given heading.
func (p *cellPool) add(x, y, heading float64) Cell {
	g := genome.New(testSchema(), [genome.NumTraits]float64{0, 5, 100, 100})
	v := components.NewVitals()
	pos := components.Position{X: x, Y: y}
	c := Cell{
		Entity: p.handles.NewEntity(&pos),
		Pos:    &pos,
		Rot:    &components.Rotation{Heading: heading},
		Body:   &components.Body{Radius: 10},
		Vitals: &v,
		Genome: &g,
		Links:  &components.Links{},
	}
	p.cells[c.Entity] = c
	return c
}

func (p *cellPool) resolve(e ecs.Entity) (Cell, bool) {
	c, ok := p.cells[e]
	return c, ok
}

// link makes each cell a neighbor of self.
func link(self Cell, others ...Cell) {
	for _, o := range others {
		self.Links.Neighbors = append(self.Links.Neighbors, o.Entity)
	}
}

func contains(list []ecs.Entity, e ecs.Entity) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}
