// Package simulation owns the cell population and advances it one tick at a
// time: interaction, boundary correction, update and mating, then births
// and deaths.
package simulation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/openlife/components"
	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/genome"
	"github.com/pthm-cable/openlife/systems"
	"github.com/pthm-cable/openlife/telemetry"
)

// State is the lifecycle state of a simulation.
type State uint8

const (
	Running State = iota
	Extinct
)

// String returns the display name for a State.
func (s State) String() string {
	if s == Extinct {
		return "extinct"
	}
	return "running"
}

// PhaseTimer is notified as a tick moves between phases.
type PhaseTimer interface {
	StartPhase(phase string)
}

// TickResult summarises one tick.
type TickResult struct {
	Tick       int
	Births     int
	Deaths     int
	Population int
}

// Simulation holds the population and drives the per-tick pipeline.
type Simulation struct {
	world *ecs.World

	cellMapper *ecs.Map6[
		components.Position,
		components.Rotation,
		components.Body,
		components.Vitals,
		genome.Genome,
		components.Links,
	]
	cellFilter *ecs.Filter6[
		components.Position,
		components.Rotation,
		components.Body,
		components.Vitals,
		genome.Genome,
		components.Links,
	]

	// Population order; the ECS world does not keep one.
	order []ecs.Entity

	// Per-tick views, valid until the next structural change.
	cells []systems.Cell
	index map[ecs.Entity]int

	tuning config.Tuning
	arena  systems.Arena
	spawn  spawnRect
	schema genome.Schema
	rng    *rand.Rand

	stats telemetry.Statistics
	tick  int
	state State
	timer PhaseTimer
}

type spawnRect struct {
	x, y, w, h float64
}

// New creates a simulation and spawns cfg.Population.Initial random cells.
// The simulation draws all randomness from rng.
func New(cfg *config.Config, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	world := ecs.NewWorld()

	s := &Simulation{
		world: world,
		cellMapper: ecs.NewMap6[
			components.Position,
			components.Rotation,
			components.Body,
			components.Vitals,
			genome.Genome,
			components.Links,
		](world),
		cellFilter: ecs.NewFilter6[
			components.Position,
			components.Rotation,
			components.Body,
			components.Vitals,
			genome.Genome,
			components.Links,
		](world),
		index:  make(map[ecs.Entity]int),
		tuning: cfg.Tuning,
		arena:  systems.Arena{Width: cfg.World.Width, Height: cfg.World.Height},
		schema: genome.SchemaFromConfig(cfg.Genome),
		rng:    rng,
	}

	s.spawn = spawnRect{cfg.World.SpawnX, cfg.World.SpawnY, cfg.World.SpawnWidth, cfg.World.SpawnHeight}
	if s.spawn.w <= 0 || s.spawn.h <= 0 {
		s.spawn = spawnRect{0, 0, s.arena.Width, s.arena.Height}
	}

	for i := 0; i < cfg.Population.Initial; i++ {
		s.spawnRandom()
	}
	if len(s.order) == 0 {
		s.state = Extinct
	}

	return s, nil
}

// spawnRandom adds a cell with a random genome and heading, placed fully
// inside the spawn rectangle when it fits.
func (s *Simulation) spawnRandom() ecs.Entity {
	g := genome.NewRandom(s.rng, s.schema)
	r := components.BodyFromGenome(g, s.tuning).Radius

	x := s.spawn.x + s.spawn.w/2
	if s.spawn.w > 2*r {
		x = s.spawn.x + r + s.rng.Float64()*(s.spawn.w-2*r)
	}
	y := s.spawn.y + s.spawn.h/2
	if s.spawn.h > 2*r {
		y = s.spawn.y + r + s.rng.Float64()*(s.spawn.h-2*r)
	}
	heading := s.rng.Float64() * 360

	return s.Spawn(x, y, heading, g)
}

// Spawn appends a cell to the population. It must not be called during Step.
// A spawn revives an extinct simulation.
func (s *Simulation) Spawn(x, y, heading float64, g genome.Genome) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{}
	rot.Set(heading)
	body := components.BodyFromGenome(g, s.tuning)
	vitals := components.NewVitals()
	links := components.Links{}

	e := s.cellMapper.NewEntity(&pos, &rot, &body, &vitals, &g, &links)
	s.order = append(s.order, e)
	s.state = Running
	return e
}

// SetPhaseTimer installs a timer that is told when each phase begins.
func (s *Simulation) SetPhaseTimer(t PhaseTimer) {
	s.timer = t
}

func (s *Simulation) phase(name string) {
	if s.timer != nil {
		s.timer.StartPhase(name)
	}
}

// Step advances the simulation by one tick. An extinct simulation does not
// change.
func (s *Simulation) Step() TickResult {
	if s.state == Extinct {
		return TickResult{Tick: s.tick}
	}

	s.phase(telemetry.PhaseInteraction)
	s.collectCells()
	systems.InteractAll(s.cells, s.tuning)

	s.phase(telemetry.PhaseBounds)
	for _, c := range s.cells {
		if !systems.InBounds(*c.Pos, c.Body.Radius, s.arena) {
			systems.Bounce(c.Pos, c.Rot, c.Body.Radius, s.arena)
		}
	}

	s.phase(telemetry.PhaseUpdate)
	var children []systems.Offspring
	for _, c := range s.cells {
		systems.Update(c, s.resolve, s.tuning)
		children = append(children, systems.Mate(c, s.resolve, s.tuning)...)
	}

	s.phase(telemetry.PhaseReconcile)
	deaths := s.reconcile(children)

	s.tick++
	if len(s.order) == 0 {
		s.state = Extinct
	}

	return TickResult{
		Tick:       s.tick,
		Births:     len(children),
		Deaths:     deaths,
		Population: len(s.order),
	}
}

// collectCells rebuilds the per-tick views in population order.
func (s *Simulation) collectCells() {
	s.cells = s.cells[:0]
	clear(s.index)
	for i, e := range s.order {
		pos, rot, body, vitals, g, links := s.cellMapper.Get(e)
		s.cells = append(s.cells, systems.Cell{
			Entity: e,
			Pos:    pos,
			Rot:    rot,
			Body:   body,
			Vitals: vitals,
			Genome: g,
			Links:  links,
		})
		s.index[e] = i
	}
}

func (s *Simulation) resolve(e ecs.Entity) (systems.Cell, bool) {
	i, ok := s.index[e]
	if !ok {
		return systems.Cell{}, false
	}
	return s.cells[i], true
}

// reconcile appends the children and removes dead cells, keeping the order
// of the survivors. It returns the number of deaths.
func (s *Simulation) reconcile(children []systems.Offspring) int {
	// Read vitals before any structural change invalidates the views.
	var dead []ecs.Entity
	alive := s.order[:0]
	for _, c := range s.cells {
		if c.Vitals.Alive() {
			alive = append(alive, c.Entity)
			continue
		}
		dead = append(dead, c.Entity)
		s.stats.Deaths++
		switch c.Vitals.Cause {
		case components.CauseOverpopulation:
			s.stats.OverpopulationDeaths++
		case components.CauseUnderpopulation:
			s.stats.UnderpopulationDeaths++
		}
	}
	s.order = alive
	s.cells = s.cells[:0]
	clear(s.index)

	for _, child := range children {
		s.Spawn(child.X, child.Y, child.Heading, child.Genome)
	}
	s.stats.Births += len(children)

	for _, e := range dead {
		s.world.RemoveEntity(e)
	}
	return len(dead)
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int {
	return s.tick
}

// State returns the lifecycle state.
func (s *Simulation) State() State {
	return s.state
}

// CellCount returns the live population size.
func (s *Simulation) CellCount() int {
	return len(s.order)
}

// Statistics returns the cumulative birth and death counts.
func (s *Simulation) Statistics() telemetry.Statistics {
	return s.stats
}

// Tuning returns the tuning the simulation was built with.
func (s *Simulation) Tuning() config.Tuning {
	return s.tuning
}

// Arena returns the arena bounds.
func (s *Simulation) Arena() systems.Arena {
	return s.arena
}

// AverageLocation returns the mean cell position, or the origin when the
// population is empty.
func (s *Simulation) AverageLocation() (x, y float64) {
	if len(s.order) == 0 {
		return 0, 0
	}
	for _, e := range s.order {
		pos, _, _, _, _, _ := s.cellMapper.Get(e)
		x += pos.X
		y += pos.Y
	}
	n := float64(len(s.order))
	return x / n, y / n
}

// Area returns the summed area of all cells.
func (s *Simulation) Area() float64 {
	var area float64
	query := s.cellFilter.Query()
	for query.Next() {
		_, _, body, _, _, _ := query.Get()
		area += math.Pi * body.Radius * body.Radius
	}
	return area
}

// Sample gathers per-cell values for window statistics.
func (s *Simulation) Sample() telemetry.PopulationSample {
	var p telemetry.PopulationSample
	query := s.cellFilter.Query()
	for query.Next() {
		_, _, body, vitals, g, _ := query.Get()
		p.Add(body.Radius, vitals.Life, vitals.Affection, g.Gene(genome.Size), g.Gene(genome.AffectionPrime))
		p.Area += math.Pi * body.Radius * body.Radius
	}
	p.CenterX, p.CenterY = s.AverageLocation()
	return p
}
