// Package systems implements the per-tick cell behaviour as plain functions
// over component pointers. Callers own the ECS world and decide ordering.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/openlife/components"
	"github.com/pthm-cable/openlife/genome"
)

// Cell bundles the component pointers of one live entity for a single tick.
// Pointers stay valid only while no entity is created or removed.
type Cell struct {
	Entity ecs.Entity
	Pos    *components.Position
	Rot    *components.Rotation
	Body   *components.Body
	Vitals *components.Vitals
	Genome *genome.Genome
	Links  *components.Links
}

// Resolver returns the cell view for an entity referenced from a Links list.
type Resolver func(ecs.Entity) (Cell, bool)

// Arena is the axis-aligned rectangle anchored at the origin that cells
// live in.
type Arena struct {
	Width, Height float64
}
