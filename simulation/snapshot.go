package simulation

import "github.com/pthm-cable/openlife/telemetry"

// CellView is the read-only render data for one cell.
type CellView struct {
	X, Y    float64
	Heading float64
	Radius  float64
	R, G, B uint8
	A       uint8
}

// View is a read-only snapshot of the simulation between ticks.
type View struct {
	Tick       int
	State      State
	Population int
	Stats      telemetry.Statistics
	Cells      []CellView
	CenterX    float64
	CenterY    float64
}

// Snapshot copies the render data of every cell in population order.
// dst is reused when it has enough capacity.
func (s *Simulation) Snapshot(dst []CellView) View {
	dst = dst[:0]
	for _, e := range s.order {
		pos, rot, body, vitals, g, _ := s.cellMapper.Get(e)
		r, gr, b := g.Representation()
		dst = append(dst, CellView{
			X:       pos.X,
			Y:       pos.Y,
			Heading: rot.Heading,
			Radius:  body.Radius,
			R:       r,
			G:       gr,
			B:       b,
			A:       vitals.Alpha(),
		})
	}

	cx, cy := s.AverageLocation()
	return View{
		Tick:       s.tick,
		State:      s.state,
		Population: len(s.order),
		Stats:      s.stats,
		Cells:      dst,
		CenterX:    cx,
		CenterY:    cy,
	}
}

// CellRecords appends one position record per cell, in population order.
func (s *Simulation) CellRecords(dst []telemetry.CellRecord) []telemetry.CellRecord {
	for _, e := range s.order {
		pos, _, body, vitals, _, _ := s.cellMapper.Get(e)
		dst = append(dst, telemetry.CellRecord{
			Tick:   s.tick,
			X:      pos.X,
			Y:      pos.Y,
			Radius: body.Radius,
			Life:   vitals.Life,
		})
	}
	return dst
}
