// Package renderer draws simulation snapshots with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/openlife/camera"
	"github.com/pthm-cable/openlife/simulation"
)

// CellRenderer draws cells as filled circles with a heading marker.
type CellRenderer struct {
	Background rl.Color
	Border     rl.Color
	Centroid   rl.Color

	// ShowHeadings draws a line from each cell's centre along its heading.
	ShowHeadings bool
}

// NewCellRenderer creates a renderer with the default palette.
func NewCellRenderer() *CellRenderer {
	return &CellRenderer{
		Background:   rl.Black,
		Border:       rl.Color{R: 60, G: 70, B: 80, A: 255},
		Centroid:     rl.Color{R: 255, G: 255, B: 255, A: 90},
		ShowHeadings: true,
	}
}

// Draw renders the arena border, every visible cell and the population centre.
func (r *CellRenderer) Draw(view simulation.View, cam *camera.Camera) {
	r.drawArena(cam)

	for i := range view.Cells {
		c := &view.Cells[i]
		x, y, radius := float32(c.X), float32(c.Y), float32(c.Radius)
		if !cam.IsVisible(x, y, radius) {
			continue
		}

		sx, sy := cam.WorldToScreen(x, y)
		sr := radius * cam.Zoom
		color := rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, sr, color)

		if r.ShowHeadings && sr >= 2 {
			tx, ty := headingTip(c.X, c.Y, c.Heading, c.Radius)
			ex, ey := cam.WorldToScreen(float32(tx), float32(ty))
			rl.DrawLineV(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: ex, Y: ey}, rl.Color{R: 255, G: 255, B: 255, A: c.A / 2})
		}
	}

	if view.Population > 0 {
		cx, cy := cam.WorldToScreen(float32(view.CenterX), float32(view.CenterY))
		rl.DrawCircleLines(int32(cx), int32(cy), 4, r.Centroid)
	}
}

func (r *CellRenderer) drawArena(cam *camera.Camera) {
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(cam.WorldW, cam.WorldH)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 2, r.Border)
}

// headingTip is the point on the cell's rim along its heading.
func headingTip(x, y, heading, radius float64) (float64, float64) {
	rad := heading * math.Pi / 180
	return x + math.Cos(rad)*radius, y + math.Sin(rad)*radius
}
