package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/openlife/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title  string
	Tick   int
	Cells  int
	Stats  telemetry.Statistics
	Speed  int
	FPS    int32
	TPS    float64 // simulation ticks per second of compute
	Paused bool
	State  string
}

// hudLines formats the HUD text, one entry per line.
func hudLines(d HUDData) []string {
	status := d.State
	if d.Paused {
		status = "PAUSED"
	}
	return []string{
		fmt.Sprintf("Tick: %d | Cells: %d | Speed: %dx | FPS: %d | %.0f ticks/s", d.Tick, d.Cells, d.Speed, d.FPS, d.TPS),
		fmt.Sprintf("Births: %d | Deaths: %d (overpop %d, underpop %d)",
			d.Stats.Births, d.Stats.Deaths, d.Stats.OverpopulationDeaths, d.Stats.UnderpopulationDeaths),
		status,
	}
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	lines := hudLines(data)
	y := int32(35)
	for i, line := range lines {
		color := rl.LightGray
		if i == len(lines)-1 {
			color = rl.Yellow
		}
		rl.DrawText(line, 10, y, 16, color)
		y += 20
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// StatsPanel renders the latest window statistics.
type StatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewStatsPanel creates a new stats panel.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *StatsPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the panel and returns the Y below it.
func (p *StatsPanel) Draw(s telemetry.WindowStats) int32 {
	r := p.renderer
	padding := r.Theme.Padding
	inner := p.width - padding*2

	r.DrawPanel(p.x, p.y, p.width, r.Theme.LineHeight*9+padding*2)

	y := r.DrawSectionHeader(p.x+padding, p.y+padding, fmt.Sprintf("Window @ %d", s.WindowEndTick))
	y = r.DrawBar(p.x+padding, y, "Life p50", float32(s.LifeP50), inner)
	y = r.DrawBar(p.x+padding, y, "Life mean", float32(s.LifeMean), inner)
	y = r.DrawLabelValue(p.x+padding, y, "Radius", fmt.Sprintf("%.1f ± %.1f", s.RadiusMean, s.RadiusStd))
	y = r.DrawLabelValue(p.x+padding, y, "Affection", fmt.Sprintf("%.0f", s.AffectionMean))
	y = r.DrawLabelValue(p.x+padding, y, "Births", fmt.Sprintf("%d", s.Births))
	y = r.DrawLabelValue(p.x+padding, y, "Deaths", fmt.Sprintf("%d", s.Deaths))
	y = r.DrawLabelValue(p.x+padding, y, "Area", fmt.Sprintf("%.0f", s.Area))
	return y
}
