package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/openlife/camera"
	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/game"
	"github.com/pthm-cable/openlife/renderer"
	"github.com/pthm-cable/openlife/telemetry"
	"github.com/pthm-cable/openlife/ui"
)

const controlsLegend = "SPACE pause | R reset | WASD/drag pan | wheel zoom | HOME fit | H headings | TAB stats"

// viewer owns the window-side state of a graphical run.
type viewer struct {
	cfg  *config.Config
	opts game.Options
	game *game.Game

	cam      *camera.Camera
	cells    *renderer.CellRenderer
	hud      *ui.HUD
	stats    *ui.StatsPanel
	controls *ui.Controls

	showStats bool
	resets    int64
}

func runGraphical(cfg *config.Config, opts game.Options) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "openlife")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	v := &viewer{
		cfg:       cfg,
		opts:      opts,
		cells:     renderer.NewCellRenderer(),
		hud:       ui.NewHUD(),
		stats:     ui.NewStatsPanel(0, 0, 260),
		controls:  ui.NewControls(0, 0),
		showStats: true,
	}

	var latest statsBox
	v.opts.StatsCallback = latest.set

	if err := v.reset(); err != nil {
		return err
	}
	defer func() { v.game.Close() }()

	for !rl.WindowShouldClose() {
		sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
		if sw != v.cam.ViewportW || sh != v.cam.ViewportH {
			v.cam.Resize(sw, sh)
		}

		if err := v.handleInput(); err != nil {
			return err
		}
		v.game.Update()

		rl.BeginDrawing()
		rl.ClearBackground(v.cells.Background)
		view := v.game.Snapshot()
		v.cells.Draw(view, v.cam)

		status := view.State.String()
		if r := v.game.Stopped(); r != game.NotStopped {
			status = r.String()
		}
		v.hud.Draw(ui.HUDData{
			Title:  "openlife",
			Tick:   view.Tick,
			Cells:  view.Population,
			Stats:  view.Stats,
			Speed:  v.game.StepsPerUpdate(),
			FPS:    rl.GetFPS(),
			TPS:    v.game.PerfStats().TicksPerSecond,
			Paused: v.game.Paused(),
			State:  status,
		})
		if v.showStats {
			if s, ok := latest.get(); ok {
				v.stats.SetPosition(int32(sw)-270, 10)
				v.stats.Draw(s)
			}
		}

		v.controls.SetPosition(10, sh-60)
		res := v.controls.Draw(v.game.Paused(), v.game.StepsPerUpdate())
		if res.TogglePause {
			v.game.SetPaused(!v.game.Paused())
		}
		v.game.SetStepsPerUpdate(res.Speed)
		v.hud.DrawControls(int32(sh), controlsLegend)
		rl.EndDrawing()

		if res.Reset {
			if err := v.reset(); err != nil {
				return err
			}
		}
	}
	return nil
}

// reset replaces the running game with a fresh one. Each reset advances the
// seed so a new population is drawn.
func (v *viewer) reset() error {
	speed, paused := v.opts.StepsPerUpdate, false
	if v.game != nil {
		speed, paused = v.game.StepsPerUpdate(), v.game.Paused()
		v.game.Close()
	}

	opts := v.opts
	opts.Seed += v.resets
	opts.StepsPerUpdate = speed
	g, err := game.NewGame(v.cfg, opts)
	if err != nil {
		return fmt.Errorf("resetting game: %w", err)
	}
	g.SetPaused(paused)
	v.game = g
	v.resets++

	v.cam = camera.New(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()),
		float32(v.cfg.World.Width), float32(v.cfg.World.Height))
	return nil
}

func (v *viewer) handleInput() error {
	if rl.IsKeyPressed(rl.KeySpace) {
		v.game.SetPaused(!v.game.Paused())
	}
	if rl.IsKeyPressed(rl.KeyH) {
		v.cells.ShowHeadings = !v.cells.ShowHeadings
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		v.showStats = !v.showStats
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := v.reset(); err != nil {
			return err
		}
	}

	// Keyboard pan, scaled so the screen speed is constant across zoom levels
	step := 8 / v.cam.Zoom
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		v.cam.Pan(0, -step)
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		v.cam.Pan(0, step)
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		v.cam.Pan(-step, 0)
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		v.cam.Pan(step, 0)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		v.cam.Pan(-d.X/v.cam.Zoom, -d.Y/v.cam.Zoom)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		v.cam.Reset()
	}
	return nil
}

// statsBox keeps the most recent window stats delivered by the game.
type statsBox struct {
	stats telemetry.WindowStats
	ok    bool
}

func (b *statsBox) set(s telemetry.WindowStats) {
	b.stats = s
	b.ok = true
}

func (b *statsBox) get() (telemetry.WindowStats, bool) {
	return b.stats, b.ok
}
