package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxSpeed is the largest steps-per-frame the speed slider offers.
const MaxSpeed = 20

// ControlsResult reports what the user changed this frame.
type ControlsResult struct {
	TogglePause bool
	Reset       bool
	Speed       int
}

// Controls renders the raygui control strip: pause, reset and speed.
type Controls struct {
	renderer *Renderer
	x, y     float32
}

// NewControls creates the control strip at the given screen position.
func NewControls(x, y float32) *Controls {
	return &Controls{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition moves the control strip.
func (c *Controls) SetPosition(x, y float32) {
	c.x = x
	c.y = y
}

// Draw renders the controls and returns the user's input.
func (c *Controls) Draw(paused bool, speed int) ControlsResult {
	res := ControlsResult{Speed: speed}

	label := "Pause"
	if paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: c.x, Y: c.y, Width: 80, Height: 24}, label) {
		res.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: c.x + 90, Y: c.y, Width: 80, Height: 24}, "Reset") {
		res.Reset = true
	}

	sliderX := c.x + 220
	rl.DrawText("Speed", int32(c.x+180), int32(c.y+6), c.renderer.Theme.FontSize, c.renderer.Theme.LabelColor)
	v := gui.SliderBar(
		rl.Rectangle{X: sliderX, Y: c.y + 2, Width: 160, Height: 20},
		"", "",
		float32(speed), 1, MaxSpeed,
	)
	rl.DrawText(fmt.Sprintf("%dx", speed), int32(sliderX+170), int32(c.y+6), c.renderer.Theme.FontSize, c.renderer.Theme.ValueColor)
	res.Speed = sliderSpeed(v)

	return res
}

// sliderSpeed rounds a slider value to a valid speed.
func sliderSpeed(v float32) int {
	s := int(v + 0.5)
	if s < 1 {
		return 1
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}
