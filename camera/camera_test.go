package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewFitsArena(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected camera at (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if !near(cam.Zoom, 0.5) {
		t.Errorf("expected fit zoom 0.5, got %f", cam.Zoom)
	}

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if !near(minX, 0) || !near(minY, 0) || !near(maxX, 2560) || !near(maxY, 1440) {
		t.Errorf("visible bounds = (%f, %f, %f, %f), want whole arena", minX, minY, maxX, maxY)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 1280, 720)

	sx, sy := cam.WorldToScreen(640, 360)
	if !near(sx, 640) || !near(sy, 360) {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(0, 0)
	if !near(sx, 0) || !near(sy, 0) {
		t.Errorf("arena origin maps to (%f, %f), want (0, 0)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(2)
	cam.Pan(300, -100)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPanStaysOverArena(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(2) // visible span 640x360

	cam.Pan(-100000, -100000)
	if !near(cam.X, 320) || !near(cam.Y, 180) {
		t.Errorf("after panning past top-left, center = (%f, %f), want (320, 180)", cam.X, cam.Y)
	}

	cam.Pan(100000, 100000)
	if !near(cam.X, 2240) || !near(cam.Y, 1260) {
		t.Errorf("after panning past bottom-right, center = (%f, %f), want (2240, 1260)", cam.X, cam.Y)
	}
}

func TestZoomedOutStaysCentered(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.SetZoom(cam.MinZoom)
	cam.Pan(500, 500)

	if cam.X != 640 || cam.Y != 360 {
		t.Errorf("center = (%f, %f), want arena centre when the whole arena is visible", cam.X, cam.Y)
	}
}

func TestZoomClamping(t *testing.T) {
	cam := New(1280, 720, 1280, 720)

	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("zoom = %f, want clamped to max %f", cam.Zoom, cam.MaxZoom)
	}
	cam.SetZoom(0.001)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("zoom = %f, want clamped to min %f", cam.Zoom, cam.MinZoom)
	}

	cam.Reset()
	if !near(cam.Zoom, 1) {
		t.Errorf("Reset zoom = %f, want 1", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(2)
	cam.X, cam.Y = 1280, 720

	tests := []struct {
		name   string
		x, y   float32
		radius float32
		want   bool
	}{
		{"centre", 1280, 720, 10, true},
		{"just inside edge", 1280 + 320, 720, 0, true},
		{"outside", 1280 + 400, 720, 10, false},
		{"outside but radius overlaps", 1280 + 325, 720, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cam.IsVisible(tt.x, tt.y, tt.radius); got != tt.want {
				t.Errorf("IsVisible(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.radius, got, tt.want)
			}
		})
	}
}

func TestResize(t *testing.T) {
	cam := New(1280, 720, 1280, 720)
	cam.Resize(640, 360)

	if !near(cam.MinZoom, 0.25) {
		t.Errorf("MinZoom = %f, want 0.25", cam.MinZoom)
	}
	if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
		t.Errorf("zoom %f outside [%f, %f]", cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}
}
