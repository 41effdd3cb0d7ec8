package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 30, 60)

	x, y, z := cam.Position()
	if math.Abs(float64(x)) > 1e-4 || math.Abs(float64(y)) > 1e-4 || math.Abs(float64(z-30)) > 1e-4 {
		t.Errorf("expected camera at (0, 0, 30), got (%f, %f, %f)", x, y, z)
	}
}

func TestDistanceIsFixed(t *testing.T) {
	cam := New(1280, 720, 30, 60)

	moves := []struct{ dx, dy float32 }{
		{100, 0},
		{0, 250},
		{-40, -900},
		{3000, 3000},
	}
	for _, m := range moves {
		cam.Drag(m.dx, m.dy)
		cam.Update(1.0 / 60)
		x, y, z := cam.Position()
		d := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(d-30) > 1e-3 {
			t.Errorf("after drag (%f,%f): distance %f, want 30", m.dx, m.dy, d)
		}
	}
}

func TestAutoRotateRate(t *testing.T) {
	cam := New(1280, 720, 30, 60)
	cam.AutoRotateSpeed = 2 // one orbit per 30 seconds

	for i := 0; i < 15*60; i++ {
		cam.Update(1.0 / 60)
	}
	// Half an orbit puts the camera on -Z
	_, _, z := cam.Position()
	if math.Abs(float64(z+30)) > 0.05 {
		t.Errorf("after 15s expected z=-30, got %f", z)
	}

	cam.AutoRotate = false
	before := cam.Azimuth
	cam.Update(1)
	if cam.Azimuth != before {
		t.Error("auto-rotate disabled but azimuth changed")
	}
}

func TestDragClampsPolar(t *testing.T) {
	cam := New(1280, 720, 30, 60)

	cam.Drag(0, 10000)
	if cam.Polar < minPolar || cam.Polar > maxPolar {
		t.Errorf("polar %f escaped [%f, %f]", cam.Polar, minPolar, maxPolar)
	}
	cam.Drag(0, -20000)
	if cam.Polar < minPolar || cam.Polar > maxPolar {
		t.Errorf("polar %f escaped [%f, %f]", cam.Polar, minPolar, maxPolar)
	}
}

func TestDragFullHeightIsFullOrbit(t *testing.T) {
	cam := New(1280, 720, 30, 60)
	cam.Drag(720, 0)

	x, y, z := cam.Position()
	if math.Abs(float64(x)) > 1e-2 || math.Abs(float64(y)) > 1e-2 || math.Abs(float64(z-30)) > 1e-2 {
		t.Errorf("full-height drag should return to start, got (%f, %f, %f)", x, y, z)
	}
}

func TestResetAndResize(t *testing.T) {
	cam := New(1280, 720, 30, 60)
	cam.Drag(200, 100)
	cam.Reset()
	if cam.Azimuth != 0 || cam.Polar != math.Pi/2 {
		t.Errorf("reset left azimuth=%f polar=%f", cam.Azimuth, cam.Polar)
	}

	cam.Resize(800, 600)
	if cam.ViewportW != 800 || cam.ViewportH != 600 {
		t.Errorf("viewport = %fx%f, want 800x600", cam.ViewportW, cam.ViewportH)
	}

	// Drag sensitivity follows the new viewport height
	cam.Drag(600, 0)
	if math.Abs(float64(cam.Azimuth)) > 1e-3 {
		t.Errorf("full-height drag after resize left azimuth %f", cam.Azimuth)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := wrapAngle(tt.in); math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("wrapAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
