// Package camera provides an orbit camera for viewing the swarm.
package camera

import "math"

// Polar angle limits keep the camera off the poles so Up stays well defined.
const (
	minPolar = 0.01
	maxPolar = math.Pi - 0.01
)

// Camera orbits the origin at a fixed distance.
// Angles follow the Y-up convention: azimuth around Y, polar measured from +Y.
type Camera struct {
	// Spherical position around the target
	Azimuth  float32
	Polar    float32
	Distance float32

	// Auto-rotation in OrbitControls units (2.0 = one orbit per 30 seconds)
	AutoRotateSpeed float32
	AutoRotate      bool

	// Drag sensitivity multiplier
	RotateSpeed float32

	// Vertical field of view in degrees
	Fovy float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	home orientation
}

// orientation is the initial pose restored by Reset.
type orientation struct {
	Azimuth, Polar float32
}

// New creates a camera on the +Z axis looking at the origin.
func New(viewportW, viewportH, distance, fovy float32) *Camera {
	return &Camera{
		Azimuth:         0,
		Polar:           math.Pi / 2,
		Distance:        distance,
		AutoRotateSpeed: 0.5,
		AutoRotate:      true,
		RotateSpeed:     1,
		Fovy:            fovy,
		ViewportW:       viewportW,
		ViewportH:       viewportH,
		home:            orientation{Azimuth: 0, Polar: math.Pi / 2},
	}
}

// Update advances auto-rotation by dt seconds.
func (c *Camera) Update(dt float32) {
	if !c.AutoRotate || c.AutoRotateSpeed == 0 {
		return
	}
	c.rotateLeft(2 * math.Pi / 60 * c.AutoRotateSpeed * dt)
}

// Drag rotates the camera by a pointer movement in screen pixels.
// A drag across the full viewport height turns one full orbit.
func (c *Camera) Drag(dx, dy float32) {
	if c.ViewportH <= 0 {
		return
	}
	c.rotateLeft(2 * math.Pi * dx / c.ViewportH * c.RotateSpeed)
	c.rotateUp(2 * math.Pi * dy / c.ViewportH * c.RotateSpeed)
}

func (c *Camera) rotateLeft(angle float32) {
	c.Azimuth = wrapAngle(c.Azimuth - angle)
}

func (c *Camera) rotateUp(angle float32) {
	c.Polar = clamp(c.Polar-angle, minPolar, maxPolar)
}

// Position returns the camera eye position in world coordinates.
func (c *Camera) Position() (x, y, z float32) {
	sinP := float32(math.Sin(float64(c.Polar)))
	x = c.Distance * sinP * float32(math.Sin(float64(c.Azimuth)))
	y = c.Distance * float32(math.Cos(float64(c.Polar)))
	z = c.Distance * sinP * float32(math.Cos(float64(c.Azimuth)))
	return x, y, z
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Reset returns the camera to its initial orientation.
func (c *Camera) Reset() {
	c.Azimuth = c.home.Azimuth
	c.Polar = c.home.Polar
}

// wrapAngle wraps an angle to [-Pi, Pi).
func wrapAngle(a float32) float32 {
	r := float32(math.Mod(float64(a)+math.Pi, 2*math.Pi))
	if r < 0 {
		r += 2 * math.Pi
	}
	return r - math.Pi
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
