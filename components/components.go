// Package components defines ECS components for the particle swarm.
package components

// Vec3 is a 3D vector in world units.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// LengthSq returns the squared length of v.
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Particle holds the per-particle state sampled once at field initialization.
// Only the expansion and elapsed time change what is drawn; the particle itself is never mutated.
type Particle struct {
	InitialPos Vec3
	Velocity   Vec3    // Sampled but not consumed by the drift model
	RotSpeed   float32 // Signed, radians per second of elapsed time
	Scale      float32 // Base uniform scale
	Phase      float32 // [0, 2π), decorrelates oscillation across particles
}

// InstanceTransform is the per-frame draw transform of one particle.
type InstanceTransform struct {
	Position Vec3
	Rotation Vec3 // Euler XYZ; Z is always 0
	Scale    float32
}
