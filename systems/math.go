package systems

import "math"

// Clamp functions for common value ranges

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a float64 value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp interpolates from a to b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerp32 is lerp for float32 state.
func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Sampling helpers

// signedUniform returns a value in [-bound, bound).
func signedUniform(u, bound float64) float64 {
	return (u*2 - 1) * bound
}

// ballPoint maps three uniform samples to a point inside a ball of the given radius.
// The cube root on the radial sample gives uniform volumetric density.
func ballPoint(u1, u2, u3, radius float64) (x, y, z float64) {
	r := radius * math.Cbrt(u1)
	theta := 2 * math.Pi * u2
	phi := math.Acos(2*u3 - 1)
	sinPhi := math.Sin(phi)
	return r * sinPhi * math.Cos(theta), r * sinPhi * math.Sin(theta), r * math.Cos(phi)
}
