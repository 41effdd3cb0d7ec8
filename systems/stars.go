package systems

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/ethereal/components"
	"github.com/pthm-cable/ethereal/config"
)

// Star is one background point.
type Star struct {
	Pos  components.Vec3
	Base float32 // Resting brightness in [0, 1]
}

// StarField holds the background shell of stars and their twinkle noise.
type StarField struct {
	Stars []Star

	noise opensimplex.Noise
	speed float64
}

// NewStarField scatters stars in a shell between radius and radius+depth.
// Nearer stars are brighter.
func NewStarField(cfg config.StarsConfig, rng *rand.Rand) *StarField {
	sf := &StarField{
		Stars: make([]Star, max(cfg.Count, 0)),
		noise: opensimplex.NewNormalized(rng.Int63()),
		speed: cfg.TwinkleSpeed,
	}
	for i := range sf.Stars {
		depthFrac := rng.Float64()
		r := cfg.Radius + cfg.Depth*depthFrac
		x, y, z := ballPoint(1, rng.Float64(), rng.Float64(), r)
		sf.Stars[i] = Star{
			Pos:  components.Vec3{X: float32(x), Y: float32(y), Z: float32(z)},
			Base: float32(1 - 0.6*depthFrac),
		}
	}
	return sf
}

// Brightness returns star i's brightness at elapsed time t, in [0, 1].
func (sf *StarField) Brightness(i int, t float64) float32 {
	n := sf.noise.Eval2(float64(i)*0.173, t*sf.speed)
	b := float64(sf.Stars[i].Base) * (0.55 + 0.45*n)
	return float32(clamp01(b))
}
