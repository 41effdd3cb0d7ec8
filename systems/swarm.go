package systems

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ethereal/components"
	"github.com/pthm-cable/ethereal/config"
	"github.com/pthm-cable/ethereal/sprite"
)

// ErrInvalidCount is returned when a field is initialized with no particles.
var ErrInvalidCount = errors.New("particle count must be positive")

// Bounds for runtime count changes.
const (
	MinResizeCount = 50
	MaxResizeCount = 24000
)

// ResizeCount doubles (grow) or halves the particle count within
// [MinResizeCount, MaxResizeCount]. A count already outside the bounds is never
// pushed further out, and shrinking never grows it.
func ResizeCount(count int, grow bool) int {
	if grow {
		n := min(count*2, MaxResizeCount)
		return max(n, count)
	}
	n := max(count/2, MinResizeCount)
	return min(n, count)
}

// Frame is the draw input produced by one Advance call.
// Transforms is owned by the field and overwritten by the next Advance.
type Frame struct {
	Transforms []components.InstanceTransform
	Tint       components.Tint
	Mask       *sprite.Mask
	Shape      sprite.Shape
	Expansion  float32
}

// ParticleField owns the swarm state and turns it into per-frame instance transforms.
// Each particle is one entity in an ark world holding a components.Particle.
type ParticleField struct {
	cfg     config.FieldConfig
	sprites *sprite.Cache
	rng     *rand.Rand

	world  *ecs.World
	mapper *ecs.Map1[components.Particle]
	filter *ecs.Filter1[components.Particle]
	count  int

	expansion Expansion
	shape     sprite.Shape
	mask      *sprite.Mask

	batch []components.InstanceTransform
}

// NewParticleField creates an empty field. Call Initialize before Advance.
// A nil sprite cache uses the default rasterization parameters.
func NewParticleField(cfg config.FieldConfig, sprites *sprite.Cache, rng *rand.Rand) *ParticleField {
	if sprites == nil {
		sprites = sprite.NewCache(sprite.DefaultParams())
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	f := &ParticleField{
		cfg:       cfg,
		sprites:   sprites,
		rng:       rng,
		expansion: NewExpansion(cfg.Compact, cfg.Dispersed, cfg.ExpansionRate),
	}
	f.SetShape(sprite.Snowflake)
	return f
}

// Initialize replaces the swarm with count freshly sampled particles.
func (f *ParticleField) Initialize(count int) error {
	if count <= 0 {
		return fmt.Errorf("initializing field with %d particles: %w", count, ErrInvalidCount)
	}
	states := make([]components.Particle, count)
	for i := range states {
		states[i] = f.sample()
	}
	return f.InitializeWith(states)
}

// InitializeWith replaces the swarm with the given particle states.
func (f *ParticleField) InitializeWith(states []components.Particle) error {
	if len(states) == 0 {
		return fmt.Errorf("initializing field with 0 particles: %w", ErrInvalidCount)
	}

	// A fresh world drops every entity of the previous swarm.
	f.world = ecs.NewWorld()
	f.mapper = ecs.NewMap1[components.Particle](f.world)
	f.filter = ecs.NewFilter1[components.Particle](f.world)
	for i := range states {
		f.mapper.NewEntity(&states[i])
	}

	f.count = len(states)
	f.batch = make([]components.InstanceTransform, f.count)
	return nil
}

// sample draws one particle with independent attributes.
func (f *ParticleField) sample() components.Particle {
	cfg := &f.cfg
	x, y, z := ballPoint(f.rng.Float64(), f.rng.Float64(), f.rng.Float64(), cfg.Radius)

	phase := float32(f.rng.Float64() * 2 * math.Pi)
	if phase >= 2*math.Pi {
		phase = 0
	}

	return components.Particle{
		InitialPos: components.Vec3{X: float32(x), Y: float32(y), Z: float32(z)},
		Velocity: components.Vec3{
			X: float32(signedUniform(f.rng.Float64(), cfg.VelocityMax)),
			Y: float32(signedUniform(f.rng.Float64(), cfg.VelocityMax)),
			Z: float32(signedUniform(f.rng.Float64(), cfg.VelocityMax)),
		},
		RotSpeed: float32(signedUniform(f.rng.Float64(), cfg.RotationSpeedMax)),
		Scale:    float32(cfg.ScaleMin + f.rng.Float64()*(cfg.ScaleMax-cfg.ScaleMin)),
		Phase:    phase,
	}
}

// SetShape switches the sprite mask. Particle state is untouched.
func (f *ParticleField) SetShape(shape sprite.Shape) {
	f.shape = shape
	f.mask = f.sprites.Get(shape)
}

// Advance steps the expansion once and writes every particle's transform for elapsed time t.
// dt is not used by the smoothing, which is per frame.
func (f *ParticleField) Advance(elapsed, dt float64, intent bool, tint components.Tint) Frame {
	e := f.expansion.Step(intent)

	if f.filter != nil {
		i := 0
		query := f.filter.Query()
		for query.Next() {
			p := query.Get()
			f.batch[i] = ComputeTransform(p, e, elapsed, &f.cfg)
			i++
		}
	}

	return Frame{
		Transforms: f.batch,
		Tint:       tint,
		Mask:       f.mask,
		Shape:      f.shape,
		Expansion:  e,
	}
}

// ComputeTransform evaluates one particle at expansion e and elapsed time t.
// It reads nothing but its arguments.
func ComputeTransform(p *components.Particle, e float32, t float64, cfg *config.FieldConfig) components.InstanceTransform {
	phase := float64(p.Phase)
	amp := cfg.DriftAmplitude

	drift := components.Vec3{
		X: float32(amp * math.Sin(cfg.DriftFreq[0]*t+phase)),
		Y: float32(amp * math.Cos(cfg.DriftFreq[1]*t+phase)),
		Z: float32(amp * math.Sin(cfg.DriftFreq[2]*t+phase)),
	}

	angle := float32(t*float64(p.RotSpeed) + phase)

	pulse := 1 + cfg.PulseAmplitude*math.Sin(cfg.PulseFreq*t+phase)
	var spread float64
	if span := cfg.Dispersed - cfg.Compact; span > 0 {
		spread = clamp01((float64(e) - cfg.Compact) / span)
	}
	boost := lerp(1, cfg.MaxScaleBoost, spread)

	return components.InstanceTransform{
		Position: p.InitialPos.Add(drift).Scale(e),
		Rotation: components.Vec3{X: angle, Y: angle},
		Scale:    float32(float64(p.Scale) * pulse * boost),
	}
}

// Count returns the number of particles.
func (f *ParticleField) Count() int {
	return f.count
}

// Expansion returns the current smoothed expansion factor.
func (f *ParticleField) Expansion() float32 {
	return f.expansion.Value()
}

// ExpansionProgress returns the expansion factor normalized to [0, 1].
func (f *ParticleField) ExpansionProgress() float32 {
	return f.expansion.Progress()
}

// Shape returns the active sprite shape.
func (f *ParticleField) Shape() sprite.Shape {
	return f.shape
}

// Particles returns a copy of every particle state.
func (f *ParticleField) Particles() []components.Particle {
	if f.filter == nil {
		return nil
	}
	out := make([]components.Particle, 0, f.count)
	query := f.filter.Query()
	for query.Next() {
		out = append(out, *query.Get())
	}
	return out
}
