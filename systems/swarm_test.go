package systems

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/ethereal/components"
	"github.com/pthm-cable/ethereal/config"
	"github.com/pthm-cable/ethereal/sprite"
)

func testFieldConfig(t *testing.T) config.FieldConfig {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg.Field
}

func newTestField(t *testing.T, seed int64) *ParticleField {
	t.Helper()
	return NewParticleField(testFieldConfig(t), sprite.NewCache(sprite.DefaultParams()), rand.New(rand.NewSource(seed)))
}

func length(v components.Vec3) float64 {
	return math.Sqrt(float64(v.LengthSq()))
}

func TestInitializeProducesBoundedParticles(t *testing.T) {
	for _, n := range []int{1, 3, 64, 1500} {
		f := newTestField(t, int64(n))
		if err := f.Initialize(n); err != nil {
			t.Fatalf("Initialize(%d): %v", n, err)
		}
		if f.Count() != n {
			t.Errorf("Count() = %d, want %d", f.Count(), n)
		}

		particles := f.Particles()
		if len(particles) != n {
			t.Fatalf("got %d particles, want %d", len(particles), n)
		}
		for i, p := range particles {
			if r := length(p.InitialPos); r > 4+1e-5 {
				t.Errorf("particle %d: |initial| = %f exceeds radius 4", i, r)
			}
			if math.Abs(float64(p.RotSpeed)) > 0.005+1e-9 {
				t.Errorf("particle %d: rotation speed %f out of range", i, p.RotSpeed)
			}
			if p.Scale < 0.5 || p.Scale > 1.0 {
				t.Errorf("particle %d: scale %f out of [0.5, 1]", i, p.Scale)
			}
			if p.Phase < 0 || p.Phase >= 2*math.Pi {
				t.Errorf("particle %d: phase %f out of [0, 2π)", i, p.Phase)
			}
			for _, v := range []float32{p.Velocity.X, p.Velocity.Y, p.Velocity.Z} {
				if math.Abs(float64(v)) > 0.005+1e-9 {
					t.Errorf("particle %d: velocity component %f out of range", i, v)
				}
			}
		}
	}
}

func TestInitializeRejectsInvalidCount(t *testing.T) {
	f := newTestField(t, 1)
	for _, n := range []int{0, -1, -100} {
		if err := f.Initialize(n); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Initialize(%d) error = %v, want ErrInvalidCount", n, err)
		}
	}
	if err := f.InitializeWith(nil); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("InitializeWith(nil) error = %v, want ErrInvalidCount", err)
	}
	if f.Count() != 0 {
		t.Errorf("rejected initialization changed count to %d", f.Count())
	}
}

func TestRadialDistributionIsVolumetric(t *testing.T) {
	const n = 20000
	f := newTestField(t, 7)
	if err := f.Initialize(n); err != nil {
		t.Fatal(err)
	}

	radii := make([]float64, 0, n)
	for _, p := range f.Particles() {
		radii = append(radii, length(p.InitialPos))
	}
	sort.Float64s(radii)

	for _, r := range []float64{1, 2, 3, 3.5} {
		got := stat.CDF(r, stat.Empirical, radii, nil)
		want := math.Pow(r/4, 3)
		if math.Abs(got-want) > 0.015 {
			t.Errorf("fraction within r=%.1f: got %.4f, want %.4f", r, got, want)
		}
	}

	// Surface sampling would put the median near 4; volumetric puts it at 4·0.5^(1/3).
	median := stat.Quantile(0.5, stat.Empirical, radii, nil)
	if want := 4 * math.Cbrt(0.5); math.Abs(median-want) > 0.05 {
		t.Errorf("median radius = %.3f, want %.3f", median, want)
	}
}

func TestReinitializeProducesFreshSet(t *testing.T) {
	f := newTestField(t, 3)
	if err := f.Initialize(10); err != nil {
		t.Fatal(err)
	}
	first := f.Particles()

	if err := f.Initialize(10); err != nil {
		t.Fatal(err)
	}
	second := f.Particles()

	same := 0
	for i := range first {
		if first[i] == second[i] {
			same++
		}
	}
	if same == len(first) {
		t.Error("re-initialization reused the previous particle states")
	}

	if err := f.Initialize(25); err != nil {
		t.Fatal(err)
	}
	frame := f.Advance(0, 1.0/60, false, components.DefaultTint)
	if len(frame.Transforms) != 25 {
		t.Errorf("got %d transforms after resize, want 25", len(frame.Transforms))
	}
}

func TestExpansionConvergesMonotonically(t *testing.T) {
	f := newTestField(t, 1)
	if err := f.Initialize(4); err != nil {
		t.Fatal(err)
	}

	prev := f.Expansion()
	if prev != 1 {
		t.Fatalf("initial expansion = %f, want 1", prev)
	}
	for i := 0; i < 300; i++ {
		e := f.Advance(float64(i)/60, 1.0/60, true, components.DefaultTint).Expansion
		if e <= prev {
			t.Fatalf("frame %d: expansion %f did not increase from %f", i, e, prev)
		}
		if e > 6 {
			t.Fatalf("frame %d: expansion %f overshot 6", i, e)
		}
		prev = e
	}
	if prev < 5.99 {
		t.Errorf("expansion after 300 held frames = %f, want near 6", prev)
	}

	for i := 0; i < 300; i++ {
		e := f.Advance(float64(300+i)/60, 1.0/60, false, components.DefaultTint).Expansion
		if e >= prev {
			t.Fatalf("release frame %d: expansion %f did not decrease from %f", i, e, prev)
		}
		if e < 1 {
			t.Fatalf("release frame %d: expansion %f undershot 1", i, e)
		}
		prev = e
	}
	if prev > 1.01 {
		t.Errorf("expansion after 300 released frames = %f, want near 1", prev)
	}
}

func TestExpansionToggledEveryFrame(t *testing.T) {
	exp := NewExpansion(1, 6, 0.03)
	for i := 0; i < 2000; i++ {
		intent := i%2 == 0
		prev := exp.Value()
		gap := math.Abs(float64(exp.Target(intent) - prev))

		e := exp.Step(intent)
		if e < 1 || e > 6 {
			t.Fatalf("step %d: expansion %f left [1, 6]", i, e)
		}
		if jump := math.Abs(float64(e - prev)); jump > 0.03*gap+1e-5 {
			t.Fatalf("step %d: jump %f exceeds 3%% of gap %f", i, jump, gap)
		}
	}
}

func TestExpansionReset(t *testing.T) {
	exp := NewExpansion(1, 6, 0.03)
	for i := 0; i < 50; i++ {
		exp.Step(true)
	}
	if exp.Progress() <= 0 {
		t.Errorf("progress = %f after holding, want positive", exp.Progress())
	}
	exp.Reset()
	if exp.Value() != 1 || exp.Progress() != 0 {
		t.Errorf("after Reset value=%f progress=%f", exp.Value(), exp.Progress())
	}
}

func TestSettlesWhenReleased(t *testing.T) {
	f := newTestField(t, 1)
	states := []components.Particle{
		{InitialPos: components.Vec3{X: 1}, Scale: 1, Phase: 0},
		{InitialPos: components.Vec3{Y: 1}, Scale: 1, Phase: math.Pi / 2},
		{InitialPos: components.Vec3{Z: 1}, Scale: 1, Phase: math.Pi},
	}
	if err := f.InitializeWith(states); err != nil {
		t.Fatal(err)
	}

	const fps = 60
	settledAt := -1.0
	for i := 0; i <= 10*fps; i++ {
		e := f.Advance(float64(i)/fps, 1.0/fps, false, components.DefaultTint).Expansion
		if math.Abs(float64(e)-1) > 0.01 {
			settledAt = -1
		} else if settledAt < 0 {
			settledAt = float64(i) / fps
		}
	}
	if settledAt < 0 || settledAt > 5 {
		t.Errorf("expansion settled at t=%.2f, want well before t=10", settledAt)
	}

	// Released after a full dispersal: the gap decays as 0.97^k.
	for i := 0; i < 400; i++ {
		f.Advance(0, 1.0/fps, true, components.DefaultTint)
	}
	for k := 1; k <= 300; k++ {
		e := f.Advance(0, 1.0/fps, false, components.DefaultTint).Expansion
		if k == 300 && math.Abs(float64(e)-1) > 0.01 {
			t.Errorf("expansion %f not settled 300 frames after release", e)
		}
	}
}

func TestAdvanceIsDeterministic(t *testing.T) {
	seedField := newTestField(t, 11)
	if err := seedField.Initialize(200); err != nil {
		t.Fatal(err)
	}
	states := seedField.Particles()

	a := newTestField(t, 99)
	b := newTestField(t, 100)
	if err := a.InitializeWith(states); err != nil {
		t.Fatal(err)
	}
	if err := b.InitializeWith(states); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 30; i++ {
		elapsed := float64(i) * 0.37
		intent := i%4 < 2
		fa := a.Advance(elapsed, 1.0/60, intent, components.DefaultTint)
		fb := b.Advance(elapsed, 1.0/60, intent, components.DefaultTint)

		if fa.Expansion != fb.Expansion {
			t.Fatalf("frame %d: expansion %f != %f", i, fa.Expansion, fb.Expansion)
		}
		for j := range fa.Transforms {
			if fa.Transforms[j] != fb.Transforms[j] {
				t.Fatalf("frame %d particle %d: %+v != %+v", i, j, fa.Transforms[j], fb.Transforms[j])
			}
		}
	}

	cfg := testFieldConfig(t)
	p := states[0]
	if ComputeTransform(&p, 3.2, 12.5, &cfg) != ComputeTransform(&p, 3.2, 12.5, &cfg) {
		t.Error("ComputeTransform is not repeatable")
	}
}

func TestComputeTransform(t *testing.T) {
	cfg := testFieldConfig(t)
	p := components.Particle{
		InitialPos: components.Vec3{X: 1, Y: 2, Z: 3},
		RotSpeed:   0.004,
		Scale:      0.8,
		Phase:      0,
	}

	tests := []struct {
		name      string
		e         float32
		t         float64
		wantPos   components.Vec3
		wantRot   float64
		wantScale float64
	}{
		{
			name:      "rest at t=0",
			e:         1,
			t:         0,
			wantPos:   components.Vec3{X: 1, Y: 2.5, Z: 3},
			wantRot:   0,
			wantScale: 0.8,
		},
		{
			name:      "fully dispersed at t=0",
			e:         6,
			t:         0,
			wantPos:   components.Vec3{X: 6, Y: 15, Z: 18},
			wantRot:   0,
			wantScale: 0.8 * 1.5,
		},
		{
			name: "half dispersed at t=π",
			e:    3.5,
			t:    math.Pi,
			wantPos: components.Vec3{
				X: float32((1 + 0.5*math.Sin(0.5*math.Pi)) * 3.5),
				Y: float32((2 + 0.5*math.Cos(0.3*math.Pi)) * 3.5),
				Z: float32((3 + 0.5*math.Sin(0.4*math.Pi)) * 3.5),
			},
			wantRot:   math.Pi * 0.004,
			wantScale: 0.8 * (1 + 0.1*math.Sin(2*math.Pi)) * 1.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTransform(&p, tt.e, tt.t, &cfg)

			for _, c := range [][2]float32{
				{got.Position.X, tt.wantPos.X},
				{got.Position.Y, tt.wantPos.Y},
				{got.Position.Z, tt.wantPos.Z},
			} {
				if math.Abs(float64(c[0]-c[1])) > 1e-4 {
					t.Errorf("position %+v, want %+v", got.Position, tt.wantPos)
					break
				}
			}
			if math.Abs(float64(got.Rotation.X)-tt.wantRot) > 1e-6 || got.Rotation.X != got.Rotation.Y {
				t.Errorf("rotation %+v, want X=Y=%f", got.Rotation, tt.wantRot)
			}
			if got.Rotation.Z != 0 {
				t.Errorf("rotation Z = %f, want 0", got.Rotation.Z)
			}
			if math.Abs(float64(got.Scale)-tt.wantScale) > 1e-5 {
				t.Errorf("scale %f, want %f", got.Scale, tt.wantScale)
			}
		})
	}
}

func TestShapeSwapKeepsParticleState(t *testing.T) {
	cache := sprite.NewCache(sprite.DefaultParams())
	cfg := testFieldConfig(t)
	f := NewParticleField(cfg, cache, rand.New(rand.NewSource(5)))
	if err := f.Initialize(50); err != nil {
		t.Fatal(err)
	}
	f.SetShape(sprite.Circle)

	before := f.Particles()
	frame := f.Advance(1, 1.0/60, true, components.DefaultTint)
	if frame.Mask != cache.Get(sprite.Circle) || frame.Shape != sprite.Circle {
		t.Fatal("frame does not carry the circle mask")
	}
	posBefore := append([]components.InstanceTransform(nil), frame.Transforms...)

	f.SetShape(sprite.Star)
	after := f.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d changed on shape swap", i)
		}
	}

	frame = f.Advance(1, 1.0/60, true, components.DefaultTint)
	if frame.Mask != cache.Get(sprite.Star) || frame.Shape != sprite.Star {
		t.Error("next frame does not carry the star mask")
	}
	if frame.Mask.Equal(cache.Get(sprite.Circle)) {
		t.Error("star mask matches circle mask")
	}
	for i := range posBefore {
		if frame.Transforms[i].Rotation != posBefore[i].Rotation {
			t.Fatalf("particle %d rotation changed across shape swap", i)
		}
	}
}

func TestAdvanceReusesBatch(t *testing.T) {
	f := newTestField(t, 2)
	if err := f.Initialize(16); err != nil {
		t.Fatal(err)
	}
	a := f.Advance(0, 1.0/60, false, components.DefaultTint)
	b := f.Advance(1, 1.0/60, false, components.DefaultTint)
	if &a.Transforms[0] != &b.Transforms[0] {
		t.Error("expected the transform batch to be overwritten in place")
	}

	tint := components.Tint{R: 255, G: 0, B: 128, A: 153}
	if got := f.Advance(2, 1.0/60, false, tint).Tint; got != tint {
		t.Errorf("frame tint = %+v, want %+v", got, tint)
	}
}

func TestAdvanceBeforeInitialize(t *testing.T) {
	f := newTestField(t, 1)
	frame := f.Advance(0, 1.0/60, true, components.DefaultTint)
	if len(frame.Transforms) != 0 {
		t.Errorf("got %d transforms from an empty field", len(frame.Transforms))
	}
	if frame.Expansion <= 1 {
		t.Errorf("expansion should still step, got %f", frame.Expansion)
	}
}

func TestResizeCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		grow  bool
		want  int
	}{
		{"grow default", 1500, true, 3000},
		{"shrink default", 1500, false, 750},
		{"grow capped", 20000, true, MaxResizeCount},
		{"grow at cap", MaxResizeCount, true, MaxResizeCount},
		{"grow above cap", 30000, true, 30000},
		{"shrink floored", 80, false, MinResizeCount},
		{"shrink at floor", MinResizeCount, false, MinResizeCount},
		{"shrink below floor", 10, false, 10},
		{"grow below floor", 10, true, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResizeCount(tt.count, tt.grow); got != tt.want {
				t.Errorf("ResizeCount(%d, %v) = %d, want %d", tt.count, tt.grow, got, tt.want)
			}
		})
	}
}

func TestResizeReinitialize(t *testing.T) {
	f := newTestField(t, 3)
	if err := f.Initialize(100); err != nil {
		t.Fatal(err)
	}
	next := ResizeCount(f.Count(), true)
	if err := f.Initialize(next); err != nil {
		t.Fatal(err)
	}
	frame := f.Advance(0.5, 1.0/60, false, components.DefaultTint)
	if f.Count() != 200 || len(frame.Transforms) != 200 {
		t.Errorf("count = %d, transforms = %d, want 200", f.Count(), len(frame.Transforms))
	}
}
