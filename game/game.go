// Package game drives the swarm: input to intent, per-frame advance, draw and telemetry.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ethereal/camera"
	"github.com/pthm-cable/ethereal/components"
	"github.com/pthm-cable/ethereal/config"
	"github.com/pthm-cable/ethereal/renderer"
	"github.com/pthm-cable/ethereal/sprite"
	"github.com/pthm-cable/ethereal/systems"
	"github.com/pthm-cable/ethereal/telemetry"
	"github.com/pthm-cable/ethereal/ui"
)

// Game holds the complete scene state.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	// Swarm
	sprites *sprite.Cache
	field   *systems.ParticleField
	stars   *systems.StarField
	tint    components.Tint
	frame   systems.Frame

	// Intent sources
	pointer systems.Pointer
	pulse   systems.Pulse

	// Ambient group rotation (radians)
	groupY, groupZ float32

	// Camera
	camera    *camera.Camera
	lastMouse rl.Vector2
	touches   int32

	// Rendering (graphical mode only)
	background   *renderer.BackgroundRenderer
	swarm        *renderer.SwarmRenderer
	starRenderer *renderer.StarRenderer
	controls     *ui.ControlsPanel
	hud          *ui.HUD
	perfPanel    *ui.PerfPanel
	overlays     *ui.OverlayRegistry

	// State
	frameCount   int32
	elapsed      float64
	headless     bool
	screenWidth  float32
	screenHeight float32

	// Telemetry
	perfCollector    *telemetry.PerfCollector
	collector        *telemetry.Collector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
}

// NewGame creates a new scene. In graphical mode the raylib window must already exist.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	shape, err := sprite.ParseShape(cfg.Sprite.Shape)
	if opts.Shape != "" {
		shape, err = sprite.ParseShape(opts.Shape)
	}
	if err != nil {
		return nil, fmt.Errorf("initial shape: %w", err)
	}

	tint := components.TintFromRGB(cfg.Derived.TintRGB, cfg.Render.Opacity)
	if opts.Tint != "" {
		tint, err = components.ParseTint(opts.Tint, cfg.Render.Opacity)
		if err != nil {
			return nil, fmt.Errorf("initial tint: %w", err)
		}
	}

	count := cfg.Field.Count
	if opts.Count != 0 {
		count = opts.Count
	}

	sprites := sprite.NewCache(sprite.Params{
		Resolution: cfg.Sprite.Resolution,
		Radius:     cfg.Sprite.Radius,
		LineWidth:  cfg.Sprite.LineWidth,
	})
	field := systems.NewParticleField(cfg.Field, sprites, rng)
	if err := field.Initialize(count); err != nil {
		return nil, fmt.Errorf("initializing field: %w", err)
	}
	field.SetShape(shape)

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	g := &Game{
		cfg:      cfg,
		rng:      rng,
		seed:     opts.Seed,
		sprites:  sprites,
		field:    field,
		tint:     tint,
		pulse:    systems.Pulse{HoldSec: opts.PulseSec},
		headless: opts.Headless,

		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,

		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:        telemetry.NewCollector(statsWindow, cfg.Derived.DT32),
		bookmarkDetector: telemetry.NewBookmarkDetector(10, cfg.Field.Compact, cfg.Field.Dispersed),
		logStats:         opts.LogStats,
	}

	g.outputManager, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if !opts.Headless {
		g.initGraphics()
	}

	slog.Info("swarm initialized",
		"particles", field.Count(),
		"shape", shape.String(),
		"tint", tint.Hex(),
		"seed", opts.Seed,
		"headless", opts.Headless,
	)

	return g, nil
}

// initGraphics creates the camera, renderers and interface.
func (g *Game) initGraphics() {
	sc := g.cfg.Scene
	g.camera = camera.New(g.screenWidth, g.screenHeight, float32(sc.CameraDistance), float32(sc.Fov))
	g.camera.AutoRotateSpeed = float32(sc.AutoRotateSpeed)
	g.camera.RotateSpeed = float32(sc.RotateSpeed)

	bg := g.cfg.Derived.Background
	g.background = renderer.NewBackgroundRenderer(bg[0], bg[1], bg[2])

	g.stars = systems.NewStarField(g.cfg.Stars, g.rng)
	g.starRenderer = renderer.NewStarRenderer(g.stars)

	g.swarm = renderer.NewSwarmRenderer(float32(g.cfg.Render.QuadSize))
	g.swarm.Init()

	g.overlays = ui.NewOverlayRegistry()
	g.controls = ui.NewControlsPanel(int32(g.screenWidth))
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel()
}

// Update runs one graphical frame: input, then advance.
func (g *Game) Update() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	dt := float64(rl.GetFrameTime())
	g.perfCollector.StartPhase(telemetry.PhaseAdvance)
	g.step(dt, g.pointer.Held())

	g.camera.Update(float32(dt))
	g.collector.RecordFrame(g.frame.Expansion, g.pointer.Held(), dt)
}

// UpdateHeadless runs one frame at the fixed config timestep with scripted intent.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()

	dt := float64(g.cfg.Derived.DT32)
	intent := g.pulse.Held(g.elapsed)

	g.perfCollector.StartPhase(telemetry.PhaseAdvance)
	g.step(dt, intent)
	g.collector.RecordFrame(g.frame.Expansion, intent, 0)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// step advances the swarm and ambient rotation by one frame.
func (g *Game) step(dt float64, intent bool) {
	g.elapsed += dt
	g.frameCount++

	g.groupY += float32(dt * g.cfg.Scene.GroupSpinY)
	g.groupZ += float32(dt * g.cfg.Scene.GroupSpinZ)

	g.frame = g.field.Advance(g.elapsed, dt, intent, g.tint)
}

// Frame returns the most recent advanced frame.
func (g *Game) Frame() systems.Frame {
	return g.frame
}

// FrameCount returns the number of frames advanced so far.
func (g *Game) FrameCount() int32 {
	return g.frameCount
}

// Elapsed returns the scene time in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Field returns the particle field.
func (g *Game) Field() *systems.ParticleField {
	return g.field
}
