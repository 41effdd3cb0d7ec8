// Package config provides configuration loading and access for the swarm.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/ethereal/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all swarm configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Sprite    SpriteConfig    `yaml:"sprite"`
	Render    RenderConfig    `yaml:"render"`
	Scene     SceneConfig     `yaml:"scene"`
	Stars     StarsConfig     `yaml:"stars"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	MSAA      bool   `yaml:"msaa"`
}

// FieldConfig holds particle field parameters.
// Field count changes require a full re-initialization of the field.
type FieldConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"` // Radius of the initial ball

	// Expansion smoothing
	Compact       float64 `yaml:"compact"`        // Target when released
	Dispersed     float64 `yaml:"dispersed"`      // Target while held
	ExpansionRate float64 `yaml:"expansion_rate"` // Fraction of remaining gap closed per frame

	// Per-particle sampling ranges
	RotationSpeedMax float64 `yaml:"rotation_speed_max"` // |rotSpeed| bound
	VelocityMax      float64 `yaml:"velocity_max"`       // |velocity| bound per axis (reserved)
	ScaleMin         float64 `yaml:"scale_min"`
	ScaleMax         float64 `yaml:"scale_max"`

	// Breathing motion
	DriftAmplitude float64    `yaml:"drift_amplitude"`
	DriftFreq      [3]float64 `yaml:"drift_freq"` // X, Y, Z angular frequencies
	PulseAmplitude float64    `yaml:"pulse_amplitude"`
	PulseFreq      float64    `yaml:"pulse_freq"`
	MaxScaleBoost  float64    `yaml:"max_scale_boost"` // Scale multiplier at full dispersion
}

// SpriteConfig holds sprite rasterization parameters.
type SpriteConfig struct {
	Resolution int     `yaml:"resolution"` // Square canvas size in pixels
	Radius     float64 `yaml:"radius"`     // Shape radius in pixels
	LineWidth  float64 `yaml:"line_width"` // Stroke width for stroked shapes
	Shape      string  `yaml:"shape"`      // Initial shape
}

// RenderConfig holds swarm draw parameters.
type RenderConfig struct {
	QuadSize   float64 `yaml:"quad_size"`
	Opacity    float64 `yaml:"opacity"`
	Tint       string  `yaml:"tint"`
	Background string  `yaml:"background"`
}

// SceneConfig holds camera and ambient motion parameters.
type SceneConfig struct {
	CameraDistance  float64 `yaml:"camera_distance"`
	Fov             float64 `yaml:"fov"`
	AutoRotateSpeed float64 `yaml:"auto_rotate_speed"` // three.js OrbitControls units (2 = 30s per orbit)
	RotateSpeed     float64 `yaml:"rotate_speed"`
	GroupSpinY      float64 `yaml:"group_spin_y"` // rad/s
	GroupSpinZ      float64 `yaml:"group_spin_z"` // rad/s
}

// StarsConfig holds background starfield parameters.
type StarsConfig struct {
	Count        int     `yaml:"count"`
	Radius       float64 `yaml:"radius"`
	Depth        float64 `yaml:"depth"`
	TwinkleSpeed float64 `yaml:"twinkle_speed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32       float32 // 1 / TargetFPS
	ScreenW32  float32
	ScreenH32  float32
	TintRGB    [3]uint8
	Background [3]uint8
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every invalid parameter joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Field.Count <= 0 {
		errs = append(errs, fmt.Errorf("field.count must be positive, got %d", c.Field.Count))
	}
	if c.Field.Radius <= 0 {
		errs = append(errs, fmt.Errorf("field.radius must be positive, got %g", c.Field.Radius))
	}
	if c.Field.Compact <= 0 || c.Field.Dispersed < c.Field.Compact {
		errs = append(errs, fmt.Errorf("field expansion range [%g, %g] is invalid", c.Field.Compact, c.Field.Dispersed))
	}
	if c.Field.ExpansionRate <= 0 || c.Field.ExpansionRate > 1 {
		errs = append(errs, fmt.Errorf("field.expansion_rate must be in (0, 1], got %g", c.Field.ExpansionRate))
	}
	if c.Field.ScaleMin > c.Field.ScaleMax {
		errs = append(errs, fmt.Errorf("field.scale_min %g exceeds scale_max %g", c.Field.ScaleMin, c.Field.ScaleMax))
	}
	if c.Sprite.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("sprite.resolution must be positive, got %d", c.Sprite.Resolution))
	}
	if c.Sprite.Radius <= 0 {
		errs = append(errs, fmt.Errorf("sprite.radius must be positive, got %g", c.Sprite.Radius))
	}
	if c.Render.QuadSize <= 0 {
		errs = append(errs, fmt.Errorf("render.quad_size must be positive, got %g", c.Render.QuadSize))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if _, err := ParseHex(c.Render.Tint); err != nil {
		errs = append(errs, fmt.Errorf("render.tint: %w", err))
	}
	if _, err := ParseHex(c.Render.Background); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseHex parses a "#rrggbb" (or "#rgb") color string into 8-bit channels.
func ParseHex(s string) ([3]uint8, error) {
	t, err := components.ParseTint(s, 1)
	if err != nil {
		return [3]uint8{}, err
	}
	return [3]uint8{t.R, t.G, t.B}, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = 1 / float32(c.Screen.TargetFPS)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	// Validate already accepted both colors
	c.Derived.TintRGB, _ = ParseHex(c.Render.Tint)
	c.Derived.Background, _ = ParseHex(c.Render.Background)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
