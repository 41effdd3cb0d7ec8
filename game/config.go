package game

import "github.com/pthm-cable/ethereal/config"

// Options holds configuration for game initialization.
// Zero values fall back to the loaded config.
type Options struct {
	Config         *config.Config // nil = config.Cfg()
	Seed           int64
	Headless       bool
	Count          int     // Particle count override
	Shape          string  // Initial shape override
	Tint           string  // Initial tint override (hex)
	PulseSec       float64 // Headless hold/release period
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}
