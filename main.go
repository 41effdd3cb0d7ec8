package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gogpu/gg"

	"github.com/pthm-cable/ethereal/config"
	"github.com/pthm-cable/ethereal/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	count := flag.Int("count", 0, "Particle count (0 = use config)")
	shape := flag.String("shape", "", "Initial shape: snowflake, circle, star, heart, petal (empty = use config)")
	tint := flag.String("tint", "", "Initial tint as hex, e.g. #00ffff (empty = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	pulse := flag.Float64("pulse", 2, "Headless intent pulse: seconds held, then seconds released (0 = never held)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:         cfg,
		Seed:           rngSeed,
		Headless:       *headless,
		Count:          *count,
		Shape:          *shape,
		Tint:           *tint,
		PulseSec:       *pulse,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
	}

	if *headless {
		// Headless mode - pure CPU frames, no raylib window
		g, err := game.NewGame(opts)
		if err != nil {
			slog.Error("failed to create swarm", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_frames", *maxFrames,
			"pulse", *pulse,
		)

		for {
			g.UpdateHeadless()

			if *maxFrames > 0 && int(g.FrameCount()) >= *maxFrames {
				slog.Info("max frames reached", "frame", g.FrameCount(), "expansion", g.Frame().Expansion)
				return
			}
		}
	}

	// Graphical mode
	flags := uint32(rl.FlagWindowResizable)
	if cfg.Screen.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to create swarm", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxFrames > 0 && int(g.FrameCount()) >= *maxFrames {
			break
		}
	}
}
