package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/ethereal/components"
	"github.com/pthm-cable/ethereal/sprite"
)

// SetShape switches the sprite silhouette. Particle state is untouched.
func (g *Game) SetShape(shape sprite.Shape) {
	if !shape.Valid() || shape == g.field.Shape() {
		return
	}
	g.field.SetShape(shape)
	g.collector.RecordShapeChange()
	slog.Info("shape changed", "shape", shape.String(), "frame", g.frameCount)
}

// SetTint replaces the global tint.
func (g *Game) SetTint(t components.Tint) {
	g.tint = t
}

// Tint returns the current global tint.
func (g *Game) Tint() components.Tint {
	return g.tint
}

// Reinitialize replaces the swarm with a fresh set of count particles.
func (g *Game) Reinitialize(count int) error {
	if err := g.field.Initialize(count); err != nil {
		return fmt.Errorf("reinitializing field: %w", err)
	}
	slog.Info("swarm reinitialized", "particles", count, "frame", g.frameCount)
	return nil
}

// Unload frees GPU resources and closes telemetry output.
func (g *Game) Unload() {
	if g.swarm != nil {
		g.swarm.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
