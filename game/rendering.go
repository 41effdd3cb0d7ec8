package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ethereal/telemetry"
	"github.com/pthm-cable/ethereal/ui"
)

// Draw renders the frame produced by the last Update.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	g.perfCollector.StartPhase(telemetry.PhaseInstances)
	g.swarm.Prepare(g.frame, rl.Vector3{X: 0, Y: g.groupY, Z: g.groupZ})

	g.perfCollector.StartPhase(telemetry.PhaseDraw)
	rl.BeginDrawing()
	g.background.Draw()

	rl.BeginMode3D(g.camera3D())
	if g.overlays.IsEnabled(ui.OverlayStars) {
		g.starRenderer.Draw(g.elapsed)
	}
	g.swarm.Draw()
	rl.EndMode3D()

	g.perfCollector.StartPhase(telemetry.PhaseUI)
	g.drawInterface()
	rl.EndDrawing()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// drawInterface renders the panels and applies any changes made through them.
func (g *Game) drawInterface() {
	y := int32(32)
	if g.overlays.IsEnabled(ui.OverlayTitle) {
		y = g.hud.DrawTitle(g.cfg.Screen.Title)
	}

	switch {
	case g.overlays.IsEnabled(ui.OverlayStats):
		g.hud.DrawStats(ui.HUDData{
			Particles: g.field.Count(),
			Shape:     g.field.Shape().Label(),
			Expansion: g.frame.Expansion,
			Progress:  g.field.ExpansionProgress(),
			Held:      g.pointer.Held(),
			FPS:       rl.GetFPS(),
		}, y+8)
	case g.overlays.IsEnabled(ui.OverlayPerf):
		g.perfPanel.Draw(g.perfCollector.Stats(), y+8)
	}

	if g.overlays.IsEnabled(ui.OverlayKeys) {
		g.hud.DrawKeys(g.overlays, int32(g.screenHeight))
	}

	action := g.controls.Draw(g.field.Shape(), g.Tint())
	if action.ShapeChanged {
		g.SetShape(action.Shape)
	}
	if action.TintChanged {
		g.SetTint(action.Tint)
	}
	if action.ToggleFullscreen {
		g.toggleFullscreen()
	}
}

// camera3D converts the orbit camera into a raylib camera looking at the origin.
func (g *Game) camera3D() rl.Camera3D {
	x, y, z := g.camera.Position()
	return rl.Camera3D{
		Position:   rl.Vector3{X: x, Y: y, Z: z},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       g.camera.Fovy,
		Projection: rl.CameraPerspective,
	}
}
