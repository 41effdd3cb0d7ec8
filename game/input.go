package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ethereal/sprite"
	"github.com/pthm-cable/ethereal/systems"
	"github.com/pthm-cable/ethereal/ui"
)

// shapeKeys maps number keys to shapes in display order.
var shapeKeys = map[int32]sprite.Shape{
	rl.KeyOne:   sprite.Snowflake,
	rl.KeyTwo:   sprite.Circle,
	rl.KeyThree: sprite.Star,
	rl.KeyFour:  sprite.Heart,
	rl.KeyFive:  sprite.Petal,
}

// handleInput processes keyboard and pointer input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		g.handleKey(key)
	}

	g.handlePointer()
}

// handleKey applies a single key press.
func (g *Game) handleKey(key int32) {
	if shape, ok := shapeKeys[key]; ok {
		g.SetShape(shape)
		return
	}

	switch key {
	case rl.KeyF11:
		g.toggleFullscreen()
	case rl.KeyR:
		g.camera.Reset()
	case rl.KeyEqual, rl.KeyMinus:
		next := systems.ResizeCount(g.field.Count(), key == rl.KeyEqual)
		if next == g.field.Count() {
			return
		}
		if err := g.Reinitialize(next); err != nil {
			slog.Error("failed to resize swarm", "error", err)
		}
	default:
		if id, enabled, ok := g.overlays.HandleKeyPress(key); ok {
			if id == ui.OverlayControls {
				g.controls.SetVisible(enabled)
			}
			slog.Debug("overlay toggled", "overlay", string(id), "enabled", enabled)
		}
	}
}

// handlePointer maps mouse and touch to dispersal intent and camera drag.
func (g *Game) handlePointer() {
	mouse := rl.GetMousePosition()
	touches := rl.GetTouchPointCount()

	pressed := rl.IsMouseButtonPressed(rl.MouseButtonLeft) || (touches > 0 && g.touches == 0)
	released := rl.IsMouseButtonReleased(rl.MouseButtonLeft) || (touches == 0 && g.touches > 0)
	g.touches = touches

	if pressed {
		g.pointer.Press(g.controls.Contains(mouse.X, mouse.Y))
		g.lastMouse = mouse
	}

	// Drag rotates the orbit while the scene owns the gesture
	if g.pointer.Held() && !pressed {
		g.camera.Drag(mouse.X-g.lastMouse.X, mouse.Y-g.lastMouse.Y)
	}
	g.lastMouse = mouse

	if released {
		g.pointer.Release()
	} else if g.pointer.Held() && !rl.IsCursorOnScreen() {
		// Safety release: the button-up may never arrive once the cursor is gone
		g.pointer.Leave()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() && !rl.IsWindowFullscreen() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.controls.Layout(int32(w))
}

// toggleFullscreen switches between windowed and monitor-sized fullscreen.
func (g *Game) toggleFullscreen() {
	if !rl.IsWindowFullscreen() {
		monitor := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
	}
	rl.ToggleFullscreen()
	if !rl.IsWindowFullscreen() {
		rl.SetWindowSize(g.cfg.Screen.Width, g.cfg.Screen.Height)
	}
	slog.Info("fullscreen toggled", "fullscreen", rl.IsWindowFullscreen())
}
