package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ethereal/components"
	"github.com/pthm-cable/ethereal/sprite"
)

// Panel geometry.
const (
	PanelWidth    = 256
	panelMargin   = 16
	buttonHeight  = 28
	buttonGap     = 8
	pickerHeight  = 112
	hueBarReserve = 30 // raygui draws the hue bar to the right of the picker
	fullscreenH   = 32
	fullscreenGap = 10
	shapeColumns  = 2
)

// ControlsAction reports what the user changed this frame.
type ControlsAction struct {
	Shape            sprite.Shape
	ShapeChanged     bool
	Tint             components.Tint
	TintChanged      bool
	ToggleFullscreen bool
}

// ControlsPanel renders the top-right configuration panel.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	height   int32
	visible  bool
}

// NewControlsPanel creates a panel anchored to the top-right of a screen of the given width.
func NewControlsPanel(screenW int32) *ControlsPanel {
	c := &ControlsPanel{
		renderer: NewRenderer(),
		width:    PanelWidth,
		visible:  true,
	}
	c.Layout(screenW)
	return c
}

// Layout re-anchors the panel after a resize.
func (c *ControlsPanel) Layout(screenW int32) {
	c.x = screenW - c.width - panelMargin
	c.y = panelMargin
	c.height = c.contentHeight()
}

// contentHeight sums the rows drawn by Draw.
func (c *ControlsPanel) contentHeight() int32 {
	t := c.renderer.Theme
	rows := (int32(len(sprite.Shapes())) + shapeColumns - 1) / shapeColumns
	h := t.Padding
	h += t.HeaderFontSize + 8                        // header
	h += t.LineHeight                                // "Particle Shape"
	h += rows*buttonHeight + (rows-1)*buttonGap + 12 // grid
	h += t.LineHeight                                // "Theme Color"
	h += pickerHeight + 8                            // picker
	h += t.LineHeight                                // hex
	h += t.LineHeight + 4                            // hint
	return h + t.Padding
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// Bounds returns the panel rectangle, excluding the fullscreen button.
func (c *ControlsPanel) Bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: float32(c.width), Height: float32(c.height)}
}

func (c *ControlsPanel) fullscreenBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(c.x),
		Y:      float32(c.y + c.height + fullscreenGap),
		Width:  float32(c.width),
		Height: fullscreenH,
	}
}

// Contains reports whether a screen point hits the panel or its fullscreen button.
// Presses there belong to the UI and must not disperse the swarm.
func (c *ControlsPanel) Contains(x, y float32) bool {
	if !c.visible {
		return false
	}
	return inRect(c.Bounds(), x, y) || inRect(c.fullscreenBounds(), x, y)
}

func inRect(r rl.Rectangle, x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Draw renders the panel for the current shape and tint and returns any changes.
func (c *ControlsPanel) Draw(active sprite.Shape, tint components.Tint) ControlsAction {
	action := ControlsAction{Shape: active, Tint: tint}
	if !c.visible {
		return action
	}

	r := c.renderer
	t := r.Theme
	r.DrawPanel(c.x, c.y, c.width, c.height)

	x := c.x + t.Padding
	inner := c.width - t.Padding*2
	y := c.y + t.Padding

	y = r.DrawSectionHeader(x, y, "Configuration")
	y = r.DrawLabel(x, y, "Particle Shape")

	// Shape grid
	colW := (inner - buttonGap*(shapeColumns-1)) / shapeColumns
	for i, shape := range sprite.Shapes() {
		col := int32(i) % shapeColumns
		row := int32(i) / shapeColumns
		rect := rl.Rectangle{
			X:      float32(x + col*(colW+buttonGap)),
			Y:      float32(y + row*(buttonHeight+buttonGap)),
			Width:  float32(colW),
			Height: buttonHeight,
		}
		if gui.Button(rect, shape.Label()) && shape != active {
			action.Shape = shape
			action.ShapeChanged = true
		}
		if shape == action.Shape {
			rl.DrawRectangleLinesEx(rect, 2, t.Accent)
		}
	}
	rows := (int32(len(sprite.Shapes())) + shapeColumns - 1) / shapeColumns
	y += rows*buttonHeight + (rows-1)*buttonGap + 12

	// Color
	y = r.DrawLabel(x, y, "Theme Color")
	current := rl.Color{R: tint.R, G: tint.G, B: tint.B, A: 255}
	picked := gui.ColorPicker(rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(inner - hueBarReserve),
		Height: pickerHeight,
	}, "", current)
	if picked.R != current.R || picked.G != current.G || picked.B != current.B {
		action.Tint = tint.WithRGB(picked.R, picked.G, picked.B)
		action.TintChanged = true
	}
	y += pickerHeight + 8

	y = r.DrawColorSwatch(x, y, action.Tint.Hex(), rl.Color{R: action.Tint.R, G: action.Tint.G, B: action.Tint.B, A: 255})

	rl.DrawText("Click & Hold scene to disperse particles", x, y+4, 10, t.HintColor)

	if gui.Button(c.fullscreenBounds(), "Toggle Fullscreen") {
		action.ToggleFullscreen = true
	}

	return action
}
