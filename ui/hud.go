package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ethereal/telemetry"
)

// HUDData holds all the data needed to render the debug HUD.
type HUDData struct {
	Particles int
	Shape     string
	Expansion float32
	Progress  float32 // Expansion mapped to [0, 1]
	Held      bool
	FPS       int32
}

// HUD renders the title card and debug readouts.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// DrawTitle renders the title card in the top-left corner.
func (h *HUD) DrawTitle(title string) int32 {
	x, y := int32(32), int32(32)
	rl.DrawText(title, x, y, 40, rl.White)
	y += 46
	rl.DrawText("INTERACTIVE PARTICLE SYSTEM", x, y, 12, h.renderer.Theme.LabelColor)
	return y + 24
}

// DrawStats renders swarm readouts starting at y.
func (h *HUD) DrawStats(data HUDData, y int32) int32 {
	r := h.renderer
	x := int32(32)
	width := int32(280)

	r.DrawPanel(x-8, y-8, width+16, r.Theme.LineHeight*5+16)
	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", data.Particles))
	y = r.DrawLabelValue(x, y, "Shape", data.Shape)
	y = r.DrawLabelValue(x, y, "Expansion", fmt.Sprintf("%.3f", data.Expansion))
	y = r.DrawBar(x, y, "Dispersal", data.Progress, width)

	status := "Released"
	if data.Held {
		status = "Held"
	}
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d  %s", data.FPS, status))
	return y
}

// PerfPanel renders the frame phase timing breakdown.
type PerfPanel struct {
	renderer *Renderer
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel() *PerfPanel {
	return &PerfPanel{renderer: NewRenderer()}
}

// Draw renders the performance panel at y.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, y int32) int32 {
	r := p.renderer
	x := int32(32)
	phases := telemetry.Phases()

	r.DrawPanel(x-8, y-8, 296, r.Theme.LineHeight*int32(len(phases)+2)+16)

	rl.DrawText(fmt.Sprintf("Frame: %s  (%.0f fps)", stats.AvgTickDuration, stats.FPS), x, y, 14, rl.White)
	y += r.Theme.LineHeight + 2

	for _, name := range phases {
		pct := stats.PhasePct[name]
		color := r.Theme.ValueColor
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Yellow
		}
		rl.DrawText(fmt.Sprintf("%-10s %5.1f%%", name, pct), x, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
	return y
}

// DrawKeys renders the overlay key legend along the bottom of the screen.
func (h *HUD) DrawKeys(overlays *OverlayRegistry, screenH int32) {
	r := h.renderer
	x := int32(32)
	y := screenH - 24
	for _, desc := range overlays.All() {
		color := r.Theme.HintColor
		if overlays.IsEnabled(desc.ID) {
			color = r.Theme.Accent
		}
		label := fmt.Sprintf("[%s] %s", desc.KeyLabel, desc.Name)
		rl.DrawText(label, x, y, r.Theme.FontSize, color)
		x += rl.MeasureText(label, r.Theme.FontSize) + 16
	}
	rl.DrawText("[1-5] Shape  [-/=] Count  [F11] Fullscreen  [R] Reset view", x, y, r.Theme.FontSize, r.Theme.HintColor)
}
