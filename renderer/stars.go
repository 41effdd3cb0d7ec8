package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ethereal/systems"
)

// StarRenderer draws the background starfield as white points.
type StarRenderer struct {
	field *systems.StarField
}

// NewStarRenderer creates a renderer for the given starfield.
func NewStarRenderer(field *systems.StarField) *StarRenderer {
	return &StarRenderer{field: field}
}

// Draw renders all stars at elapsed time t. Must be called inside BeginMode3D.
func (r *StarRenderer) Draw(t float64) {
	if r.field == nil {
		return
	}
	rl.BeginBlendMode(rl.BlendAdditive)
	for i := range r.field.Stars {
		st := &r.field.Stars[i]
		a := uint8(r.field.Brightness(i, t) * 255)
		rl.DrawPoint3D(rl.Vector3{X: st.Pos.X, Y: st.Pos.Y, Z: st.Pos.Z}, rl.Color{R: 255, G: 255, B: 255, A: a})
	}
	rl.EndBlendMode()
}
