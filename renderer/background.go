package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer clears the frame to the scene's solid backdrop.
type BackgroundRenderer struct {
	color rl.Color
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{color: rl.Color{R: baseR, G: baseG, B: baseB, A: 255}}
}

// Draw clears the screen.
func (b *BackgroundRenderer) Draw() {
	rl.ClearBackground(b.color)
}
