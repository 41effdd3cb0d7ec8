package components

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Tint is the single color applied to every particle in a draw.
type Tint struct {
	R, G, B uint8
	A       uint8 // Draw opacity
}

// DefaultTint is cyan at 60% opacity.
var DefaultTint = Tint{R: 0, G: 255, B: 255, A: 153}

// ParseTint parses a hex color ("#rrggbb", "rrggbb" or "#rgb") and applies the given opacity in [0, 1].
func ParseTint(s string, opacity float64) (Tint, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		hex = "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Tint{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Tint{R: r, G: g, B: b, A: opacityByte(opacity)}, nil
}

// TintFromRGB builds a tint from 8-bit channels and an opacity in [0, 1].
func TintFromRGB(rgb [3]uint8, opacity float64) Tint {
	return Tint{R: rgb[0], G: rgb[1], B: rgb[2], A: opacityByte(opacity)}
}

// Hex returns the "#rrggbb" form of the tint, ignoring opacity.
func (t Tint) Hex() string {
	return colorful.Color{
		R: float64(t.R) / 255,
		G: float64(t.G) / 255,
		B: float64(t.B) / 255,
	}.Hex()
}

// WithRGB returns the tint with its color replaced and opacity kept.
func (t Tint) WithRGB(r, g, b uint8) Tint {
	t.R, t.G, t.B = r, g, b
	return t
}

func opacityByte(o float64) uint8 {
	if o <= 0 {
		return 0
	}
	if o >= 1 {
		return 255
	}
	return uint8(o*255 + 0.5)
}
