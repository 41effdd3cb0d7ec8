// Package ui draws the configuration panel, title overlay and debug HUD.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	HintColor     rl.Color
	Accent        rl.Color // Active selection highlight
	BarBg         rl.Color
	BarFill       rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 0, G: 0, B: 0, A: 128},
		PanelBorder:    rl.Color{R: 255, G: 255, B: 255, A: 25},
		SectionHeader:  rl.White,
		LabelColor:     rl.Color{R: 156, G: 163, B: 175, A: 255},
		ValueColor:     rl.LightGray,
		HintColor:      rl.Color{R: 107, G: 114, B: 128, A: 255},
		Accent:         rl.Color{R: 6, G: 182, B: 212, A: 255},
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 6, G: 182, B: 212, A: 255},
		Padding:        16,
		LineHeight:     18,
		LabelWidth:     90,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 18,
	}
}
