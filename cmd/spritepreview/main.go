// Sprite preview tool - interactive view of the procedural particle masks.
//
// Usage: go run ./cmd/spritepreview
//
//	go run ./cmd/spritepreview -out ./masks   (write one PNG per shape and exit)
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ethereal/sprite"
)

const (
	windowWidth  = 1000
	windowHeight = 620
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	outDir := flag.String("out", "", "Write a PNG per shape to this directory and exit")
	resolution := flag.Int("resolution", sprite.DefaultResolution, "Canvas size in pixels")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	params := sprite.DefaultParams()
	params.Resolution = *resolution

	if *outDir != "" {
		if err := writeAll(*outDir, params); err != nil {
			slog.Error("failed to write masks", "error", err)
			os.Exit(1)
		}
		return
	}

	rl.InitWindow(windowWidth, windowHeight, "Sprite Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	shape := sprite.Snowflake
	var mask *sprite.Mask
	var texture rl.Texture2D
	hasTexture := false
	defer func() {
		if hasTexture {
			rl.UnloadTexture(texture)
		}
	}()

	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			mask = sprite.GenerateWith(shape, params)
			if hasTexture {
				rl.UnloadTexture(texture)
				hasTexture = false
			}
			if mask.Size() > 0 {
				img := rl.NewImageFromImage(mask.NRGBA())
				texture = rl.LoadTextureFromImage(img)
				rl.UnloadImage(img)
				hasTexture = true
			}
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 5, G: 5, B: 5, A: 255})

		// Draw preview
		if hasTexture {
			size := float32(mask.Size())
			rl.DrawTexturePro(
				texture,
				rl.Rectangle{X: 0, Y: 0, Width: size, Height: size},
				rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
				rl.Vector2{X: 0, Y: 0},
				0,
				rl.Color{R: 0, G: 255, B: 255, A: 255},
			)
		}
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Draw stats
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Shape: %s  Size: %dpx  Coverage: %.1f%%", shape.Label(), mask.Size(), mask.Coverage()*100), 15, statsY, 16, rl.LightGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Sprite Parameters", int32(panelX), int32(panelY), 20, rl.LightGray)
		panelY += 35

		// Shape buttons
		for i, s := range sprite.Shapes() {
			col := float32(i % 3)
			row := float32(i / 3)
			rect := rl.Rectangle{X: panelX + col*(130), Y: panelY + row*38, Width: 120, Height: 30}
			if gui.Button(rect, s.Label()) && s != shape {
				shape = s
				needsRegen = true
			}
			if s == shape {
				rl.DrawRectangleLinesEx(rect, 2, rl.Color{R: 6, G: 182, B: 212, A: 255})
			}
		}
		panelY += 2*38 + 20

		// Resolution slider
		rl.DrawText("Resolution (canvas pixels)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRes := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"32", "512",
			float32(params.Resolution), 32, 512,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Resolution), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if int(newRes) != params.Resolution {
			// Keep the shape at the same relative size
			scale := float64(int(newRes)) / float64(params.Resolution)
			params.Resolution = int(newRes)
			params.Radius *= scale
			params.LineWidth *= scale
			needsRegen = true
		}
		panelY += 35

		// Radius slider
		rl.DrawText("Radius (shape pixels)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		maxRadius := float32(params.Resolution) / 2
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"4", fmt.Sprintf("%.0f", maxRadius),
			float32(params.Radius), 4, maxRadius,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Radius), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if newRadius != float32(params.Radius) {
			params.Radius = float64(newRadius)
			needsRegen = true
		}
		panelY += 35

		// Line width slider
		rl.DrawText("Line width (snowflake stroke)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newLine := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "16",
			float32(params.LineWidth), 1, 16,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.LineWidth), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if newLine != float32(params.LineWidth) {
			params.LineWidth = float64(newLine)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = sprite.DefaultParams()
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Save PNG") {
			path := shape.String() + ".png"
			if err := writeMask(path, mask); err != nil {
				slog.Error("failed to save mask", "error", err)
			} else {
				slog.Info("mask saved", "path", path)
			}
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.LightGray)
		panelY += 25
		yamlText := spriteYAML(shape, params)
		rl.DrawText(yamlText, int32(panelX), int32(panelY), 14, rl.Gray)

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.DarkGray)

		// Copy to clipboard on C key
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText)
		}

		rl.EndDrawing()
	}
}

func spriteYAML(shape sprite.Shape, p sprite.Params) string {
	return fmt.Sprintf(`sprite:
  resolution: %d
  radius: %.1f
  line_width: %.1f
  shape: %s`, p.Resolution, p.Radius, p.LineWidth, shape)
}

// writeAll renders every shape into dir as <shape>.png.
func writeAll(dir string, p sprite.Params) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, s := range sprite.Shapes() {
		path := filepath.Join(dir, s.String()+".png")
		m := sprite.GenerateWith(s, p)
		if err := writeMask(path, m); err != nil {
			return err
		}
		slog.Info("mask written", "shape", s.String(), "path", path, "coverage", m.Coverage())
	}
	return nil
}

func writeMask(path string, m *sprite.Mask) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := sprite.WritePNG(f, m); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
