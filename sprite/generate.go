package sprite

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Reference rasterization parameters.
const (
	DefaultResolution = 128
	DefaultRadius     = 50.0
	DefaultLineWidth  = 4.0
)

// Params controls mask rasterization.
type Params struct {
	Resolution int     // Square canvas size
	Radius     float64 // Shape radius R in pixels
	LineWidth  float64 // Stroke width for the snowflake
}

// DefaultParams returns the reference 128 px canvas with R = 50.
func DefaultParams() Params {
	return Params{
		Resolution: DefaultResolution,
		Radius:     DefaultRadius,
		LineWidth:  DefaultLineWidth,
	}
}

// Generate rasterizes shape with the default parameters.
func Generate(shape Shape) *Mask {
	return GenerateWith(shape, DefaultParams())
}

// GenerateWith rasterizes shape into a mask. It never fails: an unknown shape or a
// rasterizer error yields a fully transparent mask.
func GenerateWith(shape Shape, p Params) *Mask {
	if p.Resolution <= 0 {
		return NewMask(0)
	}
	if !shape.Valid() {
		return NewMask(p.Resolution)
	}

	dc := gg.NewContext(p.Resolution, p.Resolution)
	defer func() {
		if err := dc.Close(); err != nil {
			slog.Warn("closing sprite context", "shape", shape.String(), "error", err)
		}
	}()

	if err := draw(dc, shape, p); err != nil {
		slog.Warn("sprite rasterization failed", "shape", shape.String(), "error", err)
		return NewMask(p.Resolution)
	}
	return maskFromImage(dc.Image(), p.Resolution)
}

func draw(dc *gg.Context, shape Shape, p Params) error {
	c := float64(p.Resolution) / 2
	r := p.Radius

	dc.SetColor(gg.White.Color())
	dc.SetLineWidth(p.LineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	switch shape {
	case Circle:
		// Gradient brushes sample device space, so the disc stays untransformed.
		return drawCircle(dc, c, c, r)
	}

	dc.Push()
	defer dc.Pop()
	dc.Translate(c, c)

	switch shape {
	case Star:
		return drawStar(dc, r)
	case Snowflake:
		return drawSnowflake(dc, r)
	case Heart:
		dc.Scale(r/DefaultRadius, r/DefaultRadius)
		return drawHeart(dc)
	case Petal:
		dc.Scale(r/DefaultRadius, r/DefaultRadius)
		return drawFlower(dc)
	}
	return nil
}

// drawCircle fills a disc whose opacity falls from full at 0.2r to zero at r.
func drawCircle(dc *gg.Context, cx, cy, r float64) error {
	glow := gg.NewRadialGradientBrush(cx, cy, r*0.2, r).
		AddColorStop(0, gg.RGBA2(1, 1, 1, 1)).
		AddColorStop(1, gg.RGBA2(1, 1, 1, 0))
	dc.SetFillBrush(glow)
	dc.DrawCircle(cx, cy, r)
	return dc.Fill()
}

func drawStar(dc *gg.Context, r float64) error {
	for k := 0; k < 5; k++ {
		outer := deg(18 + 72*float64(k))
		inner := deg(54 + 72*float64(k))
		if k == 0 {
			dc.MoveTo(math.Cos(outer)*r, math.Sin(outer)*r)
		} else {
			dc.LineTo(math.Cos(outer)*r, math.Sin(outer)*r)
		}
		dc.LineTo(math.Cos(inner)*r*0.4, math.Sin(inner)*r*0.4)
	}
	dc.ClosePath()
	return dc.Fill()
}

func drawSnowflake(dc *gg.Context, r float64) error {
	for i := 0; i < 6; i++ {
		dc.Push()
		dc.Rotate(deg(60 * float64(i)))

		dc.MoveTo(0, 0)
		dc.LineTo(0, r)
		for _, b := range [...]struct{ at, dx, dy float64 }{
			{0.5, 0.3, 0.7},
			{0.8, 0.2, 0.9},
		} {
			dc.MoveTo(0, r*b.at)
			dc.LineTo(r*b.dx, r*b.dy)
			dc.MoveTo(0, r*b.at)
			dc.LineTo(-r*b.dx, r*b.dy)
		}
		err := dc.Stroke()
		dc.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// drawHeart fills the two-lobe heart in the 50 px reference frame.
func drawHeart(dc *gg.Context) error {
	dc.MoveTo(0, -10)
	dc.CubicTo(0, -25, -50, -25, -50, 10)
	dc.CubicTo(-50, 40, 0, 60, 0, 60)
	dc.CubicTo(0, 60, 50, 40, 50, 10)
	dc.CubicTo(50, -25, 0, -25, 0, -10)
	dc.ClosePath()
	return dc.Fill()
}

// drawFlower fills three petals 120° apart in the 50 px reference frame.
func drawFlower(dc *gg.Context) error {
	for i := 0; i < 3; i++ {
		if i > 0 {
			dc.Rotate(deg(120))
		}
		dc.MoveTo(0, 0)
		dc.QuadraticTo(30, -40, 0, -60)
		dc.QuadraticTo(-30, -40, 0, 0)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func deg(d float64) float64 {
	return d * math.Pi / 180
}
