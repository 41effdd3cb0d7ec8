package telemetry

import (
	"math"

	"github.com/pthm-cable/ethereal/components"
)

// Collector accumulates per-frame samples within windows and produces WindowStats.
type Collector struct {
	windowDurationSec    float64
	windowDurationFrames int32
	dt                   float32

	windowStartFrame int32

	// Per-frame samples for the current window
	expansions []float64
	frameMs    []float64
	heldFrames int

	presses      int
	shapeChanges int
	lastIntent   bool
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	framesPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if framesPerWindow < 1 {
		framesPerWindow = 1
	}
	return &Collector{
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
		dt:                   dt,
		expansions:           make([]float64, 0, framesPerWindow),
		frameMs:              make([]float64, 0, framesPerWindow),
	}
}

// RecordFrame records one advanced frame.
// frameSec is the measured frame duration; pass 0 when no wall clock applies.
func (c *Collector) RecordFrame(expansion float32, intent bool, frameSec float64) {
	c.expansions = append(c.expansions, float64(expansion))
	if frameSec > 0 {
		c.frameMs = append(c.frameMs, frameSec*1000)
	}
	if intent {
		c.heldFrames++
		if !c.lastIntent {
			c.presses++
		}
	}
	c.lastIntent = intent
}

// RecordShapeChange records a sprite shape switch.
func (c *Collector) RecordShapeChange() {
	c.shapeChanges++
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int32) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats from the frame state at window end and resets the window.
func (c *Collector) Flush(currentFrame int32, frame FrameState) WindowStats {
	radii := make([]float64, len(frame.Transforms))
	scales := make([]float64, len(frame.Transforms))
	for i, tr := range frame.Transforms {
		radii[i] = math.Sqrt(float64(tr.Position.LengthSq()))
		scales[i] = float64(tr.Scale)
	}

	exp := Summarize(c.expansions)
	rad := Summarize(radii)
	scl := Summarize(scales)
	ms := Summarize(c.frameMs)

	var held float64
	if n := len(c.expansions); n > 0 {
		held = float64(c.heldFrames) / float64(n)
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		SimTimeSec:       float64(currentFrame) * float64(c.dt),

		Particles: len(frame.Transforms),
		Shape:     frame.Shape,
		Tint:      frame.Tint.Hex(),

		Presses:      c.presses,
		ShapeChanges: c.shapeChanges,
		HeldFrac:     held,

		ExpansionMean: exp.Mean,
		ExpansionMin:  exp.Min,
		ExpansionMax:  exp.Max,
		ExpansionEnd:  float64(frame.Expansion),

		RadiusMean: rad.Mean,
		RadiusP10:  rad.P10,
		RadiusP50:  rad.P50,
		RadiusP90:  rad.P90,

		ScaleMean: scl.Mean,
		ScaleStd:  scl.Std,

		FrameMsMean: ms.Mean,
		FrameMsP50:  ms.P50,
		FrameMsP95:  ms.P95,
	}

	c.windowStartFrame = currentFrame
	c.expansions = c.expansions[:0]
	c.frameMs = c.frameMs[:0]
	c.heldFrames = 0
	c.presses = 0
	c.shapeChanges = 0

	return stats
}

// FrameState is the swarm state sampled at window end.
type FrameState struct {
	Transforms []components.InstanceTransform
	Expansion  float32
	Shape      string
	Tint       components.Tint
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() int32 {
	return c.windowDurationFrames
}
