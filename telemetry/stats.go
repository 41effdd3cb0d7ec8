// Package telemetry provides frame timing, per-window swarm statistics, and CSV output.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	// Swarm configuration at window end
	Particles int    `csv:"particles"`
	Shape     string `csv:"shape"`
	Tint      string `csv:"tint"`

	// Interaction during window
	Presses      int     `csv:"presses"`
	ShapeChanges int     `csv:"shape_changes"`
	HeldFrac     float64 `csv:"held_frac"` // Fraction of frames with expansion intent

	// Expansion factor over the window
	ExpansionMean float64 `csv:"expansion_mean"`
	ExpansionMin  float64 `csv:"expansion_min"`
	ExpansionMax  float64 `csv:"expansion_max"`
	ExpansionEnd  float64 `csv:"expansion_end"`

	// Particle distance from origin at window end
	RadiusMean float64 `csv:"radius_mean"`
	RadiusP10  float64 `csv:"radius_p10"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`

	// Instance scale at window end
	ScaleMean float64 `csv:"scale_mean"`
	ScaleStd  float64 `csv:"scale_std"`

	// Frame time in milliseconds
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP95  float64 `csv:"frame_ms_p95"`
}

// Percentile returns the p-th empirical quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	p = math.Max(0, math.Min(1, p))
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summary holds the distribution summary of one metric.
type Summary struct {
	Mean, Std     float64
	Min, Max      float64
	P10, P50, P90 float64
	P95           float64
}

// Summarize computes mean, spread, and quantiles. The input is not modified.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := Summary{
		Mean: stat.Mean(sorted, nil),
		Min:  floats.Min(sorted),
		Max:  floats.Max(sorted),
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
		P95:  Percentile(sorted, 0.95),
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartFrame)),
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("particles", s.Particles),
		slog.String("shape", s.Shape),
		slog.String("tint", s.Tint),
		slog.Int("presses", s.Presses),
		slog.Int("shape_changes", s.ShapeChanges),
		slog.Float64("held_frac", s.HeldFrac),
		slog.Float64("expansion_mean", s.ExpansionMean),
		slog.Float64("expansion_min", s.ExpansionMin),
		slog.Float64("expansion_max", s.ExpansionMax),
		slog.Float64("expansion_end", s.ExpansionEnd),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("radius_p50", s.RadiusP50),
		slog.Float64("radius_p90", s.RadiusP90),
		slog.Float64("scale_mean", s.ScaleMean),
		slog.Float64("frame_ms_mean", s.FrameMsMean),
		slog.Float64("frame_ms_p95", s.FrameMsP95),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"sim_time", s.SimTimeSec,
		"particles", s.Particles,
		"shape", s.Shape,
		"tint", s.Tint,
		"presses", s.Presses,
		"shape_changes", s.ShapeChanges,
		"held_frac", s.HeldFrac,
		"expansion_mean", s.ExpansionMean,
		"expansion_min", s.ExpansionMin,
		"expansion_max", s.ExpansionMax,
		"radius_p10", s.RadiusP10,
		"radius_p50", s.RadiusP50,
		"radius_p90", s.RadiusP90,
		"scale_mean", s.ScaleMean,
		"scale_std", s.ScaleStd,
		"frame_ms_mean", s.FrameMsMean,
		"frame_ms_p95", s.FrameMsP95,
	)
}
