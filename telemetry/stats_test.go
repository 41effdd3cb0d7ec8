package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.0},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.0},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.0},
		{"clamped high", []float64{1, 2, 3}, 1.5, 3.0},
		{"clamped low", []float64{1, 2, 3}, -1, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	values := []float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1}
	s := Summarize(values)

	if math.Abs(s.Mean-0.55) > 0.001 {
		t.Errorf("mean = %v, want 0.55", s.Mean)
	}
	if s.Min != 0.1 || s.Max != 1.0 {
		t.Errorf("min/max = %v/%v, want 0.1/1.0", s.Min, s.Max)
	}
	if math.Abs(s.P50-0.5) > 0.001 {
		t.Errorf("p50 = %v, want 0.5", s.P50)
	}
	if s.Std <= 0 {
		t.Errorf("std = %v, want positive", s.Std)
	}
	// Input order is preserved
	if values[0] != 1.0 {
		t.Error("Summarize sorted its input in place")
	}
}

func TestSummarizeDegenerate(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("empty summary = %+v, want zero", s)
	}
	s := Summarize([]float64{4})
	if s.Mean != 4 || s.P90 != 4 || s.Std != 0 {
		t.Errorf("single-value summary = %+v", s)
	}
}
