package components

import "testing"

func TestParseTint(t *testing.T) {
	tests := []struct {
		in      string
		opacity float64
		want    Tint
		wantErr bool
	}{
		{"#00ffff", 0.6, Tint{0, 255, 255, 153}, false},
		{"ff00ff", 1.0, Tint{255, 0, 255, 255}, false},
		{"#f80", 0, Tint{255, 136, 0, 0}, false},
		{"#12345", 1, Tint{}, true},
		{"not-a-color", 1, Tint{}, true},
	}

	for _, tt := range tests {
		got, err := ParseTint(tt.in, tt.opacity)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTint(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTint(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTint(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestTintHex(t *testing.T) {
	tint := Tint{R: 0, G: 255, B: 255, A: 10}
	if got := tint.Hex(); got != "#00ffff" {
		t.Errorf("Hex() = %q, want #00ffff", got)
	}

	back, err := ParseTint(tint.Hex(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if back.R != tint.R || back.G != tint.G || back.B != tint.B {
		t.Errorf("hex roundtrip changed color: %+v -> %+v", tint, back)
	}
}

func TestWithRGBKeepsOpacity(t *testing.T) {
	got := DefaultTint.WithRGB(10, 20, 30)
	if got.A != DefaultTint.A {
		t.Errorf("opacity changed: got %d, want %d", got.A, DefaultTint.A)
	}
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("color not replaced: %+v", got)
	}
}

func TestVec3(t *testing.T) {
	v := Vec3{1, 2, 3}.Add(Vec3{1, 1, 1}).Scale(2)
	if v != (Vec3{4, 6, 8}) {
		t.Errorf("got %+v", v)
	}
	if l := (Vec3{2, 3, 6}).LengthSq(); l != 49 {
		t.Errorf("LengthSq = %f, want 49", l)
	}
}
