package actor

import (
	"math"
	"testing"
)

// --- Color ---

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{1, 0.5, 0.25, 1}
	got := a.Lerp(b, 0.5)
	want := Color{0.5, 0.25, 0.125, 0.5}
	if got != want {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
	// No clamping: overshooting curves pass p > 1.
	over := a.Lerp(b, 1.5)
	assertNear(t, "R", over.R, 1.5)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{1, 1, 1, 1}},
		{"#ff0000", Color{1, 0, 0, 1}},
		{"#00ff0080", Color{0, 1, 0, 128.0 / 255}},
		{"#000000ff", Color{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			assertColor(t, tt.in, got, tt.want)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "#12345", "#gggggg", "#ff0000zz"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) = nil error", in)
		}
	}
}

func TestColorHexClamps(t *testing.T) {
	c := Color{R: 1.2, G: -0.1, B: 0.5, A: 2}
	if got := c.Hex(); got != "#ff0080ff" {
		t.Errorf("Hex = %q, want #ff0080ff", got)
	}
}

// --- Rect4 ---

func TestRect4Lerp(t *testing.T) {
	a := Rect4{}
	b := Rect4{Left: 1, Top: 0.5, Right: 0.2, Bottom: 0.4}
	got := a.Lerp(b, 0.5)
	want := Rect4{0.5, 0.25, 0.1, 0.2}
	if got != want {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
}

// --- GlowMode ---

func TestParseGlowMode(t *testing.T) {
	if m, ok := ParseGlowMode("Brighten"); !ok || m != GlowBrighten {
		t.Errorf("ParseGlowMode(Brighten) = %v, %v", m, ok)
	}
	if m, ok := ParseGlowMode("whiten"); !ok || m != GlowWhiten {
		t.Errorf("ParseGlowMode(whiten) = %v, %v", m, ok)
	}
	if _, ok := ParseGlowMode("glow"); ok {
		t.Error("ParseGlowMode(glow) should fail")
	}
	if GlowBrighten.String() != "brighten" {
		t.Errorf("String = %q", GlowBrighten.String())
	}
}

func assertColor(t *testing.T, name string, got, want Color) {
	t.Helper()
	if math.Abs(got.R-want.R) > 1e-6 || math.Abs(got.G-want.G) > 1e-6 ||
		math.Abs(got.B-want.B) > 1e-6 || math.Abs(got.A-want.A) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
