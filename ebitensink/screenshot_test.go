package ebitensink

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/actor"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"logo-in", "logo-in"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{
		64, 32, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}, 3, 1)
	want := []byte{
		127, 63, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestGameScreenshotQueueAndScript(t *testing.T) {
	sc, err := actor.LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "first"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	stage := actor.NewStage()
	g := NewGame(stage, RunConfig{Script: sc})
	g.Screenshot("manual")

	stage.Update(0.016)
	if len(g.screenshotQueue) != 2 || g.screenshotQueue[0] != "manual" || g.screenshotQueue[1] != "first" {
		t.Errorf("queue = %v", g.screenshotQueue)
	}
}

func TestSaveScreenshotsWritesOnePerLabel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	saveScreenshots(dir, "20260101_000000", []string{"a b", "c"}, img)

	for _, name := range []string{"20260101_000000_a_b.png", "20260101_000000_c.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestSaveScreenshotsErrorsAreWarnings(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	var buf bytes.Buffer
	prev := actor.SetWarningOutput(&buf)
	t.Cleanup(func() { actor.SetWarningOutput(prev) })

	saveScreenshots(filepath.Join(file, "shots"), "stamp", []string{"x"}, img)
	if !strings.Contains(buf.String(), "[actor] warning: screenshot: mkdir") {
		t.Errorf("warnings = %q", buf.String())
	}

	buf.Reset()
	actor.SetWarningOutput(nil)
	saveScreenshots(filepath.Join(file, "shots"), "stamp", []string{"x"}, img)
	if buf.Len() != 0 {
		t.Errorf("muted output = %q", buf.String())
	}
}
