package actor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWarningOutputSwap(t *testing.T) {
	var buf bytes.Buffer
	prev := SetWarningOutput(&buf)
	defer SetWarningOutput(prev)

	warnf("value %d", 3)
	if got := buf.String(); got != "[actor] warning: value 3\n" {
		t.Errorf("output = %q", got)
	}

	SetWarningOutput(nil)
	warnf("muted")
	if strings.Contains(buf.String(), "muted") {
		t.Error("nil writer should mute")
	}
}

func TestDebugModeLogsStats(t *testing.T) {
	buf := captureWarnings(t)
	s := NewStage()
	s.SetDebugMode(true)

	a, b := New("a"), New("b")
	b.Hidden = true
	a.BeginTweening(1, CurveLinear)
	a.SetEffectRainbow(1)
	s.Add(a)
	s.Add(b)

	s.Update(0.016)
	s.Draw(nopSink{})

	out := buf.String()
	for _, want := range []string{
		"[actor] update:",
		"actors: 2 (1 hidden)",
		"tweens: 1",
		"effects: 1",
		"[actor] draw:",
		"drawn: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugModeOffIsQuiet(t *testing.T) {
	buf := captureWarnings(t)
	s := NewStage()
	s.Add(New("a"))
	s.Update(0.016)
	s.Draw(nopSink{})
	if buf.Len() != 0 {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDebugModeReportsRunawayQueue(t *testing.T) {
	buf := captureWarnings(t)
	s := NewStage()
	s.SetDebugMode(true)
	a := New("runaway")
	a.SetMaxQueuedTweens(2)
	s.Add(a)
	for range 9 {
		a.BeginTweening(1, CurveLinear)
	}
	buf.Reset()

	s.Update(0.016)
	if !strings.Contains(buf.String(), `actor "runaway" has 9 queued tweens (4x soft cap)`) {
		t.Errorf("output = %q", buf.String())
	}
}

// nopSink discards everything.
type nopSink struct{}

func (nopSink) PushMatrix()               {}
func (nopSink) PopMatrix()                {}
func (nopSink) Translate(x, y, z float64) {}
func (nopSink) Scale(x, y, z float64)     {}
func (nopSink) RotateX(float64)           {}
func (nopSink) RotateY(float64)           {}
func (nopSink) RotateZ(float64)           {}
func (nopSink) MultiplyMatrix(mgl64.Mat4) {}
