package remote

import (
	"io"
	"testing"

	"github.com/phanxgames/actor"
)

type fakeMessage struct {
	topic   string
	payload []byte
	acked   bool
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              { m.acked = true }

func msg(payload string) *fakeMessage {
	return &fakeMessage{topic: "actors/commands", payload: []byte(payload)}
}

func muteWarnings(t *testing.T) {
	t.Helper()
	prev := actor.SetWarningOutput(io.Discard)
	t.Cleanup(func() { actor.SetWarningOutput(prev) })
}

func TestParseMessage(t *testing.T) {
	m, err := ParseMessage(" logo : x,100;linear,1;y,50")
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if m.Target != "logo" {
		t.Errorf("Target = %q, want logo", m.Target)
	}
	if len(m.Commands) != 3 || m.Commands[1].Op != actor.OpLinear {
		t.Errorf("Commands = %v", m.Commands)
	}
}

func TestParseMessageNoTarget(t *testing.T) {
	for _, p := range []string{"x,100", ":x,100", ""} {
		if _, err := ParseMessage(p); err == nil {
			t.Errorf("ParseMessage(%q) = nil error", p)
		}
	}
}

func TestListenerQueuesUntilApply(t *testing.T) {
	stage := actor.NewStage()
	logo := actor.New("logo")
	stage.Add(logo)

	l := NewListener(nil, "actors/commands", 4)
	l.handle(nil, msg("logo:x,42"))

	if logo.X() != 0 {
		t.Fatal("commands ran before Apply")
	}
	if n := l.Apply(stage); n != 1 {
		t.Errorf("Apply = %d, want 1", n)
	}
	if logo.X() != 42 {
		t.Errorf("X = %v, want 42", logo.X())
	}
	if n := l.Apply(stage); n != 0 {
		t.Errorf("second Apply = %d, want 0", n)
	}
}

func TestListenerBroadcast(t *testing.T) {
	stage := actor.NewStage()
	a, b := actor.New("a"), actor.New("b")
	stage.Add(a)
	stage.Add(b)

	l := NewListener(nil, "t", 4)
	l.handle(nil, msg("*:hidden,1"))
	l.Apply(stage)

	if !a.Hidden || !b.Hidden {
		t.Error("broadcast did not reach every actor")
	}
}

func TestListenerUnknownActorSkipped(t *testing.T) {
	stage := actor.NewStage()
	l := NewListener(nil, "t", 4)
	l.handle(nil, msg("ghost:x,1"))
	if n := l.Apply(stage); n != 0 {
		t.Errorf("Apply = %d, want 0", n)
	}
}

func TestListenerDropsWhenFull(t *testing.T) {
	l := NewListener(nil, "t", 2)
	for range 5 {
		l.handle(nil, msg("a:x,1"))
	}
	if got := l.Dropped(); got != 3 {
		t.Errorf("Dropped = %d, want 3", got)
	}
}

func TestListenerBadCommandsKeepGoodOnes(t *testing.T) {
	muteWarnings(t)
	stage := actor.NewStage()
	a := actor.New("a")
	stage.Add(a)

	l := NewListener(nil, "t", 4)
	l.handle(nil, msg("a:bogus,1;y,7"))
	l.Apply(stage)
	if a.Y() != 7 {
		t.Errorf("Y = %v, want 7", a.Y())
	}
}
