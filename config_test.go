package actor

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/actors.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxQueuedTweens != 16 {
		t.Errorf("MaxQueuedTweens = %d", cfg.MaxQueuedTweens)
	}
	if got := cfg.Actors["title"]; len(got) != 3 || got[0] != "TitleInit" {
		t.Errorf("title sets = %v", got)
	}
	if cfg.Remote.Topic != "actors/commands" || cfg.Remote.ClientID != "actor-terminal" {
		t.Errorf("Remote = %+v", cfg.Remote)
	}

	sets, err := cfg.CommandSets()
	if err != nil {
		t.Fatal(err)
	}
	if len(sets) != len(cfg.Commands) {
		t.Errorf("sets = %d, want %d", len(sets), len(cfg.Commands))
	}
	if _, ok := sets["titleinit"]; !ok {
		t.Error("set names should be lowercased")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("testdata/nope.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestParseConfigBadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("actors: [unterminated")); err == nil {
		t.Error("expected error")
	}
}

func TestConfigApply(t *testing.T) {
	captureWarnings(t)
	cfg, err := LoadConfig("testdata/actors.yaml")
	if err != nil {
		t.Fatal(err)
	}
	s := NewStage()
	if err := cfg.Apply(s); err != nil {
		t.Fatal(err)
	}

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	// Created in name order.
	for i, name := range []string{"beat", "menu", "title"} {
		if got := s.Actors()[i].Name; got != name {
			t.Errorf("actor %d = %q, want %q", i, got, name)
		}
	}

	title := s.Find("title")
	assertNear(t, "title X", title.X(), 40)
	assertNear(t, "title Y", title.Y(), -2)
	if !title.HasCommand("titleon") || !title.HasCommand("Off") {
		t.Error("title missing command sets")
	}
	if title.maxTweens != 16 {
		t.Errorf("maxTweens = %d", title.maxTweens)
	}

	menu := s.Find("menu")
	assertNear(t, "menu alpha", menu.DiffuseAlpha(), 0)

	beat := s.Find("beat")
	if beat.Effect() != EffectPulse || beat.EffectClock() != ClockMusicBeat {
		t.Errorf("beat effect = %v on %v", beat.Effect(), beat.EffectClock())
	}

	s.Broadcast("MenuOn")
	if !menu.IsTweening() || title.IsTweening() {
		t.Error("Broadcast should only reach actors with the set")
	}
	menu.FinishTweening()
	assertNear(t, "menu alpha after MenuOn", menu.DiffuseAlpha(), 1)
}

func TestConfigApplyExistingActor(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
commands:
  Init: "x,7"
actors:
  hero: [Init]
`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewStage()
	hero := New("hero")
	s.Add(hero)
	if err := cfg.Apply(s); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	assertNear(t, "X", hero.X(), 7)
}

func TestConfigApplyReportsDataErrors(t *testing.T) {
	buf := captureWarnings(t)
	cfg, err := ParseConfig([]byte(`
commands:
  Good: "x,1;bogus,2"
actors:
  a: [Good, Missing]
`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewStage()
	err = cfg.Apply(s)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{`unknown command "bogus"`, `unknown command set "Missing"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("err missing %q: %v", want, err)
		}
	}
	assertNear(t, "good statements still ran", s.Find("a").X(), 1)
	if !strings.Contains(buf.String(), "Missing") {
		t.Errorf("warnings = %q", buf.String())
	}
}

func TestConfigMuteWarnings(t *testing.T) {
	buf := captureWarnings(t)
	cfg := &Config{MuteWarnings: true, Debug: true}
	s := NewStage()
	if err := cfg.Apply(s); err != nil {
		t.Fatal(err)
	}
	if !s.DebugMode() {
		t.Error("debug mode not applied")
	}
	New("a").PlayCommand("nothing")
	if buf.Len() != 0 {
		t.Errorf("muted output = %q", buf.String())
	}
}

func TestConfigMuteIsProcessWideUntilRestored(t *testing.T) {
	buf := captureWarnings(t)
	if err := (&Config{MuteWarnings: true}).Apply(NewStage()); err != nil {
		t.Fatal(err)
	}
	prev := SetWarningOutput(nil)
	if prev != nil {
		t.Fatalf("output after mute = %v, want nil", prev)
	}

	other := NewStage()
	if err := (&Config{}).Apply(other); err != nil {
		t.Fatal(err)
	}
	other.Broadcast("nothing")
	New("b").PlayCommand("nothing")
	if buf.Len() != 0 {
		t.Fatalf("muted output = %q", buf.String())
	}

	SetWarningOutput(buf)
	New("c").PlayCommand("nothing")
	if !strings.Contains(buf.String(), "nothing") {
		t.Errorf("restored output = %q", buf.String())
	}
}
