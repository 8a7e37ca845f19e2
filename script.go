package actor

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one action in a stage script.
type scriptStep struct {
	Action   string  `json:"action"`
	Actor    string  `json:"actor,omitempty"`
	Commands string  `json:"commands,omitempty"`
	Set      string  `json:"set,omitempty"`
	Label    string  `json:"label,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Seconds  float64 `json:"seconds,omitempty"`

	cmds Commands
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences commands, broadcasts and screenshots across frames, one
// step per Stage.Update, for demos and automated visual checks. Attach it
// with Stage.SetScript.
//
//	{"steps": [
//	  {"action": "run", "actor": "logo", "commands": "linear,0.5;x,100"},
//	  {"action": "wait", "seconds": 0.5},
//	  {"action": "screenshot", "label": "logo-in"},
//	  {"action": "broadcast", "set": "Off"}
//	]}
type Script struct {
	// OnScreenshot is called for "screenshot" steps. Nil skips them.
	OnScreenshot func(label string)

	steps      []scriptStep
	cursor     int
	waitFrames int
	waitSecs   float64
	done       bool
}

// LoadScript parses a JSON script. Command text is parsed up front, so a bad
// statement fails the load rather than a frame.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "run":
			if st.Actor == "" {
				return nil, fmt.Errorf("parse script: step %d: run needs an actor", i)
			}
			cmds, err := ParseCommands(st.Commands)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.cmds = cmds
		case "play":
			if st.Actor == "" || st.Set == "" {
				return nil, fmt.Errorf("parse script: step %d: play needs an actor and a set", i)
			}
		case "broadcast":
			if st.Set == "" {
				return nil, fmt.Errorf("parse script: step %d: broadcast needs a set", i)
			}
		case "wait":
			if st.Frames < 0 || st.Seconds < 0 {
				return nil, fmt.Errorf("parse script: step %d: negative wait", i)
			}
		case "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the stage. Its steps run from Update, before
// the actors advance. Nil detaches it.
func (s *Stage) SetScript(sc *Script) {
	s.script = sc
}

// Done reports whether every step has run.
func (sc *Script) Done() bool {
	return sc.done
}

// step advances the script by one frame.
func (sc *Script) step(s *Stage, dt float64) {
	if sc.done {
		return
	}
	if sc.waitFrames > 0 {
		sc.waitFrames--
		return
	}
	if sc.waitSecs > 0 {
		sc.waitSecs -= dt
		if sc.waitSecs > 0 {
			return
		}
		sc.waitSecs = 0
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := &sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "run":
		if a := s.Find(st.Actor); a != nil {
			a.RunCommands(st.cmds)
		} else {
			warnf("script: no actor %q", st.Actor)
		}
	case "play":
		if a := s.Find(st.Actor); a != nil {
			a.PlayCommand(st.Set)
		} else {
			warnf("script: no actor %q", st.Actor)
		}
	case "broadcast":
		s.Broadcast(st.Set)
	case "screenshot":
		if sc.OnScreenshot != nil {
			sc.OnScreenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			sc.waitFrames = st.Frames - 1 // this frame counts as one
		}
		sc.waitSecs = st.Seconds
	}

	if sc.cursor >= len(sc.steps) && sc.waitFrames == 0 && sc.waitSecs == 0 {
		sc.done = true
	}
}
