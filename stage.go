package actor

import (
	"fmt"
	"time"
)

// Stage owns an ordered set of actors and drives them once per frame. It
// shares one SyncClock and one EventSink across its actors.
type Stage struct {
	actors []*Actor
	clock  SyncClock
	events EventSink
	debug  bool
	script *Script

	sorted    []*Actor // reused buffer for z-ordered drawing
	sortDirty bool
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// Add appends a to the stage. An actor already on another stage is moved.
// Adding an actor twice to the same stage does nothing.
func (s *Stage) Add(a *Actor) {
	if a == nil {
		panic("actor: cannot add nil actor to stage")
	}
	if a.stage == s {
		return
	}
	if a.stage != nil {
		a.stage.Remove(a)
	}
	a.stage = s
	if s.clock != nil {
		a.clock = s.clock
	}
	if s.events != nil {
		a.events = s.events
	}
	s.actors = append(s.actors, a)
	s.sortDirty = true
}

// Remove detaches a from the stage. Its tweens and effect are kept.
func (s *Stage) Remove(a *Actor) {
	for i, c := range s.actors {
		if c == a {
			copy(s.actors[i:], s.actors[i+1:])
			s.actors[len(s.actors)-1] = nil
			s.actors = s.actors[:len(s.actors)-1]
			a.stage = nil
			s.sortDirty = true
			return
		}
	}
}

// Find returns the first actor named name, or nil.
func (s *Stage) Find(name string) *Actor {
	for _, a := range s.actors {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// FindByID returns the actor with the given ID, or nil.
func (s *Stage) FindByID(id uint32) *Actor {
	for _, a := range s.actors {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Actors returns the stage's actors in insertion order. The returned slice
// MUST NOT be mutated.
func (s *Stage) Actors() []*Actor {
	return s.actors
}

// Len returns the number of actors on the stage.
func (s *Stage) Len() int {
	return len(s.actors)
}

// Broadcast plays the named command set on every actor that has one.
// Actors without it are skipped silently.
func (s *Stage) Broadcast(name string) {
	for _, a := range s.actors {
		if a.HasCommand(name) {
			a.PlayCommand(name)
		}
	}
}

// Update runs the attached script's next step, then advances every actor by
// dt seconds in insertion order.
func (s *Stage) Update(dt float64) {
	if dt < 0 || !finite(dt) {
		panic(fmt.Sprintf("actor: invalid delta time %v", dt))
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.script != nil {
		s.script.step(s, dt)
	}

	for _, a := range s.actors {
		a.Update(dt)
	}

	if s.debug {
		stats := countStats(s.actors)
		stats.updateTime = time.Since(t0)
		for _, a := range s.actors {
			debugCheckQueueDepth(a)
		}
		s.debugLog(stats)
	}
}

// Draw draws every visible actor into sink, lowest z-index first. Equal
// z-indexes draw in insertion order.
func (s *Stage) Draw(sink TransformSink) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if s.sortDirty {
		s.rebuildSorted()
	}
	drawn := 0
	for _, a := range s.sorted {
		if a.Hidden {
			continue
		}
		a.Draw(sink)
		drawn++
	}
	if s.debug {
		s.debugLogDraw(time.Since(t0), drawn)
	}
}

// rebuildSorted rebuilds the z-ordered draw list with a stable insertion
// sort. Zero allocations once the buffer has grown, and O(n) when the order
// is unchanged.
func (s *Stage) rebuildSorted() {
	n := len(s.actors)
	if cap(s.sorted) < n {
		s.sorted = make([]*Actor, n)
	}
	s.sorted = s.sorted[:n]
	copy(s.sorted, s.actors)
	for i := 1; i < n; i++ {
		key := s.sorted[i]
		j := i - 1
		for j >= 0 && s.sorted[j].zIndex > key.zIndex {
			s.sorted[j+1] = s.sorted[j]
			j--
		}
		s.sorted[j+1] = key
	}
	s.sortDirty = false
}

// SetSyncClock sets the clock shared by every actor on the stage, including
// actors added later.
func (s *Stage) SetSyncClock(c SyncClock) {
	s.clock = c
	for _, a := range s.actors {
		a.clock = c
	}
}

// SyncClock returns the stage's clock, or nil.
func (s *Stage) SyncClock() SyncClock {
	return s.clock
}

// SetEventSink sets where tween notifications from every actor on the stage
// are sent, including actors added later.
func (s *Stage) SetEventSink(sink EventSink) {
	s.events = sink
	for _, a := range s.actors {
		a.events = sink
	}
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame counts
// and timing are logged and runaway tween queues are reported.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (s *Stage) DebugMode() bool {
	return s.debug
}
