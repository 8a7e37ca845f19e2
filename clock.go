package actor

import (
	"fmt"

	"github.com/gopxl/beep"
)

// ClockSource selects what drives an actor's effect clock.
type ClockSource uint8

const (
	ClockTimer        ClockSource = iota // integrate Update's dt (default)
	ClockMusicSeconds                    // SyncClock.Seconds
	ClockMusicBeat                       // SyncClock.Beat; periods are in beats
	numClockSources
)

var clockSourceNames = [numClockSources]string{
	ClockTimer:        "timer",
	ClockMusicSeconds: "music",
	ClockMusicBeat:    "beat",
}

// String returns the clock source's command name.
func (c ClockSource) String() string {
	if c < numClockSources {
		return clockSourceNames[c]
	}
	return fmt.Sprintf("ClockSource(%d)", c)
}

// ParseClockSource looks up a clock source by its command name.
func ParseClockSource(name string) (ClockSource, bool) {
	for i, n := range clockSourceNames {
		if n == name {
			return ClockSource(i), true
		}
	}
	return 0, false
}

// SyncClock is an external clock effects can lock to, usually the position
// of the playing song.
type SyncClock interface {
	Seconds() float64
	Beat() float64
}

// ManualClock is a SyncClock whose values are set by the caller, for games
// that already track song position themselves.
type ManualClock struct {
	Sec   float64
	Beats float64
}

// Seconds implements SyncClock.
func (c *ManualClock) Seconds() float64 { return c.Sec }

// Beat implements SyncClock.
func (c *ManualClock) Beat() float64 { return c.Beats }

// BeatClock derives song time and beat from the playback position of a beep
// stream. When the stream is playing through beep's speaker, read it between
// speaker.Lock and speaker.Unlock, or drive the Stage from the same lock.
type BeatClock struct {
	Stream beep.StreamSeeker
	Rate   beep.SampleRate
	BPM    float64
	Offset float64 // seconds of audio before beat 0
}

// NewBeatClock creates a BeatClock for a decoded stream.
func NewBeatClock(stream beep.StreamSeeker, format beep.Format, bpm float64) *BeatClock {
	return &BeatClock{Stream: stream, Rate: format.SampleRate, BPM: bpm}
}

// Seconds implements SyncClock.
func (c *BeatClock) Seconds() float64 {
	return c.Rate.D(c.Stream.Position()).Seconds() - c.Offset
}

// Beat implements SyncClock.
func (c *BeatClock) Beat() float64 {
	return c.Seconds() * c.BPM / 60
}
