package actor

import (
	"fmt"
	"io"
	"os"
	"time"
)

// logOutput receives warnings and debug stats. Nil mutes both.
var logOutput io.Writer = os.Stderr

// SetWarningOutput redirects warnings and debug stats to w and returns the
// previous writer. Pass nil to mute them.
func SetWarningOutput(w io.Writer) io.Writer {
	prev := logOutput
	logOutput = w
	return prev
}

// Warnf writes a warning to the output set by SetWarningOutput. Backends use
// it so their errors are muted along with the engine's.
func Warnf(format string, args ...any) { warnf(format, args...) }

// warnf reports a data error that was skipped, such as a bad command token.
func warnf(format string, args ...any) {
	if logOutput == nil {
		return
	}
	_, _ = fmt.Fprintf(logOutput, "[actor] warning: "+format+"\n", args...)
}

// debugStats holds per-frame counts and timing.
// Only populated when Stage.debug is true.
type debugStats struct {
	updateTime  time.Duration
	drawTime    time.Duration
	actorCount  int
	hiddenCount int
	tweenCount  int
	effectCount int
}

// debugLog prints update stats.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug || logOutput == nil {
		return
	}
	_, _ = fmt.Fprintf(logOutput,
		"[actor] update: %v | actors: %d (%d hidden) | tweens: %d | effects: %d\n",
		stats.updateTime, stats.actorCount, stats.hiddenCount, stats.tweenCount, stats.effectCount)
}

// debugLogDraw prints draw timing.
func (s *Stage) debugLogDraw(d time.Duration, drawn int) {
	if !s.debug || logOutput == nil {
		return
	}
	_, _ = fmt.Fprintf(logOutput, "[actor] draw: %v | drawn: %d\n", d, drawn)
}

// debugCheckQueueDepth warns when an actor's queue is far past its soft cap,
// which usually means commands are queued every frame without being drained.
const debugQueueDepthFactor = 4

func debugCheckQueueDepth(a *Actor) {
	if len(a.tweens) > a.maxTweens*debugQueueDepthFactor {
		warnf("actor %q has %d queued tweens (%dx soft cap)", a.Name, len(a.tweens), debugQueueDepthFactor)
	}
}

// countStats gathers the per-actor counts for debugLog.
func countStats(actors []*Actor) debugStats {
	var st debugStats
	st.actorCount = len(actors)
	for _, a := range actors {
		if a.Hidden {
			st.hiddenCount++
		}
		st.tweenCount += len(a.tweens)
		if a.effect.kind != EffectNone {
			st.effectCount++
		}
	}
	return st
}
