package actor

import "fmt"

// TweenInfo is the timing half of a queued tween. Remaining equals Total
// until the tween first advances, which is when the start pose is captured.
type TweenInfo struct {
	Curve     Curve
	Total     float64 // seconds
	Remaining float64 // seconds, never above Total
}

type tweenEntry struct {
	target TweenState
	info   TweenInfo
}

// BeginTweening queues a tween of the given duration and curve and returns a
// handle to its target. The target starts as a copy of the previous tail
// target (or of the current state when idle), so a tween starts from where
// the previous one was heading. Edit the handle, or call the actor's
// setters, which act on the newest target, to describe the destination.
//
// The handle stays valid after the tween finishes, but editing it then has
// no effect.
func (a *Actor) BeginTweening(duration float64, curve Curve) *TweenState {
	if duration < 0 || !finite(duration) {
		panic(fmt.Sprintf("actor: invalid tween duration %v", duration))
	}
	if curve >= numCurves {
		panic(fmt.Sprintf("actor: unknown tween curve %d", curve))
	}
	e := &tweenEntry{
		target: *a.destTweenState(),
		info:   TweenInfo{Curve: curve, Total: duration, Remaining: duration},
	}
	a.tweens = append(a.tweens, e)
	if len(a.tweens) > a.maxTweens && !a.overCapacity {
		a.overCapacity = true
		warnf("actor %q has %d queued tweens (soft cap %d)", a.Name, len(a.tweens), a.maxTweens)
	}
	return &e.target
}

// Sleep holds the current destination for duration seconds. Setters called
// afterwards apply instantly once the sleep ends.
func (a *Actor) Sleep(duration float64) {
	a.BeginTweening(duration, CurveLinear)
	a.BeginTweening(0, CurveLinear)
}

// StopTweening drops every queued tween. The current state is unchanged.
func (a *Actor) StopTweening() {
	a.clearTweens()
}

// FinishTweening jumps to the final queued target and drops the queue.
// Calling it on an idle actor does nothing.
func (a *Actor) FinishTweening() {
	if len(a.tweens) == 0 {
		return
	}
	a.current = a.tweens[len(a.tweens)-1].target
	a.clearTweens()
}

// HurryTweening scales the duration and time left of every queued tween by
// factor. Factors below 1 speed animations up; 0 makes them finish on the
// next Update. Panics if factor is negative or not finite.
func (a *Actor) HurryTweening(factor float64) {
	if factor < 0 || !finite(factor) {
		panic(fmt.Sprintf("actor: invalid hurry factor %v", factor))
	}
	for _, e := range a.tweens {
		e.info.Total *= factor
		e.info.Remaining *= factor
	}
}

// TweenTimeLeft returns the seconds until every queued tween has finished.
func (a *Actor) TweenTimeLeft() float64 {
	var sum float64
	for _, e := range a.tweens {
		sum += e.info.Remaining
	}
	return sum
}

// IsTweening reports whether any tween is queued.
func (a *Actor) IsTweening() bool {
	return len(a.tweens) > 0
}

// NumTweens returns the number of queued tweens.
func (a *Actor) NumTweens() int {
	return len(a.tweens)
}

// TweenInfos returns a copy of the queued tweens' timing, head first.
func (a *Actor) TweenInfos() []TweenInfo {
	infos := make([]TweenInfo, len(a.tweens))
	for i, e := range a.tweens {
		infos[i] = e.info
	}
	return infos
}

// LatestTween returns a handle to the newest queued target.
// Panics if no tween is queued.
func (a *Actor) LatestTween() *TweenState {
	if len(a.tweens) == 0 {
		panic(fmt.Sprintf("actor: LatestTween on actor %q with no queued tweens", a.Name))
	}
	return &a.tweens[len(a.tweens)-1].target
}

// DestTweenState returns the state the actor will have once every queued
// tween finishes: the newest target, or the current state when idle.
func (a *Actor) DestTweenState() TweenState {
	return *a.destTweenState()
}

// destTweenState is what setters write. When idle it aliases current, so a
// setter on an idle actor takes effect immediately.
func (a *Actor) destTweenState() *TweenState {
	if len(a.tweens) == 0 {
		return &a.current
	}
	return &a.tweens[len(a.tweens)-1].target
}

// Update advances the effect clock and then the tween queue by dt seconds.
// A single large dt may finish several tweens; leftover time carries into
// the next one. dt == 0 advances nothing but still captures the start pose of
// a tween that has just become the head. Panics if dt is negative.
func (a *Actor) Update(dt float64) {
	if dt < 0 || !finite(dt) {
		panic(fmt.Sprintf("actor: invalid delta time %v", dt))
	}
	a.updateEffect(dt)
	a.updateTweening(dt)
}

func (a *Actor) updateTweening(dt float64) {
	// Every pass either consumes all of dt or pops the head, so the queue
	// length bounds the number of passes.
	for steps := len(a.tweens); steps > 0 && len(a.tweens) > 0; steps-- {
		head := a.tweens[0]
		if head.info.Remaining == head.info.Total {
			a.start = a.current
		}
		if dt <= 0 {
			return
		}

		step := min(head.info.Remaining, dt)
		head.info.Remaining -= step
		dt -= step

		if head.info.Remaining <= 0 {
			head.info.Remaining = 0
			a.current = head.target
			a.popTween()
			continue
		}

		p := 1 - head.info.Remaining/head.info.Total
		a.current = Lerp(a.start, head.target, head.info.Curve.Distort(p))
		return
	}

	// The loop above stops after the last pop; a new head still needs its
	// start pose before the next tick.
	if len(a.tweens) > 0 && a.tweens[0].info.Remaining == a.tweens[0].info.Total {
		a.start = a.current
	}
}

func (a *Actor) popTween() {
	copy(a.tweens, a.tweens[1:])
	a.tweens[len(a.tweens)-1] = nil
	a.tweens = a.tweens[:len(a.tweens)-1]
	if len(a.tweens) <= a.maxTweens {
		a.overCapacity = false
	}

	if a.events == nil {
		return
	}
	a.events.EmitTweenEvent(TweenEvent{
		Type:      EventTweenFinished,
		EntityID:  a.EntityID,
		Name:      a.Name,
		Remaining: len(a.tweens),
	})
	if len(a.tweens) == 0 {
		a.events.EmitTweenEvent(TweenEvent{
			Type:     EventTweensDrained,
			EntityID: a.EntityID,
			Name:     a.Name,
		})
	}
}

func (a *Actor) clearTweens() {
	for i := range a.tweens {
		a.tweens[i] = nil
	}
	a.tweens = a.tweens[:0]
	a.overCapacity = false
}
