package actor

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Effect selects a periodic overlay evaluated at draw time. Effects never
// change the committed state: turning one off leaves the actor exactly where
// its tweens put it.
type Effect uint8

const (
	EffectNone         Effect = iota
	EffectDiffuseBlink        // diffuse snaps between color1 and color2
	EffectDiffuseShift        // diffuse blends smoothly between color1 and color2
	EffectGlowBlink           // glow snaps between color1 and color2
	EffectGlowShift           // glow blends smoothly between color1 and color2
	EffectRainbow             // diffuse hue cycles, alpha kept
	EffectWag                 // rotation swings by ±magnitude
	EffectSpin                // rotation turns at magnitude degrees per second, unbounded
	EffectVibrate             // position jitters by up to magnitude, rerolled every draw
	EffectBounce              // position hops by magnitude (half sine)
	EffectBob                 // position swings by ±magnitude (full sine)
	EffectPulse               // scale breathes between magnitude X and magnitude Y
	numEffects
)

var effectNames = [numEffects]string{
	EffectNone:         "none",
	EffectDiffuseBlink: "diffuseblink",
	EffectDiffuseShift: "diffuseshift",
	EffectGlowBlink:    "glowblink",
	EffectGlowShift:    "glowshift",
	EffectRainbow:      "rainbow",
	EffectWag:          "wag",
	EffectSpin:         "spin",
	EffectVibrate:      "vibrate",
	EffectBounce:       "bounce",
	EffectBob:          "bob",
	EffectPulse:        "pulse",
}

// String returns the effect's command name.
func (e Effect) String() string {
	if e < numEffects {
		return effectNames[e]
	}
	return fmt.Sprintf("Effect(%d)", e)
}

type effectState struct {
	kind      Effect
	color1    Color
	color2    Color
	magnitude mgl64.Vec3
	period    float64
	delay     float64
	offset    float64
	clock     ClockSource

	secs               float64 // into the current cycle, wrapped at period+delay
	spinSecs           float64 // unwrapped, for spin
	clockMissingWarned bool
}

func (e *effectState) init() {
	*e = effectState{
		color1: ColorWhite,
		color2: ColorWhite,
		period: 1,
	}
}

func (e *effectState) cycle() float64 {
	return e.period + e.delay
}

func (e *effectState) wrap(t float64) float64 {
	c := e.cycle()
	if c <= 0 {
		return t
	}
	t = math.Mod(t, c)
	if t < 0 {
		t += c
	}
	return t
}

// progress returns how far through the visible part of the cycle the effect
// is, in [0, 1]. The delay portion of each cycle reads as 0.
func (e *effectState) progress() float64 {
	t := e.wrap(e.secs + e.offset)
	return clamp01((t - e.delay) / e.period)
}

func (a *Actor) updateEffect(dt float64) {
	e := &a.effect
	if e.kind == EffectNone {
		return
	}
	switch e.clock {
	case ClockTimer:
		e.secs += dt
		e.spinSecs += dt
	case ClockMusicSeconds, ClockMusicBeat:
		if a.clock == nil {
			if !e.clockMissingWarned {
				e.clockMissingWarned = true
				warnf("actor %q uses effect clock %q but has no sync clock; using the timer", a.Name, e.clock)
			}
			e.secs += dt
			e.spinSecs += dt
			break
		}
		v := a.clock.Seconds()
		if e.clock == ClockMusicBeat {
			v = a.clock.Beat()
		}
		e.secs = v
		e.spinSecs = v
	default:
		panic(fmt.Sprintf("actor: unknown effect clock %d", e.clock))
	}
	e.secs = e.wrap(e.secs)
}

// applyEffect overlays the active effect onto s, a scratch copy of the
// current state.
func (a *Actor) applyEffect(s *TweenState) {
	e := &a.effect
	if e.kind == EffectNone {
		return
	}
	p := e.progress()

	switch e.kind {
	case EffectDiffuseBlink:
		c := e.color2
		if p > 0.5 {
			c = e.color1
		}
		s.SetDiffuse(c)
	case EffectDiffuseShift:
		s.SetDiffuse(e.color2.Lerp(e.color1, shiftBlend(p)))
	case EffectGlowBlink:
		c := e.color2
		if p > 0.5 {
			c = e.color1
		}
		s.Glow = c
		s.Glow.A *= s.Diffuse[TopLeft].A
	case EffectGlowShift:
		s.Glow = e.color2.Lerp(e.color1, shiftBlend(p))
		s.Glow.A *= s.Diffuse[TopLeft].A
	case EffectRainbow:
		angle := p * 2 * math.Pi
		c := Color{
			R: math.Cos(angle)*0.5 + 0.5,
			G: math.Cos(angle+math.Pi*2/3)*0.5 + 0.5,
			B: math.Cos(angle+math.Pi*4/3)*0.5 + 0.5,
			A: s.Diffuse[TopLeft].A,
		}
		s.SetDiffuse(c)
	case EffectWag:
		s.Rotation = s.Rotation.Add(e.magnitude.Mul(math.Sin(p * 2 * math.Pi)))
	case EffectSpin:
		for i := range s.Rotation {
			s.Rotation[i] += math.Mod(e.magnitude[i]*e.spinSecs, 360)
		}
	case EffectVibrate:
		zoom := s.Zoom()
		for i := range s.Pos {
			s.Pos[i] += (rand.Float64()*2 - 1) * e.magnitude[i] * zoom
		}
	case EffectBounce:
		s.Pos = s.Pos.Add(e.magnitude.Mul(math.Sin(p * math.Pi)))
	case EffectBob:
		s.Pos = s.Pos.Add(e.magnitude.Mul(math.Sin(p * 2 * math.Pi)))
	case EffectPulse:
		minZoom, maxZoom := e.magnitude[0], e.magnitude[1]
		s.Scale = s.Scale.Mul(minZoom + (maxZoom-minZoom)*math.Sin(p*math.Pi))
	default:
		panic(fmt.Sprintf("actor: unknown effect %d", e.kind))
	}
}

// shiftBlend is the weight of color1 in the shift effects: 1 at the start of
// the cycle, 0 halfway through.
func shiftBlend(p float64) float64 {
	return math.Sin((p+0.25)*2*math.Pi)/2 + 0.5
}

// --- Effect setters ---

func (a *Actor) setEffect(kind Effect) {
	if kind >= numEffects {
		panic(fmt.Sprintf("actor: unknown effect %d", kind))
	}
	if a.effect.kind != kind {
		a.effect.kind = kind
		a.effect.secs = 0
		a.effect.spinSecs = 0
	}
}

func (a *Actor) setEffectPeriodic(kind Effect, period float64) {
	checkPeriod(period)
	a.setEffect(kind)
	a.effect.period = period
}

func checkPeriod(period float64) {
	if !(period > 0) || math.IsInf(period, 1) {
		panic(fmt.Sprintf("actor: effect period must be positive and finite, got %v", period))
	}
}

// SetEffectNone turns the effect off. The committed state is untouched.
func (a *Actor) SetEffectNone() {
	a.setEffect(EffectNone)
}

// SetEffectDiffuseBlink alternates the diffuse between c1 and c2 every half
// period.
func (a *Actor) SetEffectDiffuseBlink(period float64, c1, c2 Color) {
	a.setEffectPeriodic(EffectDiffuseBlink, period)
	a.effect.color1, a.effect.color2 = c1, c2
}

// SetEffectDiffuseShift blends the diffuse between c1 and c2 over a period.
func (a *Actor) SetEffectDiffuseShift(period float64, c1, c2 Color) {
	a.setEffectPeriodic(EffectDiffuseShift, period)
	a.effect.color1, a.effect.color2 = c1, c2
}

// SetEffectGlowBlink alternates the glow between c1 and c2 every half period.
func (a *Actor) SetEffectGlowBlink(period float64, c1, c2 Color) {
	a.setEffectPeriodic(EffectGlowBlink, period)
	a.effect.color1, a.effect.color2 = c1, c2
}

// SetEffectGlowShift blends the glow between c1 and c2 over a period.
func (a *Actor) SetEffectGlowShift(period float64, c1, c2 Color) {
	a.setEffectPeriodic(EffectGlowShift, period)
	a.effect.color1, a.effect.color2 = c1, c2
}

// SetEffectRainbow cycles the diffuse hue once per period.
func (a *Actor) SetEffectRainbow(period float64) {
	a.setEffectPeriodic(EffectRainbow, period)
}

// SetEffectWag swings the rotation by up to magnitude degrees per axis.
func (a *Actor) SetEffectWag(period float64, magnitude mgl64.Vec3) {
	a.setEffectPeriodic(EffectWag, period)
	a.effect.magnitude = magnitude
}

// SetEffectSpin turns the actor continuously at magnitude degrees per second
// (per beat on ClockMusicBeat).
func (a *Actor) SetEffectSpin(magnitude mgl64.Vec3) {
	a.setEffect(EffectSpin)
	a.effect.magnitude = magnitude
}

// SetEffectVibrate jitters the position by up to magnitude, scaled by zoom.
func (a *Actor) SetEffectVibrate(magnitude mgl64.Vec3) {
	a.setEffect(EffectVibrate)
	a.effect.magnitude = magnitude
}

// SetEffectBounce hops the position by magnitude once per period.
func (a *Actor) SetEffectBounce(period float64, magnitude mgl64.Vec3) {
	a.setEffectPeriodic(EffectBounce, period)
	a.effect.magnitude = magnitude
}

// SetEffectBob swings the position by ±magnitude once per period.
func (a *Actor) SetEffectBob(period float64, magnitude mgl64.Vec3) {
	a.setEffectPeriodic(EffectBob, period)
	a.effect.magnitude = magnitude
}

// SetEffectPulse scales the actor between minZoom and maxZoom and back once
// per period.
func (a *Actor) SetEffectPulse(period, minZoom, maxZoom float64) {
	a.setEffectPeriodic(EffectPulse, period)
	a.effect.magnitude = mgl64.Vec3{minZoom, maxZoom, 0}
}

// SetEffectPeriod changes the period without restarting the effect.
func (a *Actor) SetEffectPeriod(period float64) {
	checkPeriod(period)
	a.effect.period = period
}

// SetEffectDelay sets the pause at the start of every cycle.
func (a *Actor) SetEffectDelay(delay float64) {
	if delay < 0 || !finite(delay) {
		panic(fmt.Sprintf("actor: invalid effect delay %v", delay))
	}
	a.effect.delay = delay
}

// SetEffectOffset shifts the effect's phase by offset seconds (or beats).
func (a *Actor) SetEffectOffset(offset float64) { a.effect.offset = offset }

// SetEffectColor1 sets the first effect color.
func (a *Actor) SetEffectColor1(c Color) { a.effect.color1 = c }

// SetEffectColor2 sets the second effect color.
func (a *Actor) SetEffectColor2(c Color) { a.effect.color2 = c }

// SetEffectMagnitude sets the effect magnitude.
func (a *Actor) SetEffectMagnitude(m mgl64.Vec3) { a.effect.magnitude = m }

// SetEffectClock selects what drives the effect clock.
func (a *Actor) SetEffectClock(src ClockSource) {
	if src >= numClockSources {
		panic(fmt.Sprintf("actor: unknown effect clock %d", src))
	}
	a.effect.clock = src
	a.effect.clockMissingWarned = false
}

// Effect returns the active effect kind.
func (a *Actor) Effect() Effect { return a.effect.kind }

// EffectClock returns the effect's clock source.
func (a *Actor) EffectClock() ClockSource { return a.effect.clock }

// EffectPeriod returns the effect period.
func (a *Actor) EffectPeriod() float64 { return a.effect.period }

// EffectProgress returns how far through the current cycle the effect is,
// in [0, 1].
func (a *Actor) EffectProgress() float64 { return a.effect.progress() }
