package actor

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Curve selects the easing applied to a tween's linear time progress.
// The set is closed.
type Curve uint8

const (
	CurveLinear      Curve = iota // p
	CurveAccelerate               // p², ease-in
	CurveDecelerate               // 1-(1-p)², ease-out
	CurveBounceBegin              // dips below the start before leaving it
	CurveBounceEnd                // overshoots the target before settling
	CurveSpring                   // damped oscillation around the target
	numCurves
)

var curveNames = [numCurves]string{
	CurveLinear:      "linear",
	CurveAccelerate:  "accelerate",
	CurveDecelerate:  "decelerate",
	CurveBounceBegin: "bouncebegin",
	CurveBounceEnd:   "bounceend",
	CurveSpring:      "spring",
}

// bounceStart is the sine phase where the bounce curves begin; sin(1.1) is
// roughly 0.89, which the formulas divide by so the curve ends near 1.
const bounceStart = 1.1

// Distort maps linear progress p in [0, 1] to positional progress. Bounce
// and spring curves may return values slightly outside [0, 1].
//
// Panics if p is outside [0, 1] or NaN, or if c is not a known curve.
func (c Curve) Distort(p float64) float64 {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("actor: tween progress %v outside [0, 1]", p))
	}
	switch c {
	case CurveLinear:
		return p
	case CurveAccelerate:
		return p * p
	case CurveDecelerate:
		return 1 - (1-p)*(1-p)
	case CurveBounceBegin:
		return 1 - math.Sin(bounceStart+p*(math.Pi-bounceStart))/0.89
	case CurveBounceEnd:
		return math.Sin(bounceStart+(1-p)*(math.Pi-bounceStart)) / 0.89
	case CurveSpring:
		return 1 - math.Cos(p*math.Pi*2.5)/(1+p*3)
	default:
		panic(fmt.Sprintf("actor: unknown tween curve %d", c))
	}
}

// String returns the curve's command name.
func (c Curve) String() string {
	if c < numCurves {
		return curveNames[c]
	}
	return fmt.Sprintf("Curve(%d)", c)
}

// ParseCurve looks up a curve by its command name.
func ParseCurve(name string) (Curve, bool) {
	for i, n := range curveNames {
		if n == name {
			return Curve(i), true
		}
	}
	return 0, false
}

// TweenFunc adapts the curve to gween's easing signature so it can drive a
// gween.Tween. t and d are elapsed and total time, b the start value and c
// the change.
func (c Curve) TweenFunc() ease.TweenFunc {
	// Resolve eagerly so an invalid curve panics at construction.
	c.Distort(0)
	return func(t, b, ch, d float32) float32 {
		if d <= 0 {
			return b + ch
		}
		p := float64(t / d)
		if p < 0 {
			p = 0
		} else if p > 1 {
			p = 1
		}
		return b + ch*float32(c.Distort(p))
	}
}
