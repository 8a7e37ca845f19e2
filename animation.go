package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BaseTween animates up to 3 components of an actor's base pose
// simultaneously. The base pose sits outside the tween queue, so these run
// independently of BeginTweening and survive StopTweening/FinishTweening.
// Create one via TweenBaseZoom or TweenBaseRotation and call Update(dt) each
// frame.
//
// Pass a Curve's TweenFunc to ease with the queue's curves, or any gween ease
// function.
type BaseTween struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// actor's base pose.
func (g *BaseTween) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Stop ends the tween where it is.
func (g *BaseTween) Stop() {
	g.Done = true
}

func newBaseTween(fields *mgl64.Vec3, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *BaseTween {
	g := &BaseTween{count: 3}
	for i := range 3 {
		g.tweens[i] = gween.New(float32(fields[i]), float32(to[i]), duration, fn)
		g.fields[i] = &fields[i]
	}
	return g
}

// TweenBaseZoom animates a.BaseScale to z on every axis.
func TweenBaseZoom(a *Actor, z float64, duration float32, fn ease.TweenFunc) *BaseTween {
	return newBaseTween(&a.BaseScale, mgl64.Vec3{z, z, z}, duration, fn)
}

// TweenBaseZoomXYZ animates a.BaseScale to per-axis targets.
func TweenBaseZoomXYZ(a *Actor, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *BaseTween {
	return newBaseTween(&a.BaseScale, to, duration, fn)
}

// TweenBaseRotation animates a.BaseRotation to the target degrees.
func TweenBaseRotation(a *Actor, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *BaseTween {
	return newBaseTween(&a.BaseRotation, to, duration, fn)
}
