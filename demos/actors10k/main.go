// actors10k spawns 10,000 quads that drift across the screen on chained
// tweens while bobbing, spinning and pulsing. A stress test for the tween
// queue and the Ebitengine sink.
package main

import (
	"log"
	"math/rand/v2"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/actor"
	"github.com/phanxgames/actor/ebitensink"
)

const (
	screenW = 1280
	screenH = 720
	count   = 10_000
)

var curves = []actor.Curve{
	actor.CurveLinear,
	actor.CurveAccelerate,
	actor.CurveDecelerate,
	actor.CurveBounceEnd,
	actor.CurveSpring,
}

// wander queues a hop to a random spot, so the actor never goes idle.
func wander(a *actor.Actor) {
	a.BeginTweening(1+rand.Float64()*3, curves[rand.IntN(len(curves))])
	a.SetXY(rand.Float64()*screenW, rand.Float64()*screenH)
	a.SetDiffuseAlpha(0.4 + rand.Float64()*0.6)
}

// refill sends every drained actor off again. Actors are indexed by
// EntityID.
type refill []*actor.Actor

func (r refill) EmitTweenEvent(e actor.TweenEvent) {
	if e.Type == actor.EventTweensDrained {
		wander(r[e.EntityID])
	}
}

func main() {
	stage := actor.NewStage()
	actors := make(refill, count)
	stage.SetEventSink(actors)

	quad := ebitensink.NewQuad(12, 12)
	for i := range count {
		a := actor.New("q" + strconv.Itoa(i))
		a.EntityID = uint32(i)
		a.Drawer = quad
		a.SetXY(rand.Float64()*screenW, rand.Float64()*screenH)
		a.SetDiffuse(actor.Color{
			R: 0.5 + rand.Float64()*0.5,
			G: 0.5 + rand.Float64()*0.5,
			B: 0.5 + rand.Float64()*0.5,
			A: 1,
		})
		switch i % 3 {
		case 0:
			a.SetEffectBob(1+rand.Float64()*2, mgl64.Vec3{0, 6, 0})
		case 1:
			a.SetEffectSpin(mgl64.Vec3{0, 0, 90 + rand.Float64()*180})
		default:
			a.SetEffectPulse(1+rand.Float64(), 0.6, 1.4)
		}
		a.SetEffectOffset(rand.Float64() * 2)
		wander(a)
		actors[i] = a
		stage.Add(a)
	}

	script, err := actor.LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 30},
		{"action": "screenshot", "label": "thumbnail"}
	]}`))
	if err != nil {
		log.Fatal(err)
	}

	if err := ebitensink.Run(stage, ebitensink.RunConfig{
		Title:         "actor: 10k actors",
		Width:         screenW,
		Height:        screenH,
		ClearColor:    actor.Color{R: 0.06, G: 0.06, B: 0.09, A: 1},
		ShowFPS:       true,
		ScreenshotDir: "docs/demos/actors10k",
		Script:        script,
	}); err != nil {
		log.Fatal(err)
	}
}
