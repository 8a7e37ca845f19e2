// Package actor is a per-element tweening and effect engine for 2D/3D scenes.
//
// An [Actor] owns a queue of timed tweens toward target states, commits
// progress once per frame in [Actor.Update], and layers a periodic visual
// effect (blink, shift, rainbow, wag, spin, vibrate, bounce, bob, pulse) on
// top at draw time without touching the committed state.
//
// # Quick start
//
//	a := actor.New("logo")
//	a.SetXY(320, -50)
//	a.BeginTweening(0.5, actor.CurveDecelerate)
//	a.SetY(240)
//	a.SetEffectBob(2, mgl64.Vec3{0, 8, 0})
//
//	// each frame
//	a.Update(dt)
//	a.Draw(sink)
//
// Setters always act on the newest queued target, so "begin a tween, then
// set properties" reads top to bottom. When nothing is queued they apply
// immediately.
//
// # Commands
//
// Tweens can also be written as text and parsed once into typed [Command]
// values:
//
//	cmds, err := actor.ParseCommands("decelerate,0.5;y,240;diffuse,#ff8800")
//	a.RunCommands(cmds)
//
// Named command sets ([Actor.AddCommand], [Actor.PlayCommand]) and a YAML
// [Config] let a [Stage] of actors be described outside Go code.
//
// # Rendering
//
// Rendering is injected: [Actor.Draw] pushes the actor's transform onto a
// [TransformSink] and hands the effect-applied [TweenState] to its [Drawer].
// Backends for [Ebitengine] (actor/ebitensink) and the terminal via [tcell]
// (actor/termsink) are provided, and [Donburi] systems live in actor/ecs.
//
// Effects can lock to song position through a [SyncClock]; [BeatClock]
// reads one from a [beep] stream.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
// [Donburi]: https://github.com/yohamta/donburi
// [beep]: https://github.com/gopxl/beep
package actor
