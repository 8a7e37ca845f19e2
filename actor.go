package actor

import "github.com/go-gl/mathgl/mgl64"

// defaultMaxQueuedTweens is the soft cap on queued tweens per actor. Queues
// grow past it; crossing it only logs a warning.
const defaultMaxQueuedTweens = 10

// actorIDCounter is a plain counter (no atomic; actors are single-threaded).
var actorIDCounter uint32

func nextActorID() uint32 {
	actorIDCounter++
	return actorIDCounter
}

// Actor is one animatable element. It owns its tween queue, its committed
// current state, the start snapshot of the tween in progress, and its effect
// accumulator. Nothing outside the actor writes those.
//
// Call Update once per frame before Draw.
type Actor struct {
	// Identity
	ID       uint32
	Name     string
	EntityID uint32
	UserData any

	// Hidden actors update but draw nothing.
	Hidden bool

	// zIndex orders drawing within a Stage. Use SetZIndex to change it.
	zIndex int

	// Width and Height are the unzoomed size, used by ZoomToWidth/ZoomToHeight.
	Width, Height float64

	// BaseScale and BaseRotation are the actor's intrinsic pose, applied on
	// top of the tweened state at draw time. They are not part of the tween
	// queue; animate them with TweenBaseZoom/TweenBaseRotation if needed.
	BaseScale    mgl64.Vec3
	BaseRotation mgl64.Vec3

	// Drawer renders the actor's content once its transform is on the stack.
	// Nil draws nothing (the actor still pushes and pops its transform).
	Drawer Drawer

	current TweenState
	start   TweenState
	tweens  []*tweenEntry

	maxTweens    int
	overCapacity bool

	effect effectState

	commands  map[string]Commands
	playDepth int
	clock     SyncClock
	events    EventSink

	// stage that owns this actor, if any
	stage *Stage
}

// New creates an idle actor at identity with no effect.
func New(name string) *Actor {
	a := &Actor{
		ID:        nextActorID(),
		Name:      name,
		BaseScale: mgl64.Vec3{1, 1, 1},
		maxTweens: defaultMaxQueuedTweens,
	}
	a.current.Init()
	a.start = a.current
	a.effect.init()
	return a
}

// Current returns the committed state: where the actor is now, without any
// effect overlay.
func (a *Actor) Current() TweenState {
	return a.current
}

// SetMaxQueuedTweens sets the soft cap above which BeginTweening logs a
// warning. Values below 1 restore the default.
func (a *Actor) SetMaxQueuedTweens(n int) {
	if n < 1 {
		n = defaultMaxQueuedTweens
	}
	a.maxTweens = n
}

// SetSyncClock sets the external clock read by effects whose clock source is
// not ClockTimer. Actors added to a Stage use the stage's clock.
func (a *Actor) SetSyncClock(c SyncClock) {
	a.clock = c
}

// SetEventSink sets where tween notifications are sent. Nil disables them.
func (a *Actor) SetEventSink(s EventSink) {
	a.events = s
}

// SetSize sets the unzoomed width and height.
func (a *Actor) SetSize(w, h float64) {
	a.Width = w
	a.Height = h
}

// SetZIndex sets the draw order within a Stage. Higher values draw later (on
// top); equal values keep insertion order.
func (a *Actor) SetZIndex(z int) {
	if a.zIndex == z {
		return
	}
	a.zIndex = z
	if a.stage != nil {
		a.stage.sortDirty = true
	}
}

// ZIndex returns the actor's draw order.
func (a *Actor) ZIndex() int {
	return a.zIndex
}

// Stage returns the stage the actor was added to, or nil.
func (a *Actor) Stage() *Stage {
	return a.stage
}
