package ecs

import (
	"github.com/phanxgames/actor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TweenEventType is the Donburi event type for actor tween notifications.
var TweenEventType = events.NewEventType[actor.TweenEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Tween
// events are published to TweenEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) actor.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTweenEvent(event actor.TweenEvent) {
	TweenEventType.Publish(s.world, event)
}

// ActorData is the component holding an entity's actor.
type ActorData struct {
	Actor *actor.Actor
}

// ActorComponent marks entities driven by an actor.
var ActorComponent = donburi.NewComponentType[ActorData]()

var actorQuery = donburi.NewQuery(filter.Contains(ActorComponent))

// Attach creates an entity for a, records the entity in a.EntityID, and
// routes a's tween events into world.
func Attach(world donburi.World, a *actor.Actor) donburi.Entity {
	e := world.Create(ActorComponent)
	ActorComponent.SetValue(world.Entry(e), ActorData{Actor: a})
	a.EntityID = uint32(e.Id())
	a.SetEventSink(NewDonburiSink(world))
	return e
}

// UpdateActors advances every attached actor by dt seconds.
func UpdateActors(world donburi.World, dt float64) {
	actorQuery.Each(world, func(entry *donburi.Entry) {
		if a := ActorComponent.Get(entry).Actor; a != nil {
			a.Update(dt)
		}
	})
}

// DrawActors draws every attached actor into sink, in entity order.
func DrawActors(world donburi.World, sink actor.TransformSink) {
	actorQuery.Each(world, func(entry *donburi.Entry) {
		if a := ActorComponent.Get(entry).Actor; a != nil {
			a.Draw(sink)
		}
	})
}
