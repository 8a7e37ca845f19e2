// Package ecs provides Donburi adapters for actor.
//
// [NewDonburiSink] bridges tween notifications into a [Donburi] world as
// typed events; subscribe to [TweenEventType] in your systems to receive
// them. [Attach] stores an actor on an entity so [UpdateActors] and
// [DrawActors] can drive it from ECS systems instead of a Stage.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
