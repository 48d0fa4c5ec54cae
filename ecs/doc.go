// Package ecs provides ECS adapters for marquee's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges marquee lifecycle
// events (timeline started, completed or killed, trigger fired, page ready)
// into a [Donburi] world as typed events. Subscribe to [LifecycleEventType]
// in your ECS systems to receive them, or call [TrackStats] for a running
// tally stored on an entity.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	page.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
