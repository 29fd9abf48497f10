// Package ecs provides ECS adapters for canopy's collision event system.
//
// The primary adapter is [NewDonburiSink], which republishes canopy
// collision and trigger events (enter, stay, exit) into a [Donburi] world as
// typed events. Subscribe to [CollisionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
