// Package ecs provides ECS adapters for reveal's trigger events.
//
// The primary adapter is [NewDonburiStore], which bridges reveal trigger
// events (an element entering or leaving its triggered state) into a
// [Donburi] world as typed events. Subscribe to [TriggerEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	registry.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
