// Package ecs provides ECS adapters for neonstreet's navigation events.
//
// The primary adapter is [NewDonburiStore], which forwards every shop and
// street change into a [Donburi] world as a typed event. Subscribe to
// [NavigationEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
