// Package ecs provides ECS adapters for gesture's controller.
//
// The primary adapter is [NewDonburiStore], which publishes pan and zoom
// updates into a [Donburi] world as typed events. Subscribe to
// [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	controller.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
