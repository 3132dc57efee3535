// Package ecs bridges the system messages a vellum scene dispatches into
// an ECS world.
//
// The primary adapter is [NewDonburiStore], which publishes every resize,
// draw tick and input message into a [Donburi] world as a typed event.
// Mouse events carry the ID of the topmost node under the pointer.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
