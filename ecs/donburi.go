// Package ecs provides ECS adapters for vellum.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/vellum"
)

// InteractionEventType is the Donburi event type for vellum system messages.
// Subscribe to it in your ECS systems to see resizes, ticks and input.
var InteractionEventType = events.NewEventType[vellum.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued until processed with ProcessEvents.
func NewDonburiStore(world donburi.World) vellum.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event vellum.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
