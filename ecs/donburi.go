// Package ecs provides ECS adapters for neonstreet.
package ecs

import (
	"github.com/phanxgames/neonstreet"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NavigationEventType is the Donburi event type for navigation changes.
// Subscribe to this in your ECS systems to react to shop and street moves.
var NavigationEventType = events.NewEventType[neonstreet.NavigationEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Navigation events are published to NavigationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) neonstreet.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event neonstreet.NavigationEvent) {
	NavigationEventType.Publish(s.world, event)
}
