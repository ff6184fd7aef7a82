package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for gesture updates.
// Subscribe to this in your ECS systems to receive pan and zoom events.
var GestureEventType = events.NewEventType[gesture.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) gesture.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitGesture(event gesture.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
