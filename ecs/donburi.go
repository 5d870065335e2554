package ecs

import (
	"github.com/phanxgames/reveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for reveal trigger events.
// Subscribe to this in your ECS systems to receive enter and leave events.
var TriggerEventType = events.NewEventType[reveal.TriggerEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Trigger events are published to TriggerEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) reveal.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event reveal.TriggerEvent) {
	TriggerEventType.Publish(s.world, event)
}
