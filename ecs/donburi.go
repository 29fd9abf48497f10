package ecs

import (
	"github.com/phanxgames/canopy/physics"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for canopy collision events.
// Subscribe to this in your ECS systems to receive enter, stay and exit
// events for both solid contacts and triggers.
var CollisionEventType = events.NewEventType[physics.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to CollisionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) physics.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Dispatch(e physics.Event) {
	CollisionEventType.Publish(s.world, e)
}
