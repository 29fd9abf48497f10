package ecs

import (
	"testing"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/physics"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Dispatch(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []physics.Event
	CollisionEventType.Subscribe(world, func(w donburi.World, e physics.Event) {
		received = append(received, e)
	})

	sink.Dispatch(physics.Event{Kind: physics.EventEnter, Target: 42, Other: 7})
	sink.Dispatch(physics.Event{Kind: physics.EventExit, Trigger: true, Target: 42, Other: 9})

	// Events are queued; process them.
	CollisionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Kind != physics.EventEnter || e0.Target != 42 || e0.Other != 7 || e0.Trigger {
		t.Errorf("event 0: %+v", e0)
	}

	e1 := received[1]
	if e1.Kind != physics.EventExit || !e1.Trigger || e1.Other != 9 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	CollisionEventType.Subscribe(world, func(w donburi.World, e physics.Event) {
		count1++
	})
	CollisionEventType.Subscribe(world, func(w donburi.World, e physics.Event) {
		count2++
	})

	sink.Dispatch(physics.Event{Kind: physics.EventStay, Target: 1, Other: 2})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_ReceivesSceneEvents(t *testing.T) {
	world := donburi.NewWorld()
	scene := canopy.NewScene()
	scene.SetEventSink(NewDonburiSink(world))

	wall := canopy.NewGameObject("wall")
	wall.X = 10
	canopy.AddComponent(wall, canopy.NewBoxCollider(4, 4))
	scene.Root().AddChild(wall)

	mover := canopy.NewGameObject("mover")
	canopy.AddComponent(mover, canopy.NewBoxCollider(4, 4))
	rb := canopy.AddComponent(mover, canopy.NewRigidBody())
	rb.GravityEnabled = false
	rb.Velocity = physics.V(20, 0)
	scene.Root().AddChild(mover)

	var enters []physics.Event
	CollisionEventType.Subscribe(world, func(w donburi.World, e physics.Event) {
		if e.Kind == physics.EventEnter {
			enters = append(enters, e)
		}
	})

	for i := 0; i < 10; i++ {
		scene.Update(0.05)
	}
	events.ProcessAllEvents(world)

	// One enter for the mover, one for the wall (it has no body of its own).
	if len(enters) != 2 {
		t.Fatalf("enter events = %d, want 2", len(enters))
	}
	if enters[0].Target != physics.EntityID(mover.ID) || enters[0].Other != physics.EntityID(wall.ID) {
		t.Errorf("first enter = %+v", enters[0])
	}
	if enters[1].Target != physics.EntityID(wall.ID) {
		t.Errorf("second enter = %+v", enters[1])
	}
}
