package canopy

import (
	"fmt"
	"strings"
	"testing"
)

func TestDebugMode_DestroyedChildPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewGameObject("parent")
	s.Root().AddChild(parent)

	child := NewGameObject("child")
	child.Destroy()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with destroyed object, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "destroyed") {
			t.Errorf("panic message should mention 'destroyed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DestroyedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewGameObject("parent")
	parent.Destroy()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to destroyed parent, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "destroyed") {
			t.Errorf("panic message should mention 'destroyed', got: %s", msg)
		}
	}()

	parent.AddChild(NewGameObject("child"))
}

func TestDebugMode_UpdateLogsStats(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	o := NewGameObject("body")
	rb := AddComponent(o, NewRigidBody())
	rb.GravityEnabled = false
	s.Root().AddChild(o)

	// Stats go to stderr; this only checks the tick runs with debug on.
	s.Update(0.016)
	if s.World().Stats().Bodies != 1 {
		t.Errorf("Bodies = %d, want 1", s.World().Stats().Bodies)
	}
}

func TestAddComponentToDestroyedPanics(t *testing.T) {
	o := NewGameObject("o")
	o.Destroy()
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	AddComponent(o, &marker{})
}
