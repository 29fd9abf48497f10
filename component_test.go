package canopy

import "testing"

// recorder logs lifecycle calls in order.
type recorder struct {
	BaseComponent
	log []string
}

func (r *recorder) Start()            { r.log = append(r.log, "start") }
func (r *recorder) Update(dt float64) { r.log = append(r.log, "update") }
func (r *recorder) OnDestroy()        { r.log = append(r.log, "destroy") }

type marker struct {
	BaseComponent
}

func TestAddComponentAttaches(t *testing.T) {
	o := NewGameObject("o")
	r := AddComponent(o, &recorder{})
	if r.GameObject() != o {
		t.Error("GameObject() should return the owner")
	}
	if len(o.Components()) != 1 {
		t.Errorf("Components = %d, want 1", len(o.Components()))
	}
	if r.Live() {
		t.Error("component should not be live outside a scene")
	}
}

func TestAddComponentTwicePanics(t *testing.T) {
	a := NewGameObject("a")
	b := NewGameObject("b")
	r := AddComponent(a, &recorder{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic attaching a component twice, got none")
		}
	}()
	AddComponent(b, r)
}

func TestGetComponent(t *testing.T) {
	o := NewGameObject("o")
	AddComponent(o, &marker{})
	r := AddComponent(o, &recorder{})

	got, ok := GetComponent[*recorder](o)
	if !ok || got != r {
		t.Errorf("GetComponent = %v, %v", got, ok)
	}
	if !HasComponent[*marker](o) {
		t.Error("HasComponent[*marker] should be true")
	}
	if HasComponent[*Collider](o) {
		t.Error("HasComponent[*Collider] should be false")
	}
}

func TestLifecycleOrder(t *testing.T) {
	s := NewScene()
	o := NewGameObject("o")
	r := AddComponent(o, &recorder{})
	s.Root().AddChild(o)

	s.Update(0.016)
	s.Update(0.016)
	o.Destroy()

	want := []string{"start", "update", "update", "destroy"}
	if len(r.log) != len(want) {
		t.Fatalf("log = %v, want %v", r.log, want)
	}
	for i := range want {
		if r.log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, r.log[i], want[i])
		}
	}
	if r.GameObject() != nil {
		t.Error("destroyed object should release its components")
	}
}

func TestInactiveObjectIsNotUpdated(t *testing.T) {
	s := NewScene()
	parent := NewGameObject("parent")
	child := NewGameObject("child")
	r := AddComponent(child, &recorder{})
	parent.AddChild(child)
	s.Root().AddChild(parent)

	parent.SetActive(false)
	s.Update(0.016)
	if len(r.log) != 0 {
		t.Errorf("log = %v, want empty", r.log)
	}
	if r.Live() {
		t.Error("component under an inactive parent should not be live")
	}

	parent.SetActive(true)
	s.Update(0.016)
	if len(r.log) != 2 {
		t.Errorf("log = %v, want [start update]", r.log)
	}
}

func TestRemoveComponent(t *testing.T) {
	s := NewScene()
	o := NewGameObject("o")
	r := AddComponent(o, &recorder{})
	s.Root().AddChild(o)

	o.RemoveComponent(r)
	if HasComponent[*recorder](o) {
		t.Error("component should be gone")
	}
	if r.Live() || r.GameObject() != nil {
		t.Error("removed component should be detached")
	}
	if len(r.log) != 1 || r.log[0] != "destroy" {
		t.Errorf("log = %v, want [destroy]", r.log)
	}

	o.RemoveComponent(r)
}

func TestComponentAddedInSceneGoesLive(t *testing.T) {
	s := NewScene()
	o := NewGameObject("o")
	s.Root().AddChild(o)

	r := AddComponent(o, &recorder{})
	if !r.Live() {
		t.Error("component added to a live object should be live")
	}
	s.Update(0.016)
	if len(r.log) != 2 || r.log[0] != "start" {
		t.Errorf("log = %v, want [start update]", r.log)
	}
}
