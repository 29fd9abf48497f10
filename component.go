package canopy

// Component is behavior attached to a GameObject. Embed BaseComponent to
// satisfy it:
//
//	type Spinner struct {
//		canopy.BaseComponent
//		Speed float64
//	}
//
//	func (s *Spinner) Update(dt float64) {
//		o := s.GameObject()
//		o.Rotation += s.Speed * dt
//	}
//
// A component implements only the optional interfaces it needs (Starter,
// Updater, Destroyer, and the collision handler interfaces); the engine
// probes for each and skips the ones that are missing.
type Component interface {
	GameObject() *GameObject
	base() *BaseComponent
}

// BaseComponent carries the bookkeeping every component needs.
type BaseComponent struct {
	owner   *GameObject
	scene   *Scene
	live    bool
	started bool
}

// GameObject returns the object the component is attached to, or nil.
func (b *BaseComponent) GameObject() *GameObject {
	return b.owner
}

// Live reports whether the component is attached to an active object in a
// scene.
func (b *BaseComponent) Live() bool {
	return b.live
}

func (b *BaseComponent) base() *BaseComponent {
	return b
}

// Starter is called once, on the first scene update after the component
// becomes live.
type Starter interface {
	Start()
}

// Updater is called every scene update while the component is live.
type Updater interface {
	Update(dt float64)
}

// Destroyer is called when the component is removed or its object destroyed.
type Destroyer interface {
	OnDestroy()
}

// Collision and trigger handler interfaces. Components implementing them
// receive the same events as the GameObject callback fields.
type (
	CollisionEnterHandler interface{ OnCollisionEnter(other *GameObject) }
	CollisionStayHandler  interface{ OnCollisionStay(other *GameObject) }
	CollisionExitHandler  interface{ OnCollisionExit(other *GameObject) }
	TriggerEnterHandler   interface{ OnTriggerEnter(other *GameObject) }
	TriggerStayHandler    interface{ OnTriggerStay(other *GameObject) }
	TriggerExitHandler    interface{ OnTriggerExit(other *GameObject) }
)

// activator is implemented by engine components that hook into the scene's
// physics world while live.
type activator interface {
	activate(s *Scene)
	deactivate(s *Scene)
}

// AddComponent attaches c to o and returns it. If o is live in a scene the
// component goes live immediately; Start runs on the next scene update.
// Panics if c is already attached to an object.
func AddComponent[T Component](o *GameObject, c T) T {
	b := c.base()
	if b.owner != nil {
		panic("canopy: component is already attached")
	}
	if o.destroyed {
		panic("canopy: AddComponent on destroyed object")
	}
	b.owner = o
	o.components = append(o.components, c)
	setComponentLive(o.scene, c, o.live())
	return c
}

// GetComponent returns the first component of type T on o.
func GetComponent[T Component](o *GameObject) (T, bool) {
	for _, c := range o.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// HasComponent reports whether o has a component of type T.
func HasComponent[T Component](o *GameObject) bool {
	_, ok := GetComponent[T](o)
	return ok
}

// Components returns the attached components in insertion order. The
// returned slice MUST NOT be mutated by the caller.
func (o *GameObject) Components() []Component {
	return o.components
}

// RemoveComponent detaches c from o, taking it out of the scene first.
// No-op if c is not attached to o.
func (o *GameObject) RemoveComponent(c Component) {
	for i, have := range o.components {
		if have != c {
			continue
		}
		setComponentLive(o.scene, c, false)
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
		copy(o.components[i:], o.components[i+1:])
		o.components[len(o.components)-1] = nil
		o.components = o.components[:len(o.components)-1]
		b := c.base()
		b.owner = nil
		b.started = false
		return
	}
}

// setComponentLive moves c in or out of s's running set.
func setComponentLive(s *Scene, c Component, live bool) {
	b := c.base()
	if b.live == live {
		return
	}
	if live {
		b.scene = s
		b.live = true
		if a, ok := c.(activator); ok {
			a.activate(s)
		}
		return
	}
	if a, ok := c.(activator); ok && b.scene != nil {
		a.deactivate(b.scene)
	}
	b.scene = nil
	b.live = false
}
