package physics

// Transform reads and writes entity positions. Position and SetPosition work
// in the entity's local space; GlobalPosition is the world-space position
// that bounds are derived from.
type Transform interface {
	Position(id EntityID) Vec2
	SetPosition(id EntityID, p Vec2)
	GlobalPosition(id EntityID) Vec2
}

// Capabilities answers questions about what an entity carries.
type Capabilities interface {
	// HasRigidBody reports whether the entity runs its own integrator.
	HasRigidBody(id EntityID) bool
}

// EventSink receives collision and trigger events. A sink with no handler for
// an event must ignore it.
type EventSink interface {
	Dispatch(e Event)
}

// ExtentProvider supplies the fallback size for auto-sized colliders.
type ExtentProvider interface {
	SpriteSize(id EntityID) (Vec2, bool)
}

// Host is everything a World needs from the engine that owns it.
type Host interface {
	Transform
	Capabilities
	EventSink
	ExtentProvider
}
