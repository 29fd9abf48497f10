package physics

// DefaultGravityScale is the gravity acceleration given to new bodies, in
// world units per second squared. Positive Y points down.
const DefaultGravityScale = 9.8

// Body is the integrator state of one rigid body. Collider may be nil, in
// which case the body moves without collision.
type Body struct {
	Entity   EntityID
	Collider *Collider

	Velocity       Vec2
	GravityEnabled bool
	GravityScale   float64
	// Bounciness is the fraction of the blocked axis velocity kept (and
	// reversed) on a blocking contact. 0 stops, 1 reflects fully.
	Bounciness float64

	contacts []Contact
	current  []Contact
	releases uint32
	warned   bool
}

// NewBody returns a body for id with gravity enabled at DefaultGravityScale.
func NewBody(id EntityID, c *Collider) *Body {
	return &Body{
		Entity:         id,
		Collider:       c,
		GravityEnabled: true,
		GravityScale:   DefaultGravityScale,
	}
}

// Contacts returns the partners the body was touching at the end of the
// last tick, including ones held by exit hysteresis. The slice must not be
// mutated.
func (b *Body) Contacts() []Contact {
	return b.contacts
}

// Touching reports whether the body ended the last tick in contact with id.
func (b *Body) Touching(id EntityID) bool {
	return hasContact(b.contacts, id)
}

// ResetContacts forgets all contacts without firing exit events. Use
// World.Release to close them instead.
func (b *Body) ResetContacts() {
	b.contacts = nil
}
