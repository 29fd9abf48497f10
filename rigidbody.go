package canopy

import "github.com/phanxgames/canopy/physics"

// RigidBody moves its GameObject every scene update: gravity, velocity and
// swept collision against every registered collider. The body collides with
// the object's Collider component; without one it moves freely.
//
// Velocity, GravityEnabled, GravityScale and Bounciness come from the
// embedded physics.Body.
type RigidBody struct {
	BaseComponent
	physics.Body

	// Blocked is true when the last step was stopped by a solid contact.
	Blocked bool
}

// NewRigidBody returns a body with gravity enabled at
// physics.DefaultGravityScale.
func NewRigidBody() *RigidBody {
	return &RigidBody{Body: *physics.NewBody(0, nil)}
}

// AddForce adds an instantaneous velocity change.
func (rb *RigidBody) AddForce(v Vec2) {
	rb.Velocity = rb.Velocity.Add(v)
}

// step advances the body by dt inside s's world.
func (rb *RigidBody) step(s *Scene, dt float64) {
	o := rb.owner
	rb.Entity = physics.EntityID(o.ID)
	rb.Body.Collider = nil
	if c, ok := GetComponent[*Collider](o); ok && c.live {
		rb.Body.Collider = &c.Collider
	}
	rb.Blocked = !s.world.Step(&rb.Body, dt)
}

func (rb *RigidBody) activate(s *Scene) {
	rb.Entity = physics.EntityID(rb.owner.ID)
}

// deactivate closes every open contact so partners see an exit and a body
// re-entering the scene starts a new episode.
func (rb *RigidBody) deactivate(s *Scene) {
	s.world.Release(&rb.Body)
}
