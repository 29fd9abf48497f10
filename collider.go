package canopy

import "github.com/phanxgames/canopy/physics"

// Collider gives a GameObject a collision shape. It is registered with the
// scene's physics world while the object is live and unregistered when the
// object is deactivated, detached or destroyed.
//
// Shape, Trigger and Offset come from the embedded physics.Collider and may
// be changed at any time; bounds are recomputed from the owner's global
// position on every query.
type Collider struct {
	BaseComponent
	physics.Collider

	id physics.ColliderID
}

// NewBoxCollider returns a solid box collider. A non-positive width or height
// sizes the box from the owner's SpriteWidth and SpriteHeight.
func NewBoxCollider(w, h float64) *Collider {
	c := &Collider{}
	if w <= 0 || h <= 0 {
		c.Shape = physics.AutoBox()
	} else {
		c.Shape = physics.Box(w, h)
	}
	return c
}

// NewCircleCollider returns a solid circle collider. A non-positive radius
// sizes the circle from the larger of the owner's sprite dimensions.
func NewCircleCollider(r float64) *Collider {
	c := &Collider{}
	if r <= 0 {
		c.Shape = physics.AutoCircle()
	} else {
		c.Shape = physics.Circle(r)
	}
	return c
}

// ID returns the collider's registry handle, or zero while it is not live.
func (c *Collider) ID() physics.ColliderID {
	return c.id
}

func (c *Collider) activate(s *Scene) {
	c.Owner = physics.EntityID(c.owner.ID)
	c.id = s.world.Registry().Register(&c.Collider)
}

func (c *Collider) deactivate(s *Scene) {
	s.world.Registry().Unregister(c.id)
	c.id = 0
	if rb, ok := GetComponent[*RigidBody](c.owner); ok {
		s.world.Release(&rb.Body)
	}
}
