package physics

// EntityID is a non-owning handle to the engine object that owns a collider
// or body. Zero means no entity.
type EntityID uint32

// Collider is the physics-side view of a collision shape attached to an
// entity. The entity owns the collider; the collider only refers back to it
// through Owner.
type Collider struct {
	Owner   EntityID
	Shape   Shape
	Trigger bool // detected but never blocks movement
	Offset  Vec2 // center offset from the owner's global position
}

// NewBoxCollider returns a solid box collider owned by id.
func NewBoxCollider(id EntityID, w, h float64) *Collider {
	return &Collider{Owner: id, Shape: Box(w, h)}
}

// NewCircleCollider returns a solid circle collider owned by id.
func NewCircleCollider(id EntityID, r float64) *Collider {
	return &Collider{Owner: id, Shape: Circle(r)}
}
