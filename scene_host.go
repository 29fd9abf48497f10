package canopy

import "github.com/phanxgames/canopy/physics"

// sceneHost is the physics.Host view of a Scene. Entity IDs are GameObject
// IDs; unknown IDs read as the origin and ignore writes.
type sceneHost Scene

func (h *sceneHost) object(id physics.EntityID) *GameObject {
	return h.objects[id]
}

func (h *sceneHost) Position(id physics.EntityID) physics.Vec2 {
	if o := h.object(id); o != nil {
		return o.Position()
	}
	return physics.Vec2{}
}

func (h *sceneHost) SetPosition(id physics.EntityID, p physics.Vec2) {
	if o := h.object(id); o != nil {
		o.X, o.Y = p.X, p.Y
	}
}

func (h *sceneHost) GlobalPosition(id physics.EntityID) physics.Vec2 {
	if o := h.object(id); o != nil {
		return o.GlobalPosition()
	}
	return physics.Vec2{}
}

func (h *sceneHost) HasRigidBody(id physics.EntityID) bool {
	o := h.object(id)
	if o == nil {
		return false
	}
	rb, ok := GetComponent[*RigidBody](o)
	return ok && rb.live
}

func (h *sceneHost) SpriteSize(id physics.EntityID) (physics.Vec2, bool) {
	o := h.object(id)
	if o == nil || o.SpriteWidth <= 0 || o.SpriteHeight <= 0 {
		return physics.Vec2{}, false
	}
	return physics.Vec2{X: o.SpriteWidth, Y: o.SpriteHeight}, true
}

// Dispatch forwards e to the external sink, then to the target's callback
// field and every component implementing the matching handler. Events for
// objects that are gone are dropped; a destroyed partner arrives as nil.
func (h *sceneHost) Dispatch(e physics.Event) {
	if h.sink != nil {
		h.sink.Dispatch(e)
	}
	target := h.object(e.Target)
	if target == nil {
		return
	}
	other := h.object(e.Other)

	if fn := target.callbackFor(e.Kind, e.Trigger); fn != nil {
		fn(other)
	}
	for i := 0; i < len(target.components); i++ {
		if target.destroyed {
			return
		}
		dispatchToComponent(target.components[i], e.Kind, e.Trigger, other)
	}
}

// callbackFor returns the callback field matching kind and trigger.
func (o *GameObject) callbackFor(kind physics.EventKind, trigger bool) func(*GameObject) {
	switch {
	case kind == physics.EventEnter && trigger:
		return o.OnTriggerEnter
	case kind == physics.EventStay && trigger:
		return o.OnTriggerStay
	case kind == physics.EventExit && trigger:
		return o.OnTriggerExit
	case kind == physics.EventEnter:
		return o.OnCollisionEnter
	case kind == physics.EventStay:
		return o.OnCollisionStay
	case kind == physics.EventExit:
		return o.OnCollisionExit
	}
	return nil
}

// dispatchToComponent calls the handler c implements for the event, if any.
func dispatchToComponent(c Component, kind physics.EventKind, trigger bool, other *GameObject) {
	if trigger {
		switch kind {
		case physics.EventEnter:
			if h, ok := c.(TriggerEnterHandler); ok {
				h.OnTriggerEnter(other)
			}
		case physics.EventStay:
			if h, ok := c.(TriggerStayHandler); ok {
				h.OnTriggerStay(other)
			}
		case physics.EventExit:
			if h, ok := c.(TriggerExitHandler); ok {
				h.OnTriggerExit(other)
			}
		}
		return
	}
	switch kind {
	case physics.EventEnter:
		if h, ok := c.(CollisionEnterHandler); ok {
			h.OnCollisionEnter(other)
		}
	case physics.EventStay:
		if h, ok := c.(CollisionStayHandler); ok {
			h.OnCollisionStay(other)
		}
	case physics.EventExit:
		if h, ok := c.(CollisionExitHandler); ok {
			h.OnCollisionExit(other)
		}
	}
}
