package physics

import (
	"log"
	"math"
	"time"
)

// Stats accumulates per-tick integrator counters. Reset it with
// World.ResetStats at the start of each tick.
type Stats struct {
	Bodies   int
	Substeps int
	Contacts int
	Blocked  int
	Events   int
	Duration time.Duration
}

// World is one simulation context: a collider registry, the tunables and the
// host that owns the entities. A World is not safe for concurrent use.
type World struct {
	cfg   Config
	host  Host
	reg   *Registry
	stats Stats

	others []*Collider
}

// NewWorld creates a world backed by host. Panics if cfg does not validate.
func NewWorld(host Host, cfg Config) *World {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &World{cfg: cfg, host: host, reg: NewRegistry()}
}

// Registry returns the world's collider registry.
func (w *World) Registry() *Registry {
	return w.reg
}

// Config returns the world's tunables.
func (w *World) Config() Config {
	return w.cfg
}

// SetConfig replaces the tunables. Takes effect on the next Step. An invalid
// cfg is rejected and the current tunables are kept.
func (w *World) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.cfg = cfg
	return nil
}

// Stats returns the counters accumulated since the last ResetStats.
func (w *World) Stats() Stats {
	return w.stats
}

// ResetStats zeroes the counters.
func (w *World) ResetStats() {
	w.stats = Stats{}
}

// Bounds computes the current world-space bounds of c from its owner's
// global position.
func (w *World) Bounds(c *Collider) Bounds {
	center := w.host.GlobalPosition(c.Owner).Add(c.Offset)
	var size Vec2
	var ok bool
	if c.Shape.Auto {
		size, ok = w.host.SpriteSize(c.Owner)
	}
	return c.Shape.boundsAt(center, size, ok)
}

// Intersects reports whether a and b overlap right now. Box pairs are grown
// by ContactEpsilon; pairs involving a circle are tested exactly.
func (w *World) Intersects(a, b *Collider) bool {
	return w.overlaps(w.Bounds(a), w.Bounds(b))
}

func (w *World) overlaps(a, b Bounds) bool {
	margin := 0.0
	if a.Kind == ShapeBox && b.Kind == ShapeBox {
		margin = w.cfg.ContactEpsilon
	}
	return Overlaps(a, b, margin)
}

// substepCeiling bounds the substep count when MaxSubsteps is unset, so a
// non-finite or enormous displacement cannot overflow the conversion.
const substepCeiling = 1 << 20

// substeps splits displacement d into equal steps no longer than StepLimit
// on either axis.
func (w *World) substeps(d Vec2) int {
	longest := math.Max(math.Abs(d.X), math.Abs(d.Y))
	f := math.Ceil(longest / w.cfg.StepLimit)
	limit := substepCeiling
	if w.cfg.MaxSubsteps > 0 && w.cfg.MaxSubsteps < limit {
		limit = w.cfg.MaxSubsteps
	}
	switch {
	case math.IsNaN(f) || f < 1:
		return 1
	case f > float64(limit):
		return limit
	}
	return int(f)
}

// Step advances b by dt seconds: gravity, swept movement in substeps, and
// contact bookkeeping. It reports whether the full displacement was applied;
// false means a blocking contact stopped the body this tick.
func (w *World) Step(b *Body, dt float64) bool {
	start := time.Now()
	defer func() { w.stats.Duration += time.Since(start) }()
	w.stats.Bodies++

	if b.GravityEnabled {
		b.Velocity.Y += b.GravityScale * dt
	}
	d := b.Velocity.Scale(dt)

	if b.Collider == nil {
		w.Release(b)
		if !b.warned {
			b.warned = true
			log.Printf("physics: body on entity %d has no collider, moving without collision", b.Entity)
		}
		w.host.SetPosition(b.Entity, w.host.Position(b.Entity).Add(d))
		return true
	}

	steps := w.substeps(d)
	step := d.Div(float64(steps))
	self := b.Collider
	current := b.current[:0]
	blocked := false

	for i := 0; i < steps && !blocked; i++ {
		w.stats.Substeps++
		prev := w.host.Position(b.Entity)
		w.host.SetPosition(b.Entity, prev.Add(step))
		selfBounds := w.Bounds(self)

		w.others = w.reg.appendLive(w.others[:0])
		for _, other := range w.others {
			if other == self || other.Owner == b.Entity {
				continue
			}
			if !w.overlaps(selfBounds, w.Bounds(other)) {
				continue
			}
			if !hasContact(current, other.Owner) {
				current = append(current, Contact{
					Entity:   other.Owner,
					Collider: other,
					Trigger:  self.Trigger || other.Trigger,
				})
			}
			if self.Trigger || other.Trigger {
				continue
			}
			w.host.SetPosition(b.Entity, prev)
			if math.Abs(step.Y) > math.Abs(step.X) {
				b.Velocity.Y *= -b.Bounciness
			} else {
				b.Velocity.X *= -b.Bounciness
			}
			blocked = true
			w.stats.Blocked++
			break
		}
	}
	clear(w.others)

	current = w.holdNearContacts(b, current)
	w.stats.Contacts += len(current)

	transitions, next := DiffContacts(b.contacts, current)
	b.contacts = next
	clear(current)
	b.current = current[:0]
	w.dispatch(b, transitions)
	return !blocked
}

// holdNearContacts keeps last tick's partners that are no longer overlapping
// but still within ExitTolerance, so a body jittering on a boundary does not
// flicker between enter and exit.
func (w *World) holdNearContacts(b *Body, current []Contact) []Contact {
	if len(b.contacts) == 0 {
		return current
	}
	selfBounds := w.Bounds(b.Collider)
	for _, p := range b.contacts {
		if hasContact(current, p.Entity) {
			continue
		}
		if _, live := w.reg.Lookup(p.Collider); !live {
			continue
		}
		if Overlaps(selfBounds, w.Bounds(p.Collider), w.cfg.ExitTolerance) {
			p.Held = true
			current = append(current, p)
		}
	}
	return current
}

// Release ends every contact b holds, dispatching an exit for each, and
// leaves the body with no contacts. Call it when a body leaves the
// simulation so partners that outlive it see the episode close.
func (w *World) Release(b *Body) {
	if len(b.contacts) == 0 {
		return
	}
	transitions, _ := DiffContacts(b.contacts, nil)
	b.contacts = nil
	b.releases++
	w.dispatch(b, transitions)
}

// dispatch delivers transitions to the stepping body and, when the partner
// has no integrator of its own, to the partner. The body routes by the pair's
// trigger state; the partner routes by its own collider's flag. A handler
// that releases b ends delivery; the release already closed every contact.
func (w *World) dispatch(b *Body, transitions []Transition) {
	gen := b.releases
	for _, t := range transitions {
		if b.releases != gen {
			return
		}
		other := t.Contact.Collider
		w.host.Dispatch(Event{
			Kind:    t.Kind,
			Trigger: t.Contact.Trigger,
			Target:  b.Entity,
			Other:   t.Contact.Entity,
		})
		w.stats.Events++
		if b.releases != gen || w.host.HasRigidBody(t.Contact.Entity) {
			continue
		}
		w.host.Dispatch(Event{
			Kind:    t.Kind,
			Trigger: other.Trigger,
			Target:  t.Contact.Entity,
			Other:   b.Entity,
		})
		w.stats.Events++
	}
}
