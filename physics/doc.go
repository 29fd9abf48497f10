// Package physics is canopy's collision and rigid-body core. It has no
// rendering dependency and can be driven by any engine that implements
// [Host].
//
// A [World] owns a [Registry] of live colliders and the [Config] tunables.
// Each tick the host calls [World.Step] once per rigid body:
//
//	w := physics.NewWorld(host, physics.DefaultConfig())
//	w.Registry().Register(groundCollider)
//	...
//	w.Step(body, dt)
//
// Step applies gravity, then moves the body in substeps no longer than
// StepLimit, testing every registered collider after each substep. The first
// solid contact undoes that substep and bounces the body on the dominant
// axis. Contacts found during the tick are compared with the previous tick
// by [DiffContacts] and delivered through [EventSink] once the body has
// finished moving. [World.Release] closes a body's open contacts when it
// leaves the simulation.
//
// Shapes are axis-aligned boxes and circles. Bounds are derived from the
// owner's global position on every query and are never cached.
package physics
