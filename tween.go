package canopy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a GameObject simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation) and call Update(dt) each tick, typically from a component's
// Update or the scene's update func. If the target object is destroyed, the
// group stops immediately.
//
// A tweened object with a Collider and no RigidBody acts as a kinematic
// mover: bodies collide with it wherever the tween puts it.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *GameObject
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target has been destroyed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds every tween to its start so the group can play again.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenPosition creates a TweenGroup that animates o.X and o.Y to the given
// local coordinates over the specified duration using the easing function.
func TweenPosition(o *GameObject, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: o}
	g.tweens[0] = gween.New(float32(o.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(o.Y), float32(toY), duration, fn)
	g.fields[0] = &o.X
	g.fields[1] = &o.Y
	return g
}

// TweenScale creates a TweenGroup that animates o.ScaleX and o.ScaleY to the
// given target values over the specified duration using the easing function.
func TweenScale(o *GameObject, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: o}
	g.tweens[0] = gween.New(float32(o.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(o.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &o.ScaleX
	g.fields[1] = &o.ScaleY
	return g
}

// TweenRotation creates a TweenGroup that animates o.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(o *GameObject, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: o}
	g.tweens[0] = gween.New(float32(o.Rotation), float32(to), duration, fn)
	g.fields[0] = &o.Rotation
	return g
}

// Patrol is a component that moves its object from its start position by
// (DX, DY) and back, forever, like a floating platform. Each leg takes
// Duration seconds.
type Patrol struct {
	BaseComponent
	DX, DY   float64
	Duration float32
	Ease     ease.TweenFunc

	originX, originY float64
	seqX, seqY       *gween.Sequence
}

// NewPatrol returns a Patrol using linear easing.
func NewPatrol(dx, dy float64, duration float32) *Patrol {
	return &Patrol{DX: dx, DY: dy, Duration: duration, Ease: ease.Linear}
}

// Start records the start position.
func (p *Patrol) Start() {
	o := p.GameObject()
	p.originX, p.originY = o.X, o.Y
	p.rewind()
}

func (p *Patrol) rewind() {
	leg := func(from, delta float64) *gween.Sequence {
		return gween.NewSequence(
			gween.New(float32(from), float32(from+delta), p.Duration, p.Ease),
			gween.New(float32(from+delta), float32(from), p.Duration, p.Ease),
		)
	}
	p.seqX = leg(p.originX, p.DX)
	p.seqY = leg(p.originY, p.DY)
}

// Update advances the patrol by dt seconds.
func (p *Patrol) Update(dt float64) {
	if p.seqX == nil {
		return
	}
	o := p.GameObject()
	x, _, doneX := p.seqX.Update(float32(dt))
	y, _, doneY := p.seqY.Update(float32(dt))
	o.X, o.Y = float64(x), float64(y)
	if doneX && doneY {
		p.rewind()
	}
}
