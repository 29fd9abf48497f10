package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/canopy/physics"
)

// Scene is the top-level object that owns the GameObject tree and the physics
// world its colliders and bodies live in. A Scene is not safe for concurrent
// use; call Update and Draw from the game loop only.
type Scene struct {
	root    *GameObject
	world   *physics.World
	objects map[physics.EntityID]*GameObject
	sink    physics.EventSink
	debug   bool

	// ClearColor fills the screen at the start of Draw when its alpha is
	// non-zero. Defaults to ColorBlack.
	ClearColor Color
	// ShowColliders draws every registered collider on top of the frame.
	ShowColliders bool

	updateFunc func(dt float64)
	order      []*GameObject
}

// NewScene creates a new scene with a pre-created root object and the default
// physics tunables.
func NewScene() *Scene {
	s := &Scene{
		root:       NewGameObject("root"),
		objects:    make(map[physics.EntityID]*GameObject),
		ClearColor: ColorBlack,
	}
	s.world = physics.NewWorld((*sceneHost)(s), physics.DefaultConfig())
	s.root.setScene(s)
	return s
}

// NewSceneWithConfig creates a scene with the given physics tunables.
func NewSceneWithConfig(cfg physics.Config) (*Scene, error) {
	s := NewScene()
	if err := s.world.SetConfig(cfg); err != nil {
		return nil, fmt.Errorf("canopy: %w", err)
	}
	return s, nil
}

// Root returns the scene's root object.
func (s *Scene) Root() *GameObject {
	return s.root
}

// World returns the scene's physics world.
func (s *Scene) World() *physics.World {
	return s.world
}

// Object returns the live object with the given ID, or nil.
func (s *Scene) Object(id uint32) *GameObject {
	return s.objects[physics.EntityID(id)]
}

// FindWithTag returns every object in the scene whose Tag equals tag, in
// tree order.
func (s *Scene) FindWithTag(tag string) []*GameObject {
	return s.root.FindWithTag(tag)
}

// SetUpdateFunc registers fn to run every Update, after components are
// updated and before bodies are stepped.
func (s *Scene) SetUpdateFunc(fn func(dt float64)) {
	s.updateFunc = fn
}

// SetEventSink forwards every collision and trigger event to sink, in
// addition to the object callbacks. Pass nil to stop forwarding.
func (s *Scene) SetEventSink(sink physics.EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, destroyed-object
// access panics, tree depth and child count warnings are printed, and
// per-tick physics stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that object
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// Update advances the scene by dt seconds. dt is clamped to the world's
// MaxDeltaTime. Pending components are started, live components updated and
// then every live RigidBody is stepped, all in tree order. Objects destroyed
// during the tick are skipped from that point on.
func (s *Scene) Update(dt float64) {
	dt = s.world.Config().ClampDelta(dt)
	s.world.ResetStats()

	s.order = s.collectLive(s.root, s.order[:0])

	for _, o := range s.order {
		for i := 0; i < len(o.components); i++ {
			c := o.components[i]
			b := c.base()
			if !b.live || b.started {
				continue
			}
			b.started = true
			if st, ok := c.(Starter); ok {
				st.Start()
			}
		}
	}

	for _, o := range s.order {
		for i := 0; i < len(o.components); i++ {
			c := o.components[i]
			if !c.base().live {
				continue
			}
			if u, ok := c.(Updater); ok {
				u.Update(dt)
			}
		}
	}

	if s.updateFunc != nil {
		s.updateFunc(dt)
	}

	for _, o := range s.order {
		if !o.live() {
			continue
		}
		rb, ok := GetComponent[*RigidBody](o)
		if !ok || !rb.live {
			continue
		}
		rb.step(s, dt)
	}

	clear(s.order)
	s.order = s.order[:0]
	s.debugLog(s.world.Stats())
}

// collectLive appends o and its live descendants in tree order. Inactive
// subtrees are skipped.
func (s *Scene) collectLive(o *GameObject, buf []*GameObject) []*GameObject {
	if !o.active {
		return buf
	}
	buf = append(buf, o)
	for _, child := range o.children {
		buf = s.collectLive(child, buf)
	}
	return buf
}

// ColliderBounds returns the world-space bounding rectangle of o's live
// Collider.
func (s *Scene) ColliderBounds(o *GameObject) (Rect, bool) {
	c, ok := GetComponent[*Collider](o)
	if !ok || !c.live {
		return Rect{}, false
	}
	return boundsRect(s.world.Bounds(&c.Collider)), true
}

// CollidersIn returns the objects, in tree order, whose live Collider bounds
// intersect r. Circles are tested by their bounding square.
func (s *Scene) CollidersIn(r Rect) []*GameObject {
	return s.queryColliders(func(b Rect) bool { return b.Intersects(r) })
}

// CollidersAt returns the objects, in tree order, whose live Collider bounds
// contain the world point (x, y). Circles are tested by their bounding
// square.
func (s *Scene) CollidersAt(x, y float64) []*GameObject {
	return s.queryColliders(func(b Rect) bool { return b.Contains(x, y) })
}

func (s *Scene) queryColliders(match func(Rect) bool) []*GameObject {
	var out []*GameObject
	for _, o := range s.collectLive(s.root, nil) {
		if b, ok := s.ColliderBounds(o); ok && match(b) {
			out = append(out, o)
		}
	}
	return out
}

// Draw clears the screen to ClearColor and draws the collider overlay when
// ShowColliders is set.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}
	if s.ShowColliders {
		DrawColliders(screen, s)
	}
}

func (s *Scene) remember(o *GameObject) {
	s.objects[physics.EntityID(o.ID)] = o
}

func (s *Scene) forget(o *GameObject) {
	id := physics.EntityID(o.ID)
	if s.objects[id] == o {
		delete(s.objects, id)
	}
}
