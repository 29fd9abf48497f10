package canopy

// --- ID counter ---

// objectIDCounter is a plain counter; canopy is single-threaded.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// --- GameObject ---

// GameObject is the fundamental scene element. It carries a local transform,
// an ordered list of children, and the components that give it behavior.
type GameObject struct {
	// Identity
	ID   uint32
	Name string
	Tag  string

	// Hierarchy
	Parent   *GameObject
	children []*GameObject

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// SpriteWidth and SpriteHeight are the natural size of the object's
	// visual. Auto-sized colliders use them as their extent. Zero means the
	// object has no sprite.
	SpriteWidth  float64
	SpriteHeight float64

	// Metadata
	UserData any

	// Per-object collision callbacks (nil by default). other is nil when the
	// partner has already been destroyed.
	OnCollisionEnter func(other *GameObject)
	OnCollisionStay  func(other *GameObject)
	OnCollisionExit  func(other *GameObject)
	OnTriggerEnter   func(other *GameObject)
	OnTriggerStay    func(other *GameObject)
	OnTriggerExit    func(other *GameObject)

	components []Component
	scene      *Scene
	active     bool
	destroyed  bool
}

// NewGameObject creates an active, empty game object.
func NewGameObject(name string) *GameObject {
	return &GameObject{
		ID:     nextObjectID(),
		Name:   name,
		ScaleX: 1,
		ScaleY: 1,
		active: true,
	}
}

// Scene returns the scene the object is part of, or nil if it is detached.
func (o *GameObject) Scene() *Scene {
	return o.scene
}

// --- Activation ---

// Active reports the object's own active flag.
func (o *GameObject) Active() bool {
	return o.active
}

// ActiveInHierarchy reports whether the object and all of its ancestors are
// active.
func (o *GameObject) ActiveInHierarchy() bool {
	for p := o; p != nil; p = p.Parent {
		if !p.active {
			return false
		}
	}
	return true
}

// SetActive enables or disables the object. Inactive objects are not
// updated, their colliders leave the registry and their bodies stop.
func (o *GameObject) SetActive(active bool) {
	if o.active == active {
		return
	}
	o.active = active
	walkSubtree(o, (*GameObject).syncLive)
}

// live reports whether the object's components should be running.
func (o *GameObject) live() bool {
	return o.scene != nil && !o.destroyed && o.ActiveInHierarchy()
}

func (o *GameObject) syncLive() {
	live := o.live()
	for _, c := range o.components {
		setComponentLive(o.scene, c, live)
	}
}

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this object (cycle).
func (o *GameObject) AddChild(child *GameObject) {
	if child == nil {
		panic("canopy: cannot add nil child")
	}
	if globalDebug {
		debugCheckDestroyed(o, "AddChild (parent)")
		debugCheckDestroyed(child, "AddChild (child)")
	}
	if isAncestor(child, o) {
		panic("canopy: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.detachChild(child)
	}
	child.Parent = o
	o.children = append(o.children, child)
	child.setScene(o.scene)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(o)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (o *GameObject) AddChildAt(child *GameObject, index int) {
	if child == nil {
		panic("canopy: cannot add nil child")
	}
	if isAncestor(child, o) {
		panic("canopy: adding child would create a cycle")
	}
	if child.Parent == o {
		o.removeChildByPtr(child)
	} else if child.Parent != nil {
		child.Parent.detachChild(child)
	}
	if index < 0 || index > len(o.children) {
		panic("canopy: child index out of range")
	}
	child.Parent = o
	o.children = append(o.children, nil)
	copy(o.children[index+1:], o.children[index:])
	o.children[index] = child
	child.setScene(o.scene)
}

// RemoveChild detaches child from this object.
// Panics if child.Parent != o.
func (o *GameObject) RemoveChild(child *GameObject) {
	if child.Parent != o {
		panic("canopy: child's parent is not this object")
	}
	o.detachChild(child)
}

// RemoveFromParent detaches this object from its parent.
// No-op if this object has no parent.
func (o *GameObject) RemoveFromParent() {
	if o.Parent == nil {
		return
	}
	o.Parent.RemoveChild(o)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (o *GameObject) Children() []*GameObject {
	return o.children
}

// NumChildren returns the number of children.
func (o *GameObject) NumChildren() int {
	return len(o.children)
}

// ChildAt returns the child at the given index.
func (o *GameObject) ChildAt(index int) *GameObject {
	return o.children[index]
}

// Find returns the first descendant (depth-first, excluding o) with the
// given name, or nil.
func (o *GameObject) Find(name string) *GameObject {
	for _, c := range o.children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindWithTag returns every descendant (depth-first, excluding o) whose Tag
// equals tag.
func (o *GameObject) FindWithTag(tag string) []*GameObject {
	var out []*GameObject
	for _, c := range o.children {
		walkSubtree(c, func(d *GameObject) {
			if d.Tag == tag {
				out = append(out, d)
			}
		})
	}
	return out
}

// --- Destruction ---

// Destroy removes this object from its parent, stops all of its components
// and recursively destroys all descendants. Safe to call from a collision
// callback.
func (o *GameObject) Destroy() {
	if o.destroyed {
		return
	}
	o.RemoveFromParent()
	o.destroy()
}

func (o *GameObject) destroy() {
	for _, child := range o.children {
		child.Parent = nil
		child.destroy()
	}
	o.setScene(nil)
	for _, c := range o.components {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
		c.base().owner = nil
	}
	o.destroyed = true
	o.ID = 0
	o.children = nil
	o.components = nil
	o.Parent = nil
	o.UserData = nil
	o.OnCollisionEnter = nil
	o.OnCollisionStay = nil
	o.OnCollisionExit = nil
	o.OnTriggerEnter = nil
	o.OnTriggerStay = nil
	o.OnTriggerExit = nil
}

// IsDestroyed returns true if this object has been destroyed.
func (o *GameObject) IsDestroyed() bool {
	return o.destroyed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of obj.
func isAncestor(candidate, obj *GameObject) bool {
	for p := obj; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// detachChild removes child from o and takes its subtree out of the scene.
func (o *GameObject) detachChild(child *GameObject) {
	o.removeChildByPtr(child)
	child.Parent = nil
	child.setScene(nil)
}

// removeChildByPtr removes child from o.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (o *GameObject) removeChildByPtr(child *GameObject) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}

// setScene moves the subtree rooted at o into s (or out of any scene when s
// is nil), registering and unregistering it as needed.
//
// A leaving object stays resolvable in its old scene until its components
// have gone dormant, so exits raised on the way out reach it.
func (o *GameObject) setScene(s *Scene) {
	walkSubtree(o, func(d *GameObject) {
		old := d.scene
		if old != s {
			d.scene = s
			if s != nil {
				s.remember(d)
			}
		}
		d.syncLive()
		if old != nil && old != s {
			old.forget(d)
		}
	})
}

// walkSubtree calls fn for o and every descendant, parents before children.
func walkSubtree(o *GameObject, fn func(*GameObject)) {
	fn(o)
	for _, child := range o.children {
		walkSubtree(child, fn)
	}
}
