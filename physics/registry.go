package physics

import "strconv"

// ColliderID is a generational handle into a Registry. A handle goes stale
// once its collider is unregistered; a stale handle never aliases a later
// registration that reuses the slot.
type ColliderID uint64

const colliderIndexBits = 32

func makeColliderID(index, gen uint32) ColliderID {
	return ColliderID(uint64(gen)<<colliderIndexBits | uint64(index+1))
}

func (id ColliderID) index() (uint32, bool) {
	i := uint32(id)
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

func (id ColliderID) generation() uint32 {
	return uint32(uint64(id) >> colliderIndexBits)
}

// Valid reports whether id could refer to a registered collider.
func (id ColliderID) Valid() bool {
	return uint32(id) != 0
}

func (id ColliderID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

type registrySlot struct {
	collider *Collider
	gen      uint32
	dense    int // position in Registry.dense, -1 when free
}

// Registry is the set of live colliders in one simulation. Register and
// Unregister are O(1); iteration is O(n) with no spatial partitioning.
type Registry struct {
	slots []registrySlot
	free  []uint32
	dense []ColliderID
	index map[*Collider]ColliderID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[*Collider]ColliderID)}
}

// Register adds c to the live set and returns its handle. Registering a
// collider that is already live returns the existing handle.
func (r *Registry) Register(c *Collider) ColliderID {
	if c == nil {
		return 0
	}
	if id, ok := r.index[c]; ok {
		return id
	}
	var i uint32
	if n := len(r.free); n > 0 {
		i = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		i = uint32(len(r.slots))
		r.slots = append(r.slots, registrySlot{dense: -1})
	}
	s := &r.slots[i]
	s.collider = c
	s.dense = len(r.dense)
	id := makeColliderID(i, s.gen)
	r.dense = append(r.dense, id)
	r.index[c] = id
	return id
}

// Unregister removes the collider behind id. It reports whether anything was
// removed; stale or unknown handles are a no-op.
func (r *Registry) Unregister(id ColliderID) bool {
	s := r.slot(id)
	if s == nil {
		return false
	}
	last := len(r.dense) - 1
	moved := r.dense[last]
	r.dense[s.dense] = moved
	if mi, ok := moved.index(); ok {
		r.slots[mi].dense = s.dense
	}
	r.dense = r.dense[:last]

	i, _ := id.index()
	delete(r.index, s.collider)
	s.collider = nil
	s.dense = -1
	s.gen++
	r.free = append(r.free, i)
	return true
}

// UnregisterCollider removes c if it is live.
func (r *Registry) UnregisterCollider(c *Collider) bool {
	id, ok := r.index[c]
	if !ok {
		return false
	}
	return r.Unregister(id)
}

// Lookup returns the handle of c if it is live.
func (r *Registry) Lookup(c *Collider) (ColliderID, bool) {
	id, ok := r.index[c]
	return id, ok
}

// Get returns the collider behind id.
func (r *Registry) Get(id ColliderID) (*Collider, bool) {
	s := r.slot(id)
	if s == nil {
		return nil, false
	}
	return s.collider, true
}

// Contains reports whether id refers to a live collider.
func (r *Registry) Contains(id ColliderID) bool {
	return r.slot(id) != nil
}

// Len returns the number of live colliders.
func (r *Registry) Len() int {
	return len(r.dense)
}

// All returns a snapshot of the live handles. Mutating the registry while
// ranging over the snapshot is safe.
func (r *Registry) All() []ColliderID {
	return append([]ColliderID(nil), r.dense...)
}

// Each calls fn for every live collider, over a snapshot taken on entry.
// Colliders unregistered by fn before their turn are skipped. Iteration stops
// when fn returns false.
func (r *Registry) Each(fn func(id ColliderID, c *Collider) bool) {
	for _, id := range r.All() {
		c, ok := r.Get(id)
		if !ok {
			continue
		}
		if !fn(id, c) {
			return
		}
	}
}

// appendLive appends the live colliders to buf, in dense order.
func (r *Registry) appendLive(buf []*Collider) []*Collider {
	for _, id := range r.dense {
		i, _ := id.index()
		buf = append(buf, r.slots[i].collider)
	}
	return buf
}

func (r *Registry) slot(id ColliderID) *registrySlot {
	i, ok := id.index()
	if !ok || int(i) >= len(r.slots) {
		return nil
	}
	s := &r.slots[i]
	if s.dense < 0 || s.gen != id.generation() {
		return nil
	}
	return s
}
