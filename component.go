package sparsecs

import (
	"fmt"
	"reflect"
)

// typeRegistry assigns a small, stable id to each component or event type the
// first time it is seen. Ids are per-World, so separate worlds never observe
// each other's assignments.
type typeRegistry struct {
	ids   map[reflect.Type]uint8
	types [MaxComponentTypes]reflect.Type
	next  uint16
}

// id registers t if needed and returns its id. Panics once the 256-type cap
// is exceeded.
func (r *typeRegistry) id(t reflect.Type) uint8 {
	if id, ok := r.ids[t]; ok {
		return id
	}
	if r.next >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: cannot register %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	id := uint8(r.next)
	r.ids[t] = id
	r.types[id] = t
	r.next++
	return id
}

// lookup returns the id for t without registering it.
func (r *typeRegistry) lookup(t reflect.Type) (uint8, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// container is the capability surface every typed column exposes to the
// non-generic parts of the World (entity removal, entity copy, clears).
type container interface {
	removeEntity(e Entity) bool
	copyValue(src, dst Entity) bool
	hasEntity(e Entity) bool
	size() int
	clear()
}

// column is the homogeneous storage for one component type: a dense value
// array, a parallel dense owner array, and a sparse entity-to-slot index.
// Invariant: dense[sparse[e]] is the value owned by e for every present e.
type column[T any] struct {
	dense  []T
	owners []Entity
	sparse map[Entity]int
}

func newColumn[T any]() *column[T] {
	return &column[T]{sparse: make(map[Entity]int, 16)}
}

// add appends a value owned by e. The caller guarantees e is not present.
func (c *column[T]) add(e Entity, v T) *T {
	c.dense = append(c.dense, v)
	c.owners = append(c.owners, e)
	c.sparse[e] = len(c.dense) - 1
	return &c.dense[len(c.dense)-1]
}

func (c *column[T]) get(e Entity) (*T, bool) {
	idx, ok := c.sparse[e]
	if !ok {
		return nil, false
	}
	return &c.dense[idx], true
}

// removeEntity swap-removes e's slot. The last element moves into the freed
// slot, and it is the moved owner's sparse entry that gets reindexed.
func (c *column[T]) removeEntity(e Entity) bool {
	idx, ok := c.sparse[e]
	if !ok {
		return false
	}
	last := len(c.dense) - 1
	if idx < last {
		moved := c.owners[last]
		c.dense[idx] = c.dense[last]
		c.owners[idx] = moved
		c.sparse[moved] = idx
	}
	var zero T
	c.dense[last] = zero // release references held by the vacated slot
	c.dense = c.dense[:last]
	c.owners = c.owners[:last]
	delete(c.sparse, e)
	return true
}

// copyValue duplicates src's value into a new slot owned by dst. No-op if src
// has no slot or dst already has one.
func (c *column[T]) copyValue(src, dst Entity) bool {
	idx, ok := c.sparse[src]
	if !ok {
		return false
	}
	if _, ok := c.sparse[dst]; ok {
		return false
	}
	c.add(dst, c.dense[idx])
	return true
}

func (c *column[T]) hasEntity(e Entity) bool {
	_, ok := c.sparse[e]
	return ok
}

func (c *column[T]) size() int {
	return len(c.dense)
}

func (c *column[T]) clear() {
	clear(c.dense)
	c.dense = c.dense[:0]
	c.owners = c.owners[:0]
	clear(c.sparse)
}

// columnFor returns the typed column for T, creating it on first use.
func columnFor[T any](w *World) (*column[T], uint8) {
	id := w.registry.id(reflect.TypeOf((*T)(nil)).Elem())
	if w.columns[id] == nil {
		w.columns[id] = newColumn[T]()
	}
	return w.columns[id].(*column[T]), id
}

// lookupColumn returns the typed column for T without creating it.
func lookupColumn[T any](w *World) (*column[T], uint8, bool) {
	id, ok := w.registry.lookup(reflect.TypeOf((*T)(nil)).Elem())
	if !ok || w.columns[id] == nil {
		return nil, 0, false
	}
	return w.columns[id].(*column[T]), id, true
}

// removeComponentID detaches the component with the given type id from e,
// clearing the membership bit. No-op if e is dead or lacks the component.
func (w *World) removeComponentID(e Entity, id uint8) {
	m, ok := w.entities.maskAt(e)
	if !ok || !m.containsBit(id) {
		return
	}
	if w.columns[id] != nil {
		w.columns[id].removeEntity(e)
	}
	m.unset(id)
}

// AddComponent attaches a component of type T to an entity and returns a
// pointer to the stored value. Attaches are first-write-wins: if the entity
// already has a T, the stored value is left untouched and a pointer to it is
// returned with false. Adding to a dead entity is a no-op returning (nil,
// false).
//
// The returned pointer is short-lived: a later add or remove of the same
// component type may move the value.
func AddComponent[T any](w *World, e Entity, v T) (*T, bool) {
	m, ok := w.entities.maskAt(e)
	if !ok {
		return nil, false
	}
	col, id := columnFor[T](w)
	if p, ok := col.get(e); ok {
		return p, false
	}
	p := col.add(e, v)
	m.set(id)
	return p, true
}

// GetComponent returns a pointer to the component of type T owned by the
// entity, or (nil, false) when the pair is absent. Callers are expected to
// have guarded with HasComponent or a filter; the pointer is invalidated by
// subsequent adds or removals of the same type.
func GetComponent[T any](w *World, e Entity) (*T, bool) {
	col, _, ok := lookupColumn[T](w)
	if !ok {
		return nil, false
	}
	return col.get(e)
}

// HasComponent reports whether the entity currently holds a component of
// type T.
func HasComponent[T any](w *World, e Entity) bool {
	id, ok := w.registry.lookup(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return false
	}
	m, ok := w.entities.maskAt(e)
	return ok && m.containsBit(id)
}

// RemoveComponent detaches the component of type T from the entity. No-op when
// the entity is dead or does not hold one.
func RemoveComponent[T any](w *World, e Entity) {
	id, ok := w.registry.lookup(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return
	}
	w.removeComponentID(e, id)
}

// CountComponents returns how many entities currently hold a component of
// type T.
func CountComponents[T any](w *World) int {
	col, _, ok := lookupColumn[T](w)
	if !ok {
		return 0
	}
	return col.size()
}
