package sparsecs

// Entity is an opaque identifier naming a bundle of components. Entities carry
// no payload of their own; all data lives in the World's component columns.
type Entity uint32

// NullEntity is the reserved "no entity" sentinel. It is never issued by
// CreateEntity and is returned by lookups that found nothing.
const NullEntity Entity = 0

// firstEntityID is the id issued to the first entity of a session.
const firstEntityID Entity = 1

// entityIndex is the live-entity sparse set. The dense array keeps entities in
// creation order; the parallel masks array records which component type bits
// each entity currently holds. Removal swaps with the last slot and reindexes
// whichever entity was moved, never the removed one.
type entityIndex struct {
	dense  []Entity
	masks  []bitmask256
	sparse map[Entity]int
}

func (x *entityIndex) add(e Entity) {
	x.dense = append(x.dense, e)
	x.masks = append(x.masks, bitmask256{})
	x.sparse[e] = len(x.dense) - 1
}

func (x *entityIndex) remove(e Entity) bool {
	idx, ok := x.sparse[e]
	if !ok {
		return false
	}
	last := len(x.dense) - 1
	if idx < last {
		moved := x.dense[last]
		x.dense[idx] = moved
		x.masks[idx] = x.masks[last]
		x.sparse[moved] = idx
	}
	x.dense = x.dense[:last]
	x.masks = x.masks[:last]
	delete(x.sparse, e)
	return true
}

func (x *entityIndex) has(e Entity) bool {
	_, ok := x.sparse[e]
	return ok
}

// maskAt returns a pointer into the masks array. It is invalidated by any
// add or remove on the index.
func (x *entityIndex) maskAt(e Entity) (*bitmask256, bool) {
	idx, ok := x.sparse[e]
	if !ok {
		return nil, false
	}
	return &x.masks[idx], true
}

func (x *entityIndex) clear() {
	x.dense = x.dense[:0]
	x.masks = x.masks[:0]
	clear(x.sparse)
}

// CreateEntity allocates a fresh entity with no components. Ids increase
// monotonically and are never reused within a session.
func (w *World) CreateEntity() Entity {
	e := w.nextEntity
	w.nextEntity++
	w.entities.add(e)
	return e
}

// RemoveEntity detaches every component the entity holds, then drops it from
// the live set. Removing an entity that is not live is a no-op.
func (w *World) RemoveEntity(e Entity) {
	m, ok := w.entities.maskAt(e)
	if !ok {
		return
	}
	mask := *m
	mask.eachBit(func(id uint8) {
		w.columns[id].removeEntity(e)
	})
	w.entities.remove(e)
}

// HasEntity reports whether the entity is in the live set.
func (w *World) HasEntity(e Entity) bool {
	return w.entities.has(e)
}

// CountEntities returns the number of live entities.
func (w *World) CountEntities() int {
	return len(w.entities.dense)
}

// CopyEntity allocates a new entity and copies the value of every component
// attached to src onto it. The copy shares no storage with the source: later
// mutation of either entity's components leaves the other untouched (component
// types holding reference fields are copied shallowly, as with any Go value
// assignment). Returns NullEntity if src is not live.
func (w *World) CopyEntity(src Entity) Entity {
	m, ok := w.entities.maskAt(src)
	if !ok {
		return NullEntity
	}
	mask := *m
	dst := w.CreateEntity()
	mask.eachBit(func(id uint8) {
		w.columns[id].copyValue(src, dst)
	})
	dstMask, _ := w.entities.maskAt(dst)
	*dstMask = mask
	return dst
}

// Entities returns the live entities in creation order. The slice is owned by
// the World and is invalidated by entity creation or removal; copy it if you
// intend to mutate the store while walking it.
func (w *World) Entities() []Entity {
	return w.entities.dense
}
