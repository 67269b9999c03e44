package sparsecs

import "reflect"

// resourceStore manages the world's singleton resources, at most one instance
// per type. It uses a slice for storage, a map for quick type to ID mapping,
// and a free list for ID reuse, giving O(1) operations with minimal
// allocations.
type resourceStore struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// put stores res under t, returning its ID. A resource of the same type is
// overwritten in place, keeping its ID.
func (r *resourceStore) put(t reflect.Type, res any) int {
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if id, ok := r.types[t]; ok {
		r.items[id] = res
		return id
	}
	var id int
	if len(r.freeIDs) > 0 {
		id = r.freeIDs[len(r.freeIDs)-1]
		r.freeIDs = r.freeIDs[:len(r.freeIDs)-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

func (r *resourceStore) get(t reflect.Type) (any, bool) {
	id, ok := r.types[t]
	if !ok {
		return nil, false
	}
	return r.items[id], true
}

// remove evicts the resource of type t if present, marking its ID as free for
// reuse.
func (r *resourceStore) remove(t reflect.Type) {
	id, ok := r.types[t]
	if !ok {
		return
	}
	delete(r.types, t)
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
}

func (r *resourceStore) clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}

// AddResource stores a singleton value of type T, independent of any entity.
// Adding a resource whose type is already present overwrites the previous
// value (duplicate adds are last-write-wins, unlike component attaches).
func AddResource[T any](w *World, res T) {
	w.resources.put(reflect.TypeOf((*T)(nil)).Elem(), &res)
}

// GetResource returns a pointer to the resource of type T, or (nil, false)
// when absent. The pointer stays valid until the resource is overwritten or
// removed.
func GetResource[T any](w *World) (*T, bool) {
	v, ok := w.resources.get(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](w *World) bool {
	_, ok := w.resources.get(reflect.TypeOf((*T)(nil)).Elem())
	return ok
}

// RemoveResource evicts the resource of type T. No-op when absent.
func RemoveResource[T any](w *World) {
	w.resources.remove(reflect.TypeOf((*T)(nil)).Elem())
}
