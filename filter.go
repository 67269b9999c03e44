package sparsecs

// Filter iterates over all entities holding a component of type T. It walks
// the component column's dense owner array directly, so iteration order is the
// column's insertion order at call time. Nothing is materialized in the World;
// each filter recomputes its matches as it walks.
//
// Structural mutation of the store (adding or removing entities or components
// of the filtered types) while iterating is undefined; materialize with
// Entities first if systems need to mutate while walking.
type Filter[T any] struct {
	world *World
	col   *column[T]
	idx   int
}

// NewFilter creates a filter over all entities with a component of type T.
//
// Example:
//
//	f := sparsecs.NewFilter[Position](world)
//	for f.Next() {
//	    f.Get().X += 1
//	}
func NewFilter[T any](w *World) *Filter[T] {
	col, _ := columnFor[T](w)
	return &Filter[T]{world: w, col: col, idx: -1}
}

// Reset rewinds the filter to the beginning for another pass.
func (f *Filter[T]) Reset() {
	f.idx = -1
}

// Next advances to the next matching entity. It must be called before Entity
// or Get, and returns false when the iteration is complete.
func (f *Filter[T]) Next() bool {
	f.idx++
	return f.idx < len(f.col.owners)
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter[T]) Entity() Entity {
	return f.col.owners[f.idx]
}

// Get returns a pointer to the current entity's T component. Only valid after
// Next returned true.
func (f *Filter[T]) Get() *T {
	return &f.col.dense[f.idx]
}

// First returns the first matching entity, or NullEntity if none match.
func (f *Filter[T]) First() Entity {
	if len(f.col.owners) == 0 {
		return NullEntity
	}
	return f.col.owners[0]
}

// Entities returns a fresh slice of all matching entities. Safe to hold while
// mutating the store.
func (f *Filter[T]) Entities() []Entity {
	out := make([]Entity, len(f.col.owners))
	copy(out, f.col.owners)
	return out
}

// Filter2 iterates over all entities holding components of both type A and
// type B. It is driven by A's column and checks each candidate's membership
// mask, so A should be the rarer component when that is known.
type Filter2[A, B any] struct {
	world *World
	colA  *column[A]
	colB  *column[B]
	mask  bitmask256
	ent   Entity
	idx   int
}

// NewFilter2 creates a filter over all entities with components A and B.
func NewFilter2[A, B any](w *World) *Filter2[A, B] {
	colA, idA := columnFor[A](w)
	colB, idB := columnFor[B](w)
	var m bitmask256
	m.set(idA)
	m.set(idB)
	return &Filter2[A, B]{world: w, colA: colA, colB: colB, mask: m, idx: -1}
}

// Reset rewinds the filter to the beginning for another pass.
func (f *Filter2[A, B]) Reset() {
	f.idx = -1
}

// Next advances to the next entity holding both components.
func (f *Filter2[A, B]) Next() bool {
	for {
		f.idx++
		if f.idx >= len(f.colA.owners) {
			return false
		}
		e := f.colA.owners[f.idx]
		if m, ok := f.world.entities.maskAt(e); ok && m.contains(f.mask) {
			f.ent = e
			return true
		}
	}
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter2[A, B]) Entity() Entity {
	return f.ent
}

// Get returns pointers to the current entity's A and B components. Only valid
// after Next returned true.
func (f *Filter2[A, B]) Get() (*A, *B) {
	b, _ := f.colB.get(f.ent)
	return &f.colA.dense[f.idx], b
}

// First returns the first matching entity, or NullEntity if none match.
func (f *Filter2[A, B]) First() Entity {
	f.Reset()
	if f.Next() {
		return f.ent
	}
	return NullEntity
}

// Entities returns a fresh slice of all matching entities. Safe to hold while
// mutating the store.
func (f *Filter2[A, B]) Entities() []Entity {
	var out []Entity
	for _, e := range f.colA.owners {
		if m, ok := f.world.entities.maskAt(e); ok && m.contains(f.mask) {
			out = append(out, e)
		}
	}
	return out
}

// Filter3 iterates over all entities holding components of types A, B and C.
type Filter3[A, B, C any] struct {
	world *World
	colA  *column[A]
	colB  *column[B]
	colC  *column[C]
	mask  bitmask256
	ent   Entity
	idx   int
}

// NewFilter3 creates a filter over all entities with components A, B and C.
func NewFilter3[A, B, C any](w *World) *Filter3[A, B, C] {
	colA, idA := columnFor[A](w)
	colB, idB := columnFor[B](w)
	colC, idC := columnFor[C](w)
	var m bitmask256
	m.set(idA)
	m.set(idB)
	m.set(idC)
	return &Filter3[A, B, C]{world: w, colA: colA, colB: colB, colC: colC, mask: m, idx: -1}
}

// Reset rewinds the filter to the beginning for another pass.
func (f *Filter3[A, B, C]) Reset() {
	f.idx = -1
}

// Next advances to the next entity holding all three components.
func (f *Filter3[A, B, C]) Next() bool {
	for {
		f.idx++
		if f.idx >= len(f.colA.owners) {
			return false
		}
		e := f.colA.owners[f.idx]
		if m, ok := f.world.entities.maskAt(e); ok && m.contains(f.mask) {
			f.ent = e
			return true
		}
	}
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter3[A, B, C]) Entity() Entity {
	return f.ent
}

// Get returns pointers to the current entity's A, B and C components. Only
// valid after Next returned true.
func (f *Filter3[A, B, C]) Get() (*A, *B, *C) {
	b, _ := f.colB.get(f.ent)
	c, _ := f.colC.get(f.ent)
	return &f.colA.dense[f.idx], b, c
}

// First returns the first matching entity, or NullEntity if none match.
func (f *Filter3[A, B, C]) First() Entity {
	f.Reset()
	if f.Next() {
		return f.ent
	}
	return NullEntity
}

// Entities returns a fresh slice of all matching entities. Safe to hold while
// mutating the store.
func (f *Filter3[A, B, C]) Entities() []Entity {
	var out []Entity
	for _, e := range f.colA.owners {
		if m, ok := f.world.entities.maskAt(e); ok && m.contains(f.mask) {
			out = append(out, e)
		}
	}
	return out
}
