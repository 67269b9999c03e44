package sparsecs

import "reflect"

// eventBuffers holds the two event generations. Each maps an event type id to
// a typed []T stored as any; the slices move wholesale at the tick boundary.
type eventBuffers struct {
	current map[uint8]any
	next    map[uint8]any
}

// rotate discards the visible generation and promotes the queued one. Called
// once per Update, before anything else runs.
func (b *eventBuffers) rotate() {
	clear(b.current)
	b.current, b.next = b.next, b.current
}

func (b *eventBuffers) reset() {
	clear(b.current)
	clear(b.next)
}

// entityEventKey identifies one entity-event component pending expiry.
type entityEventKey struct {
	entity Entity
	id     uint8
}

// AddEvent queues an event value of type T. The event is not visible
// immediately: it becomes readable through HasEvent and GetEvents after the
// next Update call, for exactly one tick. Events queued from inside a system
// therefore surface on the following tick, never the current one.
func AddEvent[T any](w *World, ev T) {
	id := w.registry.id(reflect.TypeOf((*T)(nil)).Elem())
	queued, _ := w.events.next[id].([]T)
	w.events.next[id] = append(queued, ev)
}

// HasEvent reports whether any events of type T are visible this tick, i.e.
// were queued before the most recent Update. The intended usage is
//
//	world.Update()
//	if sparsecs.HasEvent[Collision](world) { ... }
func HasEvent[T any](w *World) bool {
	id, ok := w.registry.lookup(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return false
	}
	visible, _ := w.events.current[id].([]T)
	return len(visible) > 0
}

// GetEvents returns the events of type T visible this tick, in the order they
// were queued, or nil if there are none. The slice is owned by the World and
// valid until the next Update.
func GetEvents[T any](w *World) []T {
	id, ok := w.registry.lookup(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return nil
	}
	visible, _ := w.events.current[id].([]T)
	return visible
}

// AddEntityEvent queues an event targeted at a single entity. At the start of
// the next Update the value is attached to the entity as a regular component
// of type T, readable by that tick's systems through the usual component API
// and by between-tick callers once Update returns; at the start of the Update
// after that it is detached again, before systems run. Net effect: the event
// appears as a component for exactly one tick.
//
// If the entity was removed before the deferred attach executes, the attach is
// silently skipped. If the entity already holds a T component of its own, the
// attach is a first-write-wins no-op and the pre-existing component is left
// alone, including by the expiry pass.
func AddEntityEvent[T any](w *World, e Entity, ev T) {
	id := w.registry.id(reflect.TypeOf((*T)(nil)).Elem())
	w.deferred = append(w.deferred, func(w *World) {
		if !w.HasEntity(e) {
			return
		}
		if _, added := AddComponent(w, e, ev); added {
			w.expiring = append(w.expiring, entityEventKey{entity: e, id: id})
		}
	})
}
