// Package sparsecs implements a sparse-set, tick-driven Entity-Component-System
// store for Go.
//
// Features:
// - Sparse-set component storage with max 256 component types.
// - Dense arrays with O(1) swap-removal, bitmask membership per entity.
// - Double-buffered event queues with a single-tick visibility delay.
// - Entity-targeted events that live as components for exactly one tick.
// - Ordered, pausable systems driven by World.Update.
// - Simple, generic component/resource/event APIs keyed by type.
//
// A World is not safe for concurrent use; all access is expected to happen
// either between ticks or from a system callback during the same tick.
package sparsecs

import "reflect"

// MaxComponentTypes defines the maximum number of unique component and event
// types that can be registered in a World. This value is fixed at 256.
const MaxComponentTypes = 256

// World is the central store for entities, components, resources, events and
// systems. The zero value is not usable; create one with NewWorld.
type World struct {
	registry  typeRegistry
	entities  entityIndex
	columns   [MaxComponentTypes]container
	events    eventBuffers
	resources resourceStore
	systems   systemRegistry
	deferred  []func(*World)
	expiring  []entityEventKey
	runOrder  []reflect.Type
	// nextEntity is the id handed out by the next CreateEntity call. It is a
	// field of the World, not package state, so separate worlds never collide.
	nextEntity Entity
}

// NewWorld creates and initializes an empty World.
func NewWorld() *World {
	w := &World{
		registry: typeRegistry{
			ids: make(map[reflect.Type]uint8, 16),
		},
		entities: entityIndex{
			sparse: make(map[Entity]int, 16),
		},
		events: eventBuffers{
			current: make(map[uint8]any),
			next:    make(map[uint8]any),
		},
		systems: systemRegistry{
			infos: make(map[reflect.Type]*systemInfo),
		},
		nextEntity: firstEntityID,
	}
	return w
}

// Update runs one tick. The fixed sequence per call is:
//
//  1. Detach entity-event components attached during the previous tick's
//     drain, so each lived for exactly one full tick.
//  2. Rotate the event buffers: the previously visible generation is
//     discarded, events queued since the last tick become visible.
//  3. Drain the deferred-action list (entity-event attaches queued since the
//     previous tick).
//  4. Run the active systems in registration order.
//
// A system running in step 4 can therefore observe an entity-event component
// attached in step 3 of the same tick; the component stays readable between
// ticks and is detached in step 1 of the next Update, before that tick's
// systems run.
func (w *World) Update() {
	for _, ee := range w.expiring {
		w.removeComponentID(ee.entity, ee.id)
	}
	w.expiring = w.expiring[:0]

	w.events.rotate()

	actions := w.deferred
	w.deferred = nil
	for _, fn := range actions {
		fn(w)
	}

	// Systems run off a snapshot of the order taken at the start of the phase:
	// a system registered mid-tick starts on the next tick, and one removed
	// mid-tick is skipped via the info lookup.
	w.runOrder = append(w.runOrder[:0], w.systems.order...)
	for _, key := range w.runOrder {
		if info, ok := w.systems.infos[key]; ok && info.active {
			info.sys.Update(w)
		}
	}
}

// Clear resets the World to the empty-store condition: all entities, systems,
// events, resources and deferred entity-event state are dropped, and the
// entity id counter restarts.
func (w *World) Clear() {
	w.ClearSystems()
	w.ClearEntities()
	w.ClearEvents()
	w.resources.clear()
}

// ClearEntities removes all entities and their components and resets the
// entity id counter. Resetting the counter means ids are reissued afterwards,
// so it is meant for the boundary between sessions or test cases, not for use
// while stale Entity handles are still held.
func (w *World) ClearEntities() {
	for i := range w.columns {
		if w.columns[i] != nil {
			w.columns[i].clear()
		}
	}
	w.entities.clear()
	w.nextEntity = firstEntityID
}

// ClearSystems unregisters every system.
func (w *World) ClearSystems() {
	w.systems.order = w.systems.order[:0]
	clear(w.systems.infos)
}

// ClearEvents drops both event generations and any pending deferred
// entity-event actions.
func (w *World) ClearEvents() {
	w.events.reset()
	w.deferred = nil
	w.expiring = w.expiring[:0]
}
