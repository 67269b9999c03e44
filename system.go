package sparsecs

import "reflect"

// System is one unit of per-tick logic. Update receives the World the system
// was registered in and may freely query and mutate it; structural mutation of
// a column being iterated is the caller's responsibility (materialize first).
type System interface {
	Update(w *World)
}

// systemPtr constrains a system type parameter to "pointer to T implementing
// System", so AddSystem can construct the instance itself.
type systemPtr[T any] interface {
	*T
	System
}

// systemInfo is one registered system: the erased instance plus its run flag.
type systemInfo struct {
	sys    System
	active bool
}

// systemRegistry keeps systems in a strict registration order. Pausing leaves
// the order slot in place; only removal forfeits it.
type systemRegistry struct {
	order []reflect.Type
	infos map[reflect.Type]*systemInfo
}

func (r *systemRegistry) setActive(key reflect.Type, active bool) {
	if info, ok := r.infos[key]; ok {
		info.active = active
	}
}

// AddSystem constructs one instance of T, registers it under T's type key at
// the end of the run order, and starts it active. Adding a system type that is
// already registered is a no-op returning the existing instance. The returned
// pointer can be used to seed the system's state before the first tick.
func AddSystem[T any, PT systemPtr[T]](w *World) PT {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if info, ok := w.systems.infos[key]; ok {
		return info.sys.(PT)
	}
	sys := PT(new(T))
	w.systems.infos[key] = &systemInfo{sys: sys, active: true}
	w.systems.order = append(w.systems.order, key)
	return sys
}

// RemoveSystem unregisters the system of type T, forfeiting its position in
// the run order; a later re-add places it at the end. No-op when T is not
// registered.
func RemoveSystem[T any](w *World) {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := w.systems.infos[key]; !ok {
		return
	}
	delete(w.systems.infos, key)
	for i, k := range w.systems.order {
		if k == key {
			w.systems.order = append(w.systems.order[:i], w.systems.order[i+1:]...)
			break
		}
	}
}

// PauseSystem stops the system of type T from running on subsequent ticks. Its
// position in the run order is kept, so resuming restores the original order.
// No-op when T is not registered.
func PauseSystem[T any](w *World) {
	w.systems.setActive(reflect.TypeOf((*T)(nil)).Elem(), false)
}

// ResumeSystem reactivates a paused system of type T in place. No-op when T is
// not registered.
func ResumeSystem[T any](w *World) {
	w.systems.setActive(reflect.TypeOf((*T)(nil)).Elem(), true)
}

// HasSystem reports whether a system of type T is registered, paused or not.
func HasSystem[T any](w *World) bool {
	_, ok := w.systems.infos[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}
