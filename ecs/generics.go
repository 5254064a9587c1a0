package ecs

import "github.com/milk9111/wipsidescroller/ecs/component"

// Add sets the component for e, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil {
		return component.ErrNilWorld
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	set, err := storeFor(w, handle.Kind(), true)
	if err != nil {
		return err
	}
	set.set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	set, err := storeFor(w, handle.Kind(), false)
	if err != nil || set == nil {
		return false
	}
	return set.remove(e.id())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := GetPtr(w, e, handle)
	return ok
}

// Get returns a copy of the component for e.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	ptr, ok := GetPtr(w, e, handle)
	if !ok {
		return zero, false
	}
	return *ptr, true
}

// GetPtr returns a pointer into the store. It is valid until the next Add or
// Remove of the same kind.
func GetPtr[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	set, err := storeFor(w, handle.Kind(), false)
	if err != nil || set == nil {
		return nil, false
	}
	return set.get(e.id())
}

// ForEach calls fn for every live entity holding the component. fn must not
// add or remove components of the same kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.Query(handle.Kind()) {
		if ptr, ok := GetPtr(w, e, handle); ok {
			fn(e, ptr)
		}
	}
}

// ForEach2 calls fn for every live entity holding both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ha.Kind(), hb.Kind()) {
		a, okA := GetPtr(w, e, ha)
		b, okB := GetPtr(w, e, hb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
