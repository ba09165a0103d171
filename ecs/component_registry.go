package ecs

import (
	"fmt"
	"reflect"
)

type componentInfo struct {
	typ     reflect.Type
	newPool func(capacity int) iPool
}

// ComponentRegistry assigns component ids in registration order.
// Every Registry owns one unless a shared registry is passed with
// WithComponentRegistry, so ids never leak between independent registries.
type ComponentRegistry struct {
	ids   map[reflect.Type]ComponentId
	infos []componentInfo
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		ids: make(map[reflect.Type]ComponentId),
	}
}

// RegisterComponent returns the id of component type T, allocating the next
// free id the first time T is seen. Later calls return the cached id.
// Panics with ErrCapacityExceeded once more than MaxComponents types are used.
func RegisterComponent[T any](r *ComponentRegistry) ComponentId {
	t := reflect.TypeFor[T]()
	if id, ok := r.ids[t]; ok {
		return id
	}

	if t.Kind() == reflect.Ptr || t.Kind() == reflect.Interface {
		panic("component type " + t.String() + " must be a value type")
	}

	if len(r.infos) >= MaxComponents {
		panic(fmt.Errorf("%w: registering %s would exceed %d component types", ErrCapacityExceeded, t, MaxComponents))
	}

	id := ComponentId(len(r.infos))
	r.ids[t] = id
	r.infos = append(r.infos, componentInfo{
		typ: t,
		newPool: func(capacity int) iPool {
			return NewPool[T](capacity)
		},
	})
	return id
}

// ComponentIdOf returns the id of T without allocating one.
func ComponentIdOf[T any](r *ComponentRegistry) (ComponentId, bool) {
	return r.IdOf(reflect.TypeFor[T]())
}

// IdOf returns the id assigned to the given type, if any.
func (r *ComponentRegistry) IdOf(t reflect.Type) (ComponentId, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// Count returns how many component types have been registered.
func (r *ComponentRegistry) Count() int {
	return len(r.infos)
}

// TypeOf returns the type registered under id, or nil.
func (r *ComponentRegistry) TypeOf(id ComponentId) reflect.Type {
	if int(id) >= len(r.infos) {
		return nil
	}
	return r.infos[id].typ
}

// Types returns all registered types ordered by id.
func (r *ComponentRegistry) Types() []reflect.Type {
	types := make([]reflect.Type, len(r.infos))
	for i, info := range r.infos {
		types[i] = info.typ
	}
	return types
}

func (r *ComponentRegistry) poolFactory(id ComponentId) func(int) iPool {
	return r.infos[id].newPool
}
