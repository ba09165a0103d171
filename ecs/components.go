package ecs

import (
	"fmt"
	"reflect"
)

// pool returns the typed pool for T, creating it on first use.
func pool[T any](r *Registry) (*Pool[T], ComponentId) {
	id := RegisterComponent[T](r.components)
	if int(id) >= len(r.pools) {
		r.pools = append(r.pools, make([]iPool, int(id)+1-len(r.pools))...)
	}
	if r.pools[id] == nil {
		r.pools[id] = r.components.poolFactory(id)(r.poolCapacity)
	}
	return r.pools[id].(*Pool[T]), id
}

// ComponentPool returns the packed pool holding every T, for bulk iteration.
func ComponentPool[T any](r *Registry) *Pool[T] {
	p, _ := pool[T](r)
	return p
}

// AddComponent attaches value to the entity, replacing an existing T.
// The change is visible immediately; an active entity is re-matched
// against every system.
func AddComponent[T any](e Entity, value T) {
	r := e.registry
	if !r.known(e.id) {
		r.logger.Warn("component added to dead entity ignored", "entity", e.id, "component", reflect.TypeFor[T]().String())
		return
	}

	p, id := pool[T](r)
	p.Set(e.id, value)
	r.signatures[e.id] = r.signatures[e.id].Set(id)
	r.rematch(e.id)

	r.logger.Debug("component added", "entity", e.id, "component", id, "pool_size", p.Size())
}

// RemoveComponent detaches T from the entity. Missing components are ignored.
func RemoveComponent[T any](e Entity) {
	r := e.registry
	if !r.known(e.id) {
		return
	}
	id, ok := ComponentIdOf[T](r.components)
	if !ok || !r.signatures[e.id].Test(id) {
		return
	}

	r.pools[id].removeEntity(e.id)
	r.signatures[e.id] = r.signatures[e.id].Unset(id)
	r.rematch(e.id)

	r.logger.Debug("component removed", "entity", e.id, "component", id)
}

// HasComponent reports whether the entity holds a T.
func HasComponent[T any](e Entity) bool {
	r := e.registry
	id, ok := ComponentIdOf[T](r.components)
	if !ok || int(e.id) >= len(r.signatures) {
		return false
	}
	return r.signatures[e.id].Test(id)
}

// GetComponent returns a pointer to the entity's T. The error wraps
// ErrComponentNotFound when the entity has none.
func GetComponent[T any](e Entity) (*T, error) {
	if !HasComponent[T](e) {
		return nil, fmt.Errorf("%w: %s on entity %d", ErrComponentNotFound, reflect.TypeFor[T](), e.id)
	}
	p, _ := pool[T](e.registry)
	return p.Get(e.id)
}

// MustGetComponent is GetComponent for callers that already know the entity
// has T, typically systems iterating their own matches. It panics otherwise.
func MustGetComponent[T any](e Entity) *T {
	c, err := GetComponent[T](e)
	if err != nil {
		panic(err)
	}
	return c
}

// addComponentAny attaches a component whose type is only known at runtime.
// The type must already be registered.
func (r *Registry) addComponentAny(e Entity, t reflect.Type, value any) {
	id, ok := r.components.IdOf(t)
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	if !r.known(e.id) {
		r.logger.Warn("component added to dead entity ignored", "entity", e.id, "component", t.String())
		return
	}
	if int(id) >= len(r.pools) {
		r.pools = append(r.pools, make([]iPool, int(id)+1-len(r.pools))...)
	}
	if r.pools[id] == nil {
		r.pools[id] = r.components.poolFactory(id)(r.poolCapacity)
	}

	r.pools[id].setAny(e.id, value)
	r.signatures[e.id] = r.signatures[e.id].Set(id)
	r.rematch(e.id)
}
