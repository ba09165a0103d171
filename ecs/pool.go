package ecs

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// iPool is the type-erased view of a Pool the Registry keeps per component id.
// Typed access goes through the generic helpers in components.go.
type iPool interface {
	removeEntity(id EntityId)
	clear()
	size() int
	has(id EntityId) bool
	getAny(id EntityId) any
	setAny(id EntityId, value any)
}

// Pool stores the components of a single type packed in a dense slice.
// Removing an entry moves the last element into the freed slot so the
// backing slice never has holes.
type Pool[T any] struct {
	data     []T
	entities []EntityId
	indices  *intmap.Map[EntityId, int]
}

// NewPool creates a pool with room for capacity components.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool[T]{
		data:     make([]T, 0, capacity),
		entities: make([]EntityId, 0, capacity),
		indices:  intmap.New[EntityId, int](capacity),
	}
}

// Set stores value for the entity, overwriting in place if one already exists.
func (p *Pool[T]) Set(id EntityId, value T) {
	if index, ok := p.indices.Get(id); ok {
		p.data[index] = value
		return
	}

	p.indices.Put(id, len(p.data))
	p.data = append(p.data, value)
	p.entities = append(p.entities, id)
}

// Remove deletes the entity's component. Missing entries are ignored.
func (p *Pool[T]) Remove(id EntityId) {
	index, ok := p.indices.Get(id)
	if !ok {
		return
	}

	last := len(p.data) - 1
	if index != last {
		moved := p.entities[last]
		p.data[index] = p.data[last]
		p.entities[index] = moved
		p.indices.Put(moved, index)
	}

	var zero T
	p.data[last] = zero
	p.data = p.data[:last]
	p.entities = p.entities[:last]
	p.indices.Del(id)
}

// Get returns a pointer to the entity's component. The pointer is only valid
// until the next Set of a new entity or Remove on this pool.
func (p *Pool[T]) Get(id EntityId) (*T, error) {
	index, ok := p.indices.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s on entity %d", ErrComponentNotFound, reflect.TypeFor[T](), id)
	}
	return &p.data[index], nil
}

// Has reports whether the entity has a component in this pool.
func (p *Pool[T]) Has(id EntityId) bool {
	return p.indices.Has(id)
}

// Size returns the number of stored components.
func (p *Pool[T]) Size() int {
	return len(p.data)
}

// IsEmpty reports whether the pool holds no components.
func (p *Pool[T]) IsEmpty() bool {
	return len(p.data) == 0
}

// Clear drops every component while keeping the allocated capacity.
func (p *Pool[T]) Clear() {
	clear(p.data)
	p.data = p.data[:0]
	p.entities = p.entities[:0]
	p.indices.Clear()
}

// Entities returns the owning entity ids in packed order.
func (p *Pool[T]) Entities() []EntityId {
	out := make([]EntityId, len(p.entities))
	copy(out, p.entities)
	return out
}

// All iterates the packed components in storage order.
// The pool must not be modified structurally during iteration.
func (p *Pool[T]) All() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := range p.data {
			if !yield(p.entities[i], &p.data[i]) {
				return
			}
		}
	}
}

func (p *Pool[T]) removeEntity(id EntityId) { p.Remove(id) }
func (p *Pool[T]) clear()                   { p.Clear() }
func (p *Pool[T]) size() int                { return p.Size() }
func (p *Pool[T]) has(id EntityId) bool     { return p.Has(id) }

func (p *Pool[T]) getAny(id EntityId) any {
	index, ok := p.indices.Get(id)
	if !ok {
		return nil
	}
	return &p.data[index]
}

func (p *Pool[T]) setAny(id EntityId, value any) {
	switch v := value.(type) {
	case T:
		p.Set(id, v)
	case *T:
		p.Set(id, *v)
	default:
		panic(fmt.Sprintf("value of type %T stored in pool of %s", value, reflect.TypeFor[T]()))
	}
}
