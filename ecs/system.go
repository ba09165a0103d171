package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// System is implemented by every type that embeds BaseSystem. The Registry
// keeps each system's entity list in sync with its required signature; the
// per-frame processing method is left to the concrete type.
type System interface {
	base() *BaseSystem
}

// BaseSystem holds the requirement and the matching entities of a system.
// Embed it in concrete systems and declare requirements with RequireComponent
// before handing the system to Registry.AddSystem.
type BaseSystem struct {
	required  []requirement
	signature Signature
	entities  []Entity
	index     *intmap.Map[EntityId, int]
	registry  *Registry
}

type requirement struct {
	typ      reflect.Type
	register func(*ComponentRegistry) ComponentId
}

func (s *BaseSystem) base() *BaseSystem { return s }

// RequireComponent adds T to the components an entity needs to be processed by
// the system. It must be called before the system is registered.
func RequireComponent[T any](s *BaseSystem) {
	if s.registry != nil {
		panic("RequireComponent called on a registered system")
	}
	t := reflect.TypeFor[T]()
	for _, existing := range s.required {
		if existing.typ == t {
			return
		}
	}
	s.required = append(s.required, requirement{typ: t, register: RegisterComponent[T]})
}

// Signature returns the resolved requirement. It is empty until the system
// has been registered.
func (s *BaseSystem) Signature() Signature {
	return s.signature
}

// RequiredTypes returns the declared component types.
func (s *BaseSystem) RequiredTypes() []reflect.Type {
	out := make([]reflect.Type, len(s.required))
	for i, req := range s.required {
		out[i] = req.typ
	}
	return out
}

// Entities returns a snapshot of the matching entities. Structural changes made
// while ranging over the snapshot do not affect it.
func (s *BaseSystem) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// EntityCount returns the number of matching entities.
func (s *BaseSystem) EntityCount() int {
	return len(s.entities)
}

// HasEntity reports whether the entity is currently matched.
func (s *BaseSystem) HasEntity(e Entity) bool {
	if s.index == nil {
		return false
	}
	return s.index.Has(e.id)
}

// AddEntityToSystem appends the entity to the match list. Called by the Registry.
func (s *BaseSystem) AddEntityToSystem(e Entity) {
	if s.index == nil {
		s.index = intmap.New[EntityId, int](64)
	}
	if s.index.Has(e.id) {
		return
	}
	s.index.Put(e.id, len(s.entities))
	s.entities = append(s.entities, e)
}

// RemoveEntityFromSystem drops the entity from the match list. Called by the Registry.
func (s *BaseSystem) RemoveEntityFromSystem(e Entity) {
	if s.index == nil {
		return
	}
	i, ok := s.index.Get(e.id)
	if !ok {
		return
	}

	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.entities[i] = moved
		s.index.Put(moved.id, i)
	}
	s.entities[last] = Entity{}
	s.entities = s.entities[:last]
	s.index.Del(e.id)
}

func (s *BaseSystem) clearEntities() {
	clear(s.entities)
	s.entities = s.entities[:0]
	if s.index != nil {
		s.index.Clear()
	}
}

func systemName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
