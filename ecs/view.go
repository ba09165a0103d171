package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View fills a struct of component pointers for an entity in one call.
// The type T must be a struct whose fields are pointers to component types.
// Embedded fields are always required; named fields can be marked optional
// with the `ecs:"optional"` struct tag.
type View[T any] struct {
	registry    *Registry
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
}

// NewView creates a new view for the given struct type.
func NewView[T any](registry *Registry) *View[T] {
	structType := reflect.TypeFor[T]()

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	types := make([]reflect.Type, 0, structType.NumField())
	optional := make([]bool, 0, structType.NumField())
	fieldOffset := make([]uintptr, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		types = append(types, fieldType.Elem())
		fieldOffset = append(fieldOffset, field.Offset)

		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}
		optional = append(optional, isOptional)
	}

	return &View[T]{
		registry:    registry,
		types:       types,
		optional:    optional,
		fieldOffset: fieldOffset,
	}
}

// Fill populates ptr with the entity's components.
// Returns false if the entity is missing any required component.
// Missing optional components are set to nil.
func (v *View[T]) Fill(e Entity, ptr *T) bool {
	structPtr := unsafe.Pointer(ptr)

	for i, componentType := range v.types {
		component := v.registry.ComponentByType(e, componentType)
		fieldPtr := unsafe.Add(structPtr, v.fieldOffset[i])

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// component holds a *C; copy its data word into the field.
		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}

	return true
}

// Get returns a populated view for the entity, or nil if a required
// component is missing.
func (v *View[T]) Get(e Entity) *T {
	var result T
	if !v.Fill(e, &result) {
		return nil
	}
	return &result
}

// Iter yields a populated view for each entity that has every required
// component. Pass a system's Entities() snapshot to walk its matches.
func (v *View[T]) Iter(entities []Entity) iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		var result T
		for _, e := range entities {
			if !v.Fill(e, &result) {
				continue
			}
			if !yield(e, result) {
				return
			}
		}
	}
}

// Add attaches every non-nil field of data to the entity. Component types
// must already be registered.
func (v *View[T]) Add(e Entity, data T) {
	structPtr := unsafe.Pointer(&data)

	for i, componentType := range v.types {
		componentPtr := *(*unsafe.Pointer)(unsafe.Add(structPtr, v.fieldOffset[i]))
		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Add")
			}
			continue
		}

		component := reflect.NewAt(componentType, componentPtr).Elem().Interface()
		v.registry.addComponentAny(e, componentType, component)
	}
}

// Spawn creates an entity carrying the non-nil fields of data.
func (v *View[T]) Spawn(data T) Entity {
	e := v.registry.CreateEntity()
	v.Add(e, data)
	return e
}
