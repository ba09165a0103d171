package ecs

import "errors"

var (
	// ErrComponentNotFound is returned when reading a component the entity does not have.
	ErrComponentNotFound = errors.New("component not found")
	// ErrSystemNotFound is returned when looking up a system kind that is not registered.
	ErrSystemNotFound = errors.New("system not found")
	// ErrCapacityExceeded is raised when more distinct component types are used
	// than a Signature can hold.
	ErrCapacityExceeded = errors.New("component capacity exceeded")
)
