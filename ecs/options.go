package ecs

import "log/slog"

const defaultPoolCapacity = 100

// RegistryOption configures a Registry at construction.
type RegistryOption func(*Registry)

// WithComponentRegistry shares a component registry between registries so
// they agree on component ids. By default each Registry owns its own.
func WithComponentRegistry(components *ComponentRegistry) RegistryOption {
	return func(r *Registry) {
		r.components = components
	}
}

// WithLogger sets the logger used for structural changes (Debug) and misuse (Warn).
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithPoolCapacity sets the initial capacity of newly created component pools.
func WithPoolCapacity(capacity int) RegistryOption {
	return func(r *Registry) {
		r.poolCapacity = capacity
	}
}
