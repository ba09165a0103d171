package ecs

import "github.com/plus3/ecsreg/eventbus"

// UpdateFrame is handed to every scheduled system once per frame.
type UpdateFrame struct {
	DeltaTime float64
	Registry  *Registry
	Events    *eventbus.Bus
	Commands  *Commands
}

func newUpdateFrame(dt float64, registry *Registry, events *eventbus.Bus) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Registry:  registry,
		Events:    events,
		Commands:  newCommands(registry),
	}
}
