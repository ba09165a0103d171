package debugui

import "github.com/plus3/ecsreg/ecs"

// Group is the entity group every debug window entity is placed in.
const Group = "debugui"

// SpawnDebugUI creates the input-state entity and one entity per debug
// window. Window entities are placed in Group.
func SpawnDebugUI(r *ecs.Registry) {
	SpawnInputState(r)

	spawnWindow(r, "Entity Browser", NewEntityBrowserComponent(100))
	spawnWindow(r, "Component Inspector", NewComponentInspectorComponent())
	spawnWindow(r, "System Viewer", NewSystemViewerComponent())
	spawnWindow(r, "Performance Stats", NewPerformanceStatsComponent(120))
	spawnWindow(r, "Signature Debugger", NewSignatureDebuggerComponent())
}

// SpawnInputState creates the entity tagged InputTag if it does not exist yet.
func SpawnInputState(r *ecs.Registry) ecs.Entity {
	if e, ok := r.GetEntityByTag(InputTag); ok {
		return e
	}
	e := r.CreateEntity()
	ecs.AddComponent(e, ImguiInputState{})
	e.Tag(InputTag)
	return e
}

func spawnWindow[T any](r *ecs.Registry, title string, window T) ecs.Entity {
	e := r.CreateEntity()
	ecs.AddComponent(e, DebugWindow{Title: title})
	ecs.AddComponent(e, window)
	e.Group(Group)
	return e
}

// RegisterDebugUIComponents assigns ids to the debugui component types up
// front, so registries sharing components agree on them.
func RegisterDebugUIComponents(components *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](components)
	ecs.RegisterComponent[ImguiInputState](components)
	ecs.RegisterComponent[DebugWindow](components)
	ecs.RegisterComponent[EntityBrowserComponent](components)
	ecs.RegisterComponent[ComponentInspectorComponent](components)
	ecs.RegisterComponent[SystemViewerComponent](components)
	ecs.RegisterComponent[PerformanceStatsComponent](components)
	ecs.RegisterComponent[SignatureDebuggerComponent](components)
}
