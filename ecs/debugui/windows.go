package debugui

import (
	"github.com/plus3/ecsreg/ecs"
)

// DebugUISystem renders the built-in debug windows spawned by SpawnDebugUI.
// Selection made in the entity browser feeds the component inspector, and a
// system picked in the system viewer filters the browser.
type DebugUISystem struct {
	ecs.BaseSystem
	scheduler *ecs.Scheduler
}

// NewDebugUISystem creates the system. scheduler may be nil; when set, the
// performance window also shows per-system timings.
func NewDebugUISystem(scheduler *ecs.Scheduler) *DebugUISystem {
	s := &DebugUISystem{scheduler: scheduler}
	ecs.RequireComponent[DebugWindow](&s.BaseSystem)
	return s
}

func (s *DebugUISystem) Execute(frame *ecs.UpdateFrame) {
	r := frame.Registry
	dt := float32(frame.DeltaTime)

	// Looked up again at render time since pools may move during the flush.
	var browserEntity ecs.Entity
	hasBrowser := false
	for _, e := range s.Entities() {
		if ecs.HasComponent[EntityBrowserComponent](e) {
			browserEntity, hasBrowser = e, true
			break
		}
	}
	browser := func() *EntityBrowserComponent {
		if !hasBrowser {
			return nil
		}
		c, err := ecs.GetComponent[EntityBrowserComponent](browserEntity)
		if err != nil {
			return nil
		}
		return c
	}

	for _, e := range s.Entities() {
		switch {
		case ecs.HasComponent[EntityBrowserComponent](e):
			frame.Commands.Defer(func() {
				if c, err := ecs.GetComponent[EntityBrowserComponent](e); err == nil {
					c.Render(r)
				}
			})

		case ecs.HasComponent[ComponentInspectorComponent](e):
			frame.Commands.Defer(func() {
				c, err := ecs.GetComponent[ComponentInspectorComponent](e)
				if err != nil {
					return
				}
				if b := browser(); b != nil {
					c.Select(b.GetSelectedEntity())
				}
				c.Render(r)
			})

		case ecs.HasComponent[SystemViewerComponent](e):
			frame.Commands.Defer(func() {
				c, err := ecs.GetComponent[SystemViewerComponent](e)
				if err != nil {
					return
				}
				if sig, clicked := c.Render(r); clicked {
					if b := browser(); b != nil {
						b.FilterBySignature(sig)
					}
				}
			})

		case ecs.HasComponent[PerformanceStatsComponent](e):
			frame.Commands.Defer(func() {
				if c, err := ecs.GetComponent[PerformanceStatsComponent](e); err == nil {
					c.Render(r, s.scheduler, dt)
				}
			})

		case ecs.HasComponent[SignatureDebuggerComponent](e):
			frame.Commands.Defer(func() {
				if c, err := ecs.GetComponent[SignatureDebuggerComponent](e); err == nil {
					c.Render(r)
				}
			})
		}
	}
}
