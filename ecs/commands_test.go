package ecs_test

import (
	"testing"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandSystem struct {
	ecs.BaseSystem
	run func(frame *ecs.UpdateFrame)
}

func (s *commandSystem) Execute(frame *ecs.UpdateFrame) {
	s.run(frame)
}

func TestCommandsDeferComponentEdits(t *testing.T) {
	registry := newTestRegistry()
	scheduler := ecs.NewScheduler(registry, nil)

	e := registry.CreateEntity()
	ecs.AddComponent(e, Position{})
	ecs.AddComponent(e, Velocity{DX: 1})

	var seenDuringFrame bool
	scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
		ecs.DeferRemoveComponent[Velocity](frame.Commands, e)
		ecs.DeferAddComponent(frame.Commands, e, Health{Current: 5, Max: 5})
		seenDuringFrame = ecs.HasComponent[Velocity](e) && !ecs.HasComponent[Health](e)
		assert.Equal(t, 2, frame.Commands.Len())
	}})

	scheduler.Once(1.0)

	assert.True(t, seenDuringFrame, "edits must not apply until the frame ends")
	assert.False(t, ecs.HasComponent[Velocity](e))
	assert.True(t, ecs.HasComponent[Health](e))
}

func TestCommandsKillDropsEdits(t *testing.T) {
	registry := newTestRegistry()
	scheduler := ecs.NewScheduler(registry, nil)

	e := registry.CreateEntity()
	ecs.AddComponent(e, Position{})

	scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
		if !registry.IsAlive(e) {
			return
		}
		ecs.DeferAddComponent(frame.Commands, e, Health{})
		frame.Commands.Kill(e)
	}})

	scheduler.Once(1.0)
	assert.True(t, registry.IsPendingKill(e))
	assert.False(t, ecs.HasComponent[Health](e))

	scheduler.Once(1.0)
	assert.False(t, registry.IsAlive(e))
}

func TestCommandsFlushOrder(t *testing.T) {
	registry := newTestRegistry()
	scheduler := ecs.NewScheduler(registry, nil)

	e := registry.CreateEntity()
	ecs.AddComponent(e, Score(1))

	var order []string
	scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
		frame.Commands.Defer(func() {
			order = append(order, "defer")
			// Adds have already landed
			require.Equal(t, Score(2), *ecs.MustGetComponent[Score](e))
		})
		ecs.DeferAddComponent(frame.Commands, e, Score(2))
		ecs.DeferRemoveComponent[Score](frame.Commands, e)
	}})

	scheduler.Once(1.0)

	assert.Equal(t, []string{"defer"}, order)
	assert.True(t, ecs.HasComponent[Score](e), "removes run before adds")
}
