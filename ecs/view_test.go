package ecs_test

import (
	"testing"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	registry := newTestRegistry()
	e := registry.CreateEntity()
	ecs.AddComponent(e, Position{X: 1, Y: 2})
	ecs.AddComponent(e, Score(32))

	view := ecs.NewView[struct {
		*Position
		*Score
	}](registry)

	item := view.Get(e)
	require.NotNil(t, item)
	assert.Equal(t, Score(32), *item.Score)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(2), item.Position.Y)

	// Fields point into the pools
	item.Position.X = 9
	assert.Equal(t, float32(9), ecs.MustGetComponent[Position](e).X)
}

func TestViewMissingComponent(t *testing.T) {
	registry := newTestRegistry()
	e := registry.CreateEntity()
	ecs.AddComponent(e, Position{X: 5, Y: 10})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](registry)

	// Entity only has Position, not Velocity
	assert.Nil(t, view.Get(e))
}

func TestViewOptionalComponent(t *testing.T) {
	registry := newTestRegistry()
	plain := registry.CreateEntity()
	ecs.AddComponent(plain, Position{})
	named := registry.CreateEntity()
	ecs.AddComponent(named, Position{})
	ecs.AddComponent(named, Name{Value: "scout"})

	view := ecs.NewView[struct {
		*Position
		Name *Name `ecs:"optional"`
	}](registry)

	item := view.Get(plain)
	require.NotNil(t, item)
	assert.Nil(t, item.Name)

	item = view.Get(named)
	require.NotNil(t, item)
	assert.Equal(t, "scout", item.Name.Value)
}

func TestViewIter(t *testing.T) {
	registry := newTestRegistry()
	movement := NewMovementSystem()
	registry.AddSystem(movement)

	for i := range 4 {
		e := registry.CreateEntity()
		ecs.AddComponent(e, Position{X: float32(i)})
		ecs.AddComponent(e, Velocity{DX: 1})
	}
	registry.Update()

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](registry)

	count := 0
	for _, item := range view.Iter(movement.Entities()) {
		item.Position.X += item.Velocity.DX
		count++
	}
	assert.Equal(t, 4, count)

	total := float32(0)
	for _, pos := range ecs.ComponentPool[Position](registry).All() {
		total += pos.X
	}
	assert.Equal(t, float32(0+1+2+3+4), total)
}

func TestViewSpawn(t *testing.T) {
	registry := newTestRegistry()
	ecs.RegisterComponent[Position](registry.Components())
	ecs.RegisterComponent[Health](registry.Components())

	view := ecs.NewView[struct {
		*Position
		Health *Health `ecs:"optional"`
	}](registry)

	e := view.Spawn(struct {
		*Position
		Health *Health `ecs:"optional"`
	}{Position: &Position{X: 3, Y: 4}})

	assert.Equal(t, Position{X: 3, Y: 4}, *ecs.MustGetComponent[Position](e))
	assert.False(t, ecs.HasComponent[Health](e))
	assert.True(t, registry.IsPending(e))
}

func TestViewInvalidDefinitions(t *testing.T) {
	registry := newTestRegistry()

	assert.Panics(t, func() {
		ecs.NewView[struct{ Position }](registry)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			Name *Name `ecs:"sometimes"`
		}](registry)
	})
	assert.Panics(t, func() {
		ecs.NewView[Position](registry)
	})
}
