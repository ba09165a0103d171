package ecs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/ecsreg/ecs"
)

type Transform struct {
	X, Y float32
}

type Speed struct {
	DX, DY float32
}

type Hitpoints struct {
	Current, Max int
}

type PhysicsSystem struct {
	ecs.BaseSystem
}

func NewPhysicsSystem() *PhysicsSystem {
	s := &PhysicsSystem{}
	ecs.RequireComponent[Transform](&s.BaseSystem)
	ecs.RequireComponent[Speed](&s.BaseSystem)
	return s
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	for _, e := range s.Entities() {
		transform := ecs.MustGetComponent[Transform](e)
		speed := ecs.MustGetComponent[Speed](e)
		transform.X += speed.DX * float32(frame.DeltaTime)
		transform.Y += speed.DY * float32(frame.DeltaTime)
	}
}

type HealingSystem struct {
	ecs.BaseSystem
	RegenRate float32
}

func NewHealingSystem(rate float32) *HealingSystem {
	s := &HealingSystem{RegenRate: rate}
	ecs.RequireComponent[Hitpoints](&s.BaseSystem)
	return s
}

func (s *HealingSystem) Execute(frame *ecs.UpdateFrame) {
	for _, e := range s.Entities() {
		hp := ecs.MustGetComponent[Hitpoints](e)
		if hp.Current < hp.Max {
			hp.Current += int(s.RegenRate * float32(frame.DeltaTime))
			hp.Current = min(hp.Current, hp.Max)
		}
	}
}

// ExampleRegistry walks an entity through its lifecycle. Creation and
// destruction take effect at Update; component changes apply at once.
func ExampleRegistry() {
	registry := ecs.NewRegistry()
	physics := NewPhysicsSystem()
	registry.AddSystem(physics)

	ship := registry.CreateEntity()
	ecs.AddComponent(ship, Transform{X: 0, Y: 0})
	ecs.AddComponent(ship, Speed{DX: 1, DY: 0})
	ship.Tag("player")
	fmt.Println("before update:", physics.EntityCount())

	registry.Update()
	fmt.Println("after update:", physics.EntityCount())

	player, _ := registry.GetEntityByTag("player")
	player.Kill()
	registry.Update()
	fmt.Println("after kill:", physics.EntityCount())

	fmt.Println("recycled id:", registry.CreateEntity().Id() == ship.Id())

	// Output:
	// before update: 0
	// after update: 1
	// after kill: 0
	// recycled id: true
}

// ExampleScheduler builds a game loop with two systems. The Scheduler flushes
// pending entities, runs systems in registration order and applies buffered
// commands at the end of every frame.
func ExampleScheduler() {
	registry := ecs.NewRegistry()
	scheduler := ecs.NewScheduler(registry, nil)
	physics := NewPhysicsSystem()
	scheduler.Register(physics)
	scheduler.Register(NewHealingSystem(10))

	a := registry.CreateEntity()
	ecs.AddComponent(a, Transform{X: 0, Y: 0})
	ecs.AddComponent(a, Speed{DX: 10, DY: 5})
	ecs.AddComponent(a, Hitpoints{Current: 80, Max: 100})

	b := registry.CreateEntity()
	ecs.AddComponent(b, Transform{X: 100, Y: 100})
	ecs.AddComponent(b, Speed{DX: -5, DY: -5})
	ecs.AddComponent(b, Hitpoints{Current: 50, Max: 100})

	scheduler.Once(1.0)

	view := ecs.NewView[struct {
		*Transform
		*Hitpoints
	}](registry)

	fmt.Println("After one frame:")
	for _, item := range view.Iter(physics.Entities()) {
		fmt.Printf("Position: (%.0f, %.0f), Health: %d/%d\n",
			item.Transform.X, item.Transform.Y,
			item.Hitpoints.Current, item.Hitpoints.Max)
	}

	// Output:
	// After one frame:
	// Position: (10, 5), Health: 90/100
	// Position: (95, 95), Health: 60/100
}

// ExampleScheduler_Run runs a continuous loop until the context is cancelled.
func ExampleScheduler_Run() {
	registry := ecs.NewRegistry()
	e := registry.CreateEntity()
	ecs.AddComponent(e, Transform{})
	ecs.AddComponent(e, Speed{DX: 1, DY: 1})

	scheduler := ecs.NewScheduler(registry, nil)
	scheduler.Register(NewPhysicsSystem())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}

// ExampleRegistry_GetEntitiesByGroup shows that an entity belongs to at most
// one group at a time.
func ExampleRegistry_GetEntitiesByGroup() {
	registry := ecs.NewRegistry()
	for range 3 {
		registry.CreateEntity().Group("enemies")
	}
	defector := registry.Entity(1)
	defector.Group("allies")

	for _, e := range registry.GetEntitiesByGroup("enemies") {
		fmt.Println("enemy", e.Id())
	}
	fmt.Println(registry.Groups())

	// Output:
	// enemy 0
	// enemy 2
	// [allies enemies]
}
