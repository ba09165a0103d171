package main

import (
	"math/rand/v2"

	"github.com/plus3/ecsreg/ecs"
	"github.com/plus3/ecsreg/eventbus"
)

// Churned is emitted once per frame by churnSystem.
type Churned struct {
	Killed  int
	Spawned int
}

// churnSystem matches every entity. Each frame it kills up to rate of them
// and spawns the same number of fresh entities with random components.
type churnSystem struct {
	ecs.BaseSystem
	rng  *rand.Rand
	rate int
}

func (s *churnSystem) Execute(frame *ecs.UpdateFrame) {
	if s.rate == 0 {
		return
	}

	entities := s.Entities()
	picked := make(map[ecs.EntityId]bool, s.rate)
	for range min(s.rate, len(entities)) {
		e := entities[s.rng.IntN(len(entities))]
		if picked[e.Id()] || frame.Registry.IsPendingKill(e) {
			continue
		}
		picked[e.Id()] = true
		frame.Commands.Kill(e)
	}

	for range s.rate {
		SpawnRandomEntity(frame.Registry, s.rng, s.rng.IntN(5)+1)
	}

	eventbus.Emit(frame.Events, Churned{Killed: len(picked), Spawned: s.rate})
}

// churnCounter totals Churned events. Its subscription is renewed by the
// scheduler every frame.
type churnCounter struct {
	ecs.BaseSystem
	killed  int64
	spawned int64
}

func (c *churnCounter) SubscribeToEvents(bus *eventbus.Bus) {
	eventbus.Subscribe(bus, c.onChurned)
}

func (c *churnCounter) onChurned(event *Churned) {
	c.killed += int64(event.Killed)
	c.spawned += int64(event.Spawned)
}

func (c *churnCounter) Execute(frame *ecs.UpdateFrame) {}

// SpawnRandomEntity creates an entity holding n distinct generated components.
func SpawnRandomEntity(r *ecs.Registry, rng *rand.Rand, n int) ecs.Entity {
	e := r.CreateEntity()
	for _, idx := range rng.Perm(componentCount)[:min(n, componentCount)] {
		componentAdders[idx](e)
	}
	return e
}
