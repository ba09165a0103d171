package main

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/ecsreg/ecs"
	"github.com/plus3/ecsreg/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStressScheduler(t *testing.T, churn int) (*ecs.Scheduler, *churnCounter) {
	t.Helper()
	components := ecs.NewComponentRegistry()
	RegisterAllGeneratedComponents(components)
	registry := ecs.NewRegistry(
		ecs.WithComponentRegistry(components),
		ecs.WithLogger(slog.New(slog.DiscardHandler)),
	)
	scheduler := ecs.NewScheduler(registry, eventbus.New())
	RegisterAllGeneratedSystems(scheduler)

	counter := &churnCounter{}
	scheduler.Register(&churnSystem{rng: rand.New(rand.NewPCG(1, 2)), rate: churn})
	scheduler.Register(counter)
	return scheduler, counter
}

func TestGeneratedComponentIds(t *testing.T) {
	components := ecs.NewComponentRegistry()
	RegisterAllGeneratedComponents(components)

	assert.Equal(t, componentCount, components.Count())
	id, ok := ecs.ComponentIdOf[StressComponent05](components)
	require.True(t, ok)
	assert.Equal(t, ecs.ComponentId(5), id)
}

func TestSpawnRandomEntity(t *testing.T) {
	scheduler, _ := newStressScheduler(t, 0)
	rng := rand.New(rand.NewPCG(3, 4))

	for n := 1; n <= 5; n++ {
		e := SpawnRandomEntity(scheduler.Registry(), rng, n)
		assert.Equal(t, n, e.Signature().Count())
	}
}

func TestChurnKeepsPopulationSteady(t *testing.T) {
	scheduler, counter := newStressScheduler(t, 10)
	registry := scheduler.Registry()
	rng := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		SpawnRandomEntity(registry, rng, rng.IntN(5)+1)
	}

	for range 20 {
		scheduler.Once(0.016)
	}
	registry.Update()

	assert.Equal(t, int64(200), counter.spawned)
	assert.Equal(t, 200+counter.spawned-counter.killed, int64(registry.EntityCount()))
	assert.Positive(t, counter.killed)

	stats := registry.CollectStats()
	for _, sys := range stats.Systems {
		if sys.Name == "churnSystem" {
			assert.Equal(t, registry.EntityCount(), sys.EntityCount)
		}
	}
}

func TestReportGenerate(t *testing.T) {
	scheduler, counter := newStressScheduler(t, 1)
	SpawnRandomEntity(scheduler.Registry(), rand.New(rand.NewPCG(7, 8)), 2)
	scheduler.Once(0.016)

	report := &Report{
		Duration:   time.Second,
		Entities:   1,
		Components: componentCount,
		Systems:    systemCount,
		Churn:      1,
		Killed:     counter.killed,
		Spawned:    counter.spawned,
		Registry:   scheduler.Registry().CollectStats(),
		Scheduler:  scheduler.GetStats(),
		UpdateTime: Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}},
	}
	report.UpdateTime.Finalize()

	assert.Equal(t, time.Millisecond, report.UpdateTime.Min)
	assert.Equal(t, 3*time.Millisecond, report.UpdateTime.Max)
	assert.Equal(t, 2*time.Millisecond, report.UpdateTime.Avg)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Churn Per Frame:** 1")
	assert.Contains(t, out, "## Systems (1 frames)")
	assert.Contains(t, out, "| StressSystem00 |")
	assert.Contains(t, out, "| churnCounter |")
	assert.Contains(t, out, "| main.StressComponent")
}
