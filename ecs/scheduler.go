package ecs

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/ecsreg/eventbus"
)

// ScheduledSystem is a system with a per-frame entry point the Scheduler calls.
type ScheduledSystem interface {
	System
	Execute(frame *UpdateFrame)
}

// EventSubscriber is implemented by systems that listen on the event bus.
// Subscriptions are frame-scoped: the Scheduler resets the bus and calls
// SubscribeToEvents on every such system at the start of each frame.
type EventSubscriber interface {
	SubscribeToEvents(bus *eventbus.Bus)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	FrameCount      int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives a Registry one frame at a time: it flushes pending
// entity changes, then executes systems in registration order.
type Scheduler struct {
	registry    *Registry
	events      *eventbus.Bus
	systems     []ScheduledSystem
	systemStats []*systemStatsInternal
	frames      int64
}

// NewScheduler creates a scheduler for registry. events may be nil when no
// system uses the event bus.
func NewScheduler(registry *Registry, events *eventbus.Bus) *Scheduler {
	return &Scheduler{
		registry: registry,
		events:   events,
		systems:  make([]ScheduledSystem, 0),
	}
}

// Registry returns the registry driven by this scheduler.
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// Events returns the event bus, or nil.
func (s *Scheduler) Events() *eventbus.Bus {
	return s.events
}

// Register adds the system to the registry and appends it to the run order.
// Registering a second system of the same type replaces the first in place:
// it keeps the old position and starts with fresh stats.
func (s *Scheduler) Register(system ScheduledSystem) {
	s.registry.AddSystem(system)
	stats := &systemStatsInternal{
		name:        SystemName(system),
		minDuration: time.Duration(1<<63 - 1),
	}

	t := reflect.TypeOf(system)
	for i, existing := range s.systems {
		if reflect.TypeOf(existing) == t {
			s.systems[i] = system
			s.systemStats[i] = stats
			return
		}
	}
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, stats)
}

// Unregister removes the system of type S from the registry and the run
// order. Returns false if none was registered.
func Unregister[S ScheduledSystem](s *Scheduler) bool {
	removed := RemoveSystem[S](s.registry)
	s.prune()
	return removed
}

// prune drops systems the registry no longer holds, so a system removed or
// replaced directly on the registry stops running.
func (s *Scheduler) prune() {
	n := 0
	for i, system := range s.systems {
		if !s.registry.holds(system) {
			continue
		}
		s.systems[n] = system
		s.systemStats[n] = s.systemStats[i]
		n++
	}
	clear(s.systems[n:])
	clear(s.systemStats[n:])
	s.systems = s.systems[:n]
	s.systemStats = s.systemStats[:n]
}

// Once runs a single frame with the given delta time in seconds.
func (s *Scheduler) Once(dt float64) {
	s.prune()

	if s.events != nil {
		s.events.Reset()
		for _, system := range s.systems {
			if subscriber, ok := system.(EventSubscriber); ok {
				subscriber.SubscribeToEvents(s.events)
			}
		}
	}

	s.registry.Update()

	frame := newUpdateFrame(dt, s.registry, s.events)
	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush()
	s.frames++
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	s.prune()
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		FrameCount:  s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
