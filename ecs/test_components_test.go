package ecs_test

import (
	"log/slog"

	"github.com/plus3/ecsreg/ecs"
)

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type PlayerController struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Label string

// MovementSystem requires Position and Velocity.
type MovementSystem struct {
	ecs.BaseSystem
	Updates int
}

func NewMovementSystem() *MovementSystem {
	s := &MovementSystem{}
	ecs.RequireComponent[Position](&s.BaseSystem)
	ecs.RequireComponent[Velocity](&s.BaseSystem)
	return s
}

func (s *MovementSystem) Update(dt float32) {
	s.Updates++
	for _, e := range s.Entities() {
		pos := ecs.MustGetComponent[Position](e)
		vel := ecs.MustGetComponent[Velocity](e)
		pos.X += vel.DX * dt
		pos.Y += vel.DY * dt
	}
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.Update(float32(frame.DeltaTime))
}

// HealthSystem requires Health only.
type HealthSystem struct {
	ecs.BaseSystem
	ExecuteCount int
	TotalHealth  int
}

func NewHealthSystem() *HealthSystem {
	s := &HealthSystem{}
	ecs.RequireComponent[Health](&s.BaseSystem)
	return s
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for _, e := range s.Entities() {
		s.TotalHealth += ecs.MustGetComponent[Health](e).Current
	}
}

// EverythingSystem has no requirement and therefore matches every entity.
type EverythingSystem struct {
	ecs.BaseSystem
}

func newTestRegistry() *ecs.Registry {
	return ecs.NewRegistry(ecs.WithLogger(slog.New(slog.DiscardHandler)))
}
