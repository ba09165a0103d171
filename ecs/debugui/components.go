package debugui

import (
	"github.com/plus3/ecsreg/ecs"
)

// DebugWindow marks an entity as one of the built-in debug windows.
type DebugWindow struct {
	Title string
}

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selected           ecs.EntityId
	hasSelection       bool
	filterText         string
	filterSignature    *ecs.Signature
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selected     ecs.EntityId
	hasSelection bool
}

type SystemViewerComponent struct {
	cache          *SystemViewerCache
	selectedSystem string
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type SignatureDebuggerComponent struct {
	selectedComponentTypes map[string]bool
	cache                  *SignatureDebuggerCache
}
