package debugui

import (
	"log/slog"
	"reflect"
	"testing"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct {
	X, Y float32
}

type armor struct {
	Rating int
	Owner  *string
	hidden bool
}

type score int32

func newRegistry() *ecs.Registry {
	return ecs.NewRegistry(ecs.WithLogger(slog.New(slog.DiscardHandler)))
}

func TestSpawnDebugUI(t *testing.T) {
	r := newRegistry()
	SpawnDebugUI(r)
	r.Update()

	windows := r.GetEntitiesByGroup(Group)
	require.Len(t, windows, 5)
	for _, e := range windows {
		assert.True(t, ecs.HasComponent[DebugWindow](e))
	}

	input, ok := r.GetEntityByTag(InputTag)
	require.True(t, ok)
	assert.True(t, ecs.HasComponent[ImguiInputState](input))

	// Spawning the input state again reuses the tagged entity
	assert.Equal(t, input, SpawnInputState(r))
}

func TestInputState(t *testing.T) {
	r := newRegistry()
	assert.Equal(t, ImguiInputState{}, InputState(r))

	input := SpawnInputState(r)
	ecs.MustGetComponent[ImguiInputState](input).WantCaptureKeyboard = true
	assert.True(t, InputState(r).WantCaptureKeyboard)
}

func TestDebugUISystemMatchesWindows(t *testing.T) {
	r := newRegistry()
	system := NewDebugUISystem(nil)
	r.AddSystem(system)
	imguiSystem := NewImguiSystem()
	r.AddSystem(imguiSystem)

	SpawnDebugUI(r)
	ecs.AddComponent(r.CreateEntity(), ImguiItem{Render: func() {}})
	r.Update()

	assert.Equal(t, 5, system.EntityCount())
	assert.Equal(t, 1, imguiSystem.EntityCount())
}

func TestEntityBrowserFilters(t *testing.T) {
	r := newRegistry()
	player := r.CreateEntity()
	ecs.AddComponent(player, position{})
	ecs.AddComponent(player, score(3))
	player.Tag("player")

	rock := r.CreateEntity()
	ecs.AddComponent(rock, position{})
	rock.Group("scenery")
	r.Update()

	browser := NewEntityBrowserComponent(10)
	browser.rebuildCache(r)
	require.Len(t, browser.getFilteredEntities(), 2)

	browser.filterText = "PLAYER"
	assert.Equal(t, []ecs.EntityId{player.Id()}, ids(browser.getFilteredEntities()))

	browser.filterText = "scen"
	assert.Equal(t, []ecs.EntityId{rock.Id()}, ids(browser.getFilteredEntities()))

	browser.filterText = ""
	browser.FilterBySignature(player.Signature())
	assert.Equal(t, []ecs.EntityId{player.Id()}, ids(browser.getFilteredEntities()))

	_, selected := browser.GetSelectedEntity()
	assert.False(t, selected)
}

func TestEntityBrowserSort(t *testing.T) {
	r := newRegistry()
	for _, tag := range []string{"c", "a", "b"} {
		r.CreateEntity().Tag(tag)
	}

	browser := NewEntityBrowserComponent(10)
	browser.rebuildCache(r)
	assert.Equal(t, []ecs.EntityId{0, 1, 2}, ids(browser.getFilteredEntities()))

	browser.cache.sortColumn = 3
	browser.sortEntities()
	assert.Equal(t, []ecs.EntityId{1, 2, 0}, ids(browser.getFilteredEntities()))

	browser.cache.sortAscending = false
	browser.sortEntities()
	assert.Equal(t, []ecs.EntityId{0, 2, 1}, ids(browser.getFilteredEntities()))
}

type movers struct {
	ecs.BaseSystem
}

func TestMatchSignature(t *testing.T) {
	r := newRegistry()
	sys := &movers{}
	ecs.RequireComponent[position](&sys.BaseSystem)
	r.AddSystem(sys)

	a := r.CreateEntity()
	ecs.AddComponent(a, position{})
	ecs.AddComponent(a, score(1))
	b := r.CreateEntity()
	ecs.AddComponent(b, position{})
	r.Update()

	pending := r.CreateEntity()
	ecs.AddComponent(pending, position{})

	posId, _ := ecs.ComponentIdOf[position](r.Components())
	scoreId, _ := ecs.ComponentIdOf[score](r.Components())

	match := matchSignature(r, ecs.Signature(0).Set(posId))
	assert.Equal(t, []ecs.EntityId{a.Id(), b.Id()}, match.Entities)
	assert.Equal(t, []string{"movers"}, match.Systems)

	match = matchSignature(r, ecs.Signature(0).Set(posId).Set(scoreId))
	assert.Equal(t, []ecs.EntityId{a.Id()}, match.Entities)
	assert.Equal(t, []string{"movers"}, match.Systems)

	match = matchSignature(r, ecs.Signature(0).Set(scoreId))
	assert.Empty(t, match.Systems)
}

func TestSignatureDebuggerSelection(t *testing.T) {
	r := newRegistry()
	ecs.RegisterComponent[position](r.Components())
	ecs.RegisterComponent[score](r.Components())

	debugger := NewSignatureDebuggerComponent()
	debugger.rebuildCacheIfNeeded(r)
	require.Len(t, debugger.cache.componentTypes, 2)

	debugger.selectedComponentTypes[reflect.TypeFor[score]().String()] = true
	assert.Equal(t, ecs.Signature(0).Set(1), debugger.selectedSignature())
}

func TestReflectionCache(t *testing.T) {
	cache := NewReflectionCache()

	fields := cache.GetFields(reflect.TypeFor[armor]())
	require.Len(t, fields, 2, "unexported fields are skipped")
	assert.Equal(t, "Rating", fields[0].Name)
	assert.False(t, fields[0].IsPointer)
	assert.Equal(t, "Owner", fields[1].Name)
	assert.True(t, fields[1].IsPointer)
	assert.Equal(t, reflect.TypeFor[string](), fields[1].Type)

	assert.Empty(t, cache.GetFields(reflect.TypeFor[score]()))
}

func TestPerformanceStatsHistory(t *testing.T) {
	stats := NewPerformanceStatsComponent(4)
	stats.record(0.010)
	stats.record(0.020)
	stats.record(0.010)
	avg := stats.record(0.020)

	assert.InDelta(t, 15.0, avg, 0.001)

	// History wraps around
	avg = stats.record(0.030)
	assert.InDelta(t, 20.0, avg, 0.001)
}

func ids(infos []EntityInfo) []ecs.EntityId {
	out := make([]ecs.EntityId, len(infos))
	for i, info := range infos {
		out[i] = info.ID
	}
	return out
}
