package ecs

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

type entityState uint8

const (
	stateFree entityState = iota
	statePending
	stateActive
)

// Registry owns every entity, component pool and system. It is the only place
// structural changes happen.
//
// Entity creation and destruction are deferred: new entities become visible
// to systems, and killed entities leave them, at the next Update. Component
// changes apply immediately and re-match the entity against all systems.
type Registry struct {
	components   *ComponentRegistry
	pools        []iPool
	signatures   []Signature
	states       []entityState
	nextId       EntityId
	freeIds      []EntityId
	poolCapacity int

	systems     map[reflect.Type]System
	systemOrder []reflect.Type

	pendingAdd     []EntityId
	pendingKill    []EntityId
	pendingKillSet *intmap.Map[EntityId, struct{}]

	entityPerTag     map[string]EntityId
	tagPerEntity     *intmap.Map[EntityId, string]
	entitiesPerGroup map[string]*intmap.Map[EntityId, struct{}]
	groupPerEntity   *intmap.Map[EntityId, string]

	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		poolCapacity:     defaultPoolCapacity,
		systems:          make(map[reflect.Type]System),
		pendingKillSet:   intmap.New[EntityId, struct{}](64),
		entityPerTag:     make(map[string]EntityId),
		tagPerEntity:     intmap.New[EntityId, string](16),
		entitiesPerGroup: make(map[string]*intmap.Map[EntityId, struct{}]),
		groupPerEntity:   intmap.New[EntityId, string](64),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.components == nil {
		r.components = NewComponentRegistry()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Components returns the component registry used for id assignment.
func (r *Registry) Components() *ComponentRegistry {
	return r.components
}

// CreateEntity allocates an entity, reusing the oldest freed id when one is
// available. The entity is invisible to systems until the next Update.
func (r *Registry) CreateEntity() Entity {
	var id EntityId
	if len(r.freeIds) > 0 {
		id = r.freeIds[0]
		r.freeIds[0] = 0
		r.freeIds = r.freeIds[1:]
	} else {
		id = r.nextId
		r.nextId++
		r.signatures = append(r.signatures, 0)
		r.states = append(r.states, stateFree)
	}

	r.signatures[id] = 0
	r.states[id] = statePending
	r.pendingAdd = append(r.pendingAdd, id)

	r.logger.Debug("entity created", "entity", id)
	return Entity{id: id, registry: r}
}

// KillEntity marks the entity for destruction at the next Update. Repeated
// calls before the flush are ignored.
func (r *Registry) KillEntity(e Entity) {
	if !r.known(e.id) {
		r.logger.Warn("kill of unknown entity ignored", "entity", e.id)
		return
	}
	if r.pendingKillSet.Has(e.id) {
		return
	}
	r.pendingKillSet.Put(e.id, struct{}{})
	r.pendingKill = append(r.pendingKill, e.id)
	r.logger.Debug("entity marked for kill", "entity", e.id)
}

// Update commits pending creations and destructions. Every pending entity is
// matched against the systems before any pending kill is processed.
func (r *Registry) Update() {
	for _, id := range r.pendingAdd {
		if r.states[id] != statePending {
			continue
		}
		r.states[id] = stateActive
		if r.pendingKillSet.Has(id) {
			continue
		}
		r.addEntityToSystems(id)
	}
	r.pendingAdd = r.pendingAdd[:0]

	for _, id := range r.pendingKill {
		r.destroy(id)
	}
	r.pendingKill = r.pendingKill[:0]
	r.pendingKillSet.Clear()
}

func (r *Registry) destroy(id EntityId) {
	if r.states[id] == stateFree {
		return
	}

	r.removeEntityFromSystems(id)
	for _, pool := range r.pools {
		if pool != nil {
			pool.removeEntity(id)
		}
	}
	r.signatures[id] = 0
	r.removeTag(id)
	r.removeGroup(id)

	r.states[id] = stateFree
	r.freeIds = append(r.freeIds, id)
	r.logger.Debug("entity destroyed", "entity", id)
}

func (r *Registry) addEntityToSystems(id EntityId) {
	e := Entity{id: id, registry: r}
	sig := r.signatures[id]
	for _, t := range r.systemOrder {
		s := r.systems[t].base()
		if sig.Contains(s.signature) {
			s.AddEntityToSystem(e)
		}
	}
}

func (r *Registry) removeEntityFromSystems(id EntityId) {
	e := Entity{id: id, registry: r}
	for _, t := range r.systemOrder {
		r.systems[t].base().RemoveEntityFromSystem(e)
	}
}

// rematch brings system membership of an active entity in line with its
// current signature.
func (r *Registry) rematch(id EntityId) {
	if r.states[id] != stateActive || r.pendingKillSet.Has(id) {
		return
	}
	e := Entity{id: id, registry: r}
	sig := r.signatures[id]
	for _, t := range r.systemOrder {
		s := r.systems[t].base()
		matches := sig.Contains(s.signature)
		member := s.HasEntity(e)
		switch {
		case matches && !member:
			s.AddEntityToSystem(e)
		case !matches && member:
			s.RemoveEntityFromSystem(e)
		}
	}
}

func (r *Registry) known(id EntityId) bool {
	return int(id) < len(r.states) && r.states[id] != stateFree
}

// IsAlive reports whether the entity id is currently allocated (pending or active).
func (r *Registry) IsAlive(e Entity) bool {
	return r.known(e.id)
}

// IsPending reports whether the entity was created since the last Update.
func (r *Registry) IsPending(e Entity) bool {
	return int(e.id) < len(r.states) && r.states[e.id] == statePending
}

// IsPendingKill reports whether the entity will be destroyed at the next Update.
func (r *Registry) IsPendingKill(e Entity) bool {
	return r.pendingKillSet.Has(e.id)
}

// Entity returns a handle for id bound to this registry.
func (r *Registry) Entity(id EntityId) Entity {
	return Entity{id: id, registry: r}
}

// EntityCount returns the number of active entities.
func (r *Registry) EntityCount() int {
	count := 0
	for _, state := range r.states {
		if state == stateActive {
			count++
		}
	}
	return count
}

// Entities returns every allocated entity, pending ones included, in id order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.states))
	for id, state := range r.states {
		if state != stateFree {
			out = append(out, Entity{id: EntityId(id), registry: r})
		}
	}
	return out
}

// Signature returns the component signature of the entity.
func (r *Registry) Signature(e Entity) Signature {
	if int(e.id) >= len(r.signatures) {
		return 0
	}
	return r.signatures[e.id]
}

// ComponentTypes lists the component types the entity holds, ordered by id.
func (r *Registry) ComponentTypes(e Entity) []reflect.Type {
	ids := r.Signature(e).Ids()
	types := make([]reflect.Type, len(ids))
	for i, id := range ids {
		types[i] = r.components.TypeOf(id)
	}
	return types
}

// ComponentByType returns a pointer to the entity's component of type t as
// an any, or nil if it has none.
func (r *Registry) ComponentByType(e Entity, t reflect.Type) any {
	id, ok := r.components.IdOf(t)
	if !ok || int(id) >= len(r.pools) || r.pools[id] == nil {
		return nil
	}
	return r.pools[id].getAny(e.id)
}

// AddSystem registers a system, replacing any previous system of the same
// type. Active entities that already satisfy its requirement are added to it.
func (r *Registry) AddSystem(system System) {
	if system == nil {
		panic("cannot add a nil system")
	}
	s := system.base()
	if s.registry != nil && s.registry != r {
		panic(fmt.Sprintf("system %s is already registered with another registry", SystemName(system)))
	}

	t := reflect.TypeOf(system)
	if _, exists := r.systems[t]; exists {
		r.removeSystem(t)
	}

	var sig Signature
	for _, req := range s.required {
		sig = sig.Set(req.register(r.components))
	}
	s.signature = sig
	s.registry = r
	s.clearEntities()

	r.systems[t] = system
	r.systemOrder = append(r.systemOrder, t)

	for id, state := range r.states {
		if state == stateActive && !r.pendingKillSet.Has(EntityId(id)) && r.signatures[id].Contains(sig) {
			s.AddEntityToSystem(Entity{id: EntityId(id), registry: r})
		}
	}

	r.logger.Debug("system added", "system", systemName(t), "signature", sig.String(), "entities", s.EntityCount())
}

func (r *Registry) removeSystem(t reflect.Type) bool {
	system, ok := r.systems[t]
	if !ok {
		return false
	}
	s := system.base()
	s.clearEntities()
	s.registry = nil
	delete(r.systems, t)
	r.systemOrder = slices.DeleteFunc(r.systemOrder, func(other reflect.Type) bool {
		return other == t
	})
	r.logger.Debug("system removed", "system", systemName(t))
	return true
}

// holds reports whether system is the instance registered for its type.
func (r *Registry) holds(system System) bool {
	current, ok := r.systems[reflect.TypeOf(system)]
	return ok && current == system
}

// Systems returns the registered systems in registration order.
func (r *Registry) Systems() []System {
	out := make([]System, len(r.systemOrder))
	for i, t := range r.systemOrder {
		out[i] = r.systems[t]
	}
	return out
}

// RemoveSystem unregisters the system of type S. Returns false if none was registered.
func RemoveSystem[S System](r *Registry) bool {
	return r.removeSystem(reflect.TypeFor[S]())
}

// HasSystem reports whether a system of type S is registered.
func HasSystem[S System](r *Registry) bool {
	_, ok := r.systems[reflect.TypeFor[S]()]
	return ok
}

// GetSystem returns the registered system of type S.
func GetSystem[S System](r *Registry) (S, error) {
	t := reflect.TypeFor[S]()
	system, ok := r.systems[t]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: %s", ErrSystemNotFound, t)
	}
	return system.(S), nil
}

// MustGetSystem is GetSystem for systems that are known to be registered.
// A missing system is a programming error and panics.
func MustGetSystem[S System](r *Registry) S {
	s, err := GetSystem[S](r)
	if err != nil {
		panic(err)
	}
	return s
}
