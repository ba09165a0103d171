package ecs

// EntityId is the numeric identity of an entity. Ids are unique among live
// entities and are recycled once a killed entity has been flushed.
type EntityId uint32

// Entity is a lightweight handle pairing an id with the Registry that owns it.
// Handles are cheap to copy and compare.
//
// Ids are recycled, so a handle kept across the Update in which its entity was
// killed may silently address a newer entity that reused the id. Do not keep
// handles past a frame in which they might be killed without re-checking them
// through HasComponent, tags or system membership.
type Entity struct {
	id       EntityId
	registry *Registry
}

// Id returns the entity id.
func (e Entity) Id() EntityId {
	return e.id
}

// Registry returns the owning registry.
func (e Entity) Registry() *Registry {
	return e.registry
}

// Kill marks the entity for destruction at the next Registry.Update.
func (e Entity) Kill() {
	e.registry.KillEntity(e)
}

// Tag binds a unique tag to this entity.
func (e Entity) Tag(tag string) {
	e.registry.TagEntity(e, tag)
}

// HasTag reports whether this entity holds the given tag.
func (e Entity) HasTag(tag string) bool {
	return e.registry.EntityHasTag(e, tag)
}

// RemoveTag drops this entity's tag, if any.
func (e Entity) RemoveTag() {
	e.registry.RemoveEntityTag(e)
}

// Group places this entity into a named group.
func (e Entity) Group(group string) {
	e.registry.GroupEntity(e, group)
}

// BelongsToGroup reports whether this entity is in the given group.
func (e Entity) BelongsToGroup(group string) bool {
	return e.registry.EntityBelongsToGroup(e, group)
}

// RemoveGroup takes this entity out of its group, if any.
func (e Entity) RemoveGroup() {
	e.registry.RemoveEntityGroup(e)
}

// Signature returns the component signature of this entity.
func (e Entity) Signature() Signature {
	return e.registry.Signature(e)
}
