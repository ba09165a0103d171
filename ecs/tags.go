package ecs

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// TagEntity binds tag to the entity. Tags are one-to-one and the last write
// wins: the entity loses any previous tag, and an entity previously holding
// tag loses it.
func (r *Registry) TagEntity(e Entity, tag string) {
	if !r.known(e.id) {
		r.logger.Warn("tag on dead entity ignored", "entity", e.id, "tag", tag)
		return
	}

	r.removeTag(e.id)
	if previous, ok := r.entityPerTag[tag]; ok {
		r.tagPerEntity.Del(previous)
		r.logger.Debug("tag rebound", "tag", tag, "from", previous, "to", e.id)
	}

	r.entityPerTag[tag] = e.id
	r.tagPerEntity.Put(e.id, tag)
}

// EntityHasTag reports whether the entity holds tag.
func (r *Registry) EntityHasTag(e Entity, tag string) bool {
	current, ok := r.tagPerEntity.Get(e.id)
	return ok && current == tag
}

// GetEntityByTag returns the entity bound to tag.
func (r *Registry) GetEntityByTag(tag string) (Entity, bool) {
	id, ok := r.entityPerTag[tag]
	if !ok {
		return Entity{}, false
	}
	return Entity{id: id, registry: r}, true
}

// TagOf returns the tag bound to the entity.
func (r *Registry) TagOf(e Entity) (string, bool) {
	return r.tagPerEntity.Get(e.id)
}

// RemoveEntityTag removes the entity's tag, if any.
func (r *Registry) RemoveEntityTag(e Entity) {
	r.removeTag(e.id)
}

func (r *Registry) removeTag(id EntityId) {
	tag, ok := r.tagPerEntity.Get(id)
	if !ok {
		return
	}
	delete(r.entityPerTag, tag)
	r.tagPerEntity.Del(id)
}

// GroupEntity moves the entity into group. An entity is in at most one group;
// grouping it again takes it out of its previous group.
func (r *Registry) GroupEntity(e Entity, group string) {
	if !r.known(e.id) {
		r.logger.Warn("group on dead entity ignored", "entity", e.id, "group", group)
		return
	}

	if current, ok := r.groupPerEntity.Get(e.id); ok {
		if current == group {
			return
		}
		r.removeGroup(e.id)
	}

	members, ok := r.entitiesPerGroup[group]
	if !ok {
		members = intmap.New[EntityId, struct{}](16)
		r.entitiesPerGroup[group] = members
	}
	members.Put(e.id, struct{}{})
	r.groupPerEntity.Put(e.id, group)
}

// EntityBelongsToGroup reports whether the entity is in group.
func (r *Registry) EntityBelongsToGroup(e Entity, group string) bool {
	current, ok := r.groupPerEntity.Get(e.id)
	return ok && current == group
}

// GetEntitiesByGroup returns the members of group in ascending id order.
func (r *Registry) GetEntitiesByGroup(group string) []Entity {
	members, ok := r.entitiesPerGroup[group]
	if !ok {
		return nil
	}

	ids := make([]EntityId, 0, members.Len())
	members.ForEach(func(id EntityId, _ struct{}) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)

	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = Entity{id: id, registry: r}
	}
	return out
}

// GroupOf returns the group the entity belongs to.
func (r *Registry) GroupOf(e Entity) (string, bool) {
	return r.groupPerEntity.Get(e.id)
}

// Groups returns the names of all non-empty groups, sorted.
func (r *Registry) Groups() []string {
	names := make([]string, 0, len(r.entitiesPerGroup))
	for name := range r.entitiesPerGroup {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RemoveEntityGroup takes the entity out of its group, if any.
func (r *Registry) RemoveEntityGroup(e Entity) {
	r.removeGroup(e.id)
}

func (r *Registry) removeGroup(id EntityId) {
	group, ok := r.groupPerEntity.Get(id)
	if !ok {
		return
	}
	r.groupPerEntity.Del(id)
	if members, ok := r.entitiesPerGroup[group]; ok {
		members.Del(id)
		if members.Len() == 0 {
			delete(r.entitiesPerGroup, group)
		}
	}
}
