package ecs

import "reflect"

// RegistryStats is a point-in-time summary of a Registry.
type RegistryStats struct {
	EntityCount        int
	PendingAddCount    int
	PendingKillCount   int
	FreeIdCount        int
	ComponentTypeCount int
	TagCount           int
	GroupCount         int
	Pools              []PoolStats
	Systems            []SystemInfo
}

// PoolStats describes a single component pool.
type PoolStats struct {
	Id   ComponentId
	Type string
	Size int
}

// SystemInfo describes a registered system.
type SystemInfo struct {
	Name        string
	Signature   Signature
	Components  []string
	EntityCount int
}

// CollectStats gathers counts for debugging and reporting.
func (r *Registry) CollectStats() *RegistryStats {
	stats := &RegistryStats{
		EntityCount:        r.EntityCount(),
		PendingAddCount:    len(r.pendingAdd),
		PendingKillCount:   len(r.pendingKill),
		FreeIdCount:        len(r.freeIds),
		ComponentTypeCount: r.components.Count(),
		TagCount:           len(r.entityPerTag),
		GroupCount:         len(r.entitiesPerGroup),
	}

	for id, p := range r.pools {
		if p == nil {
			continue
		}
		stats.Pools = append(stats.Pools, PoolStats{
			Id:   ComponentId(id),
			Type: r.components.TypeOf(ComponentId(id)).String(),
			Size: p.size(),
		})
	}

	for _, t := range r.systemOrder {
		s := r.systems[t].base()
		components := make([]string, len(s.required))
		for i, req := range s.required {
			components[i] = req.typ.String()
		}
		stats.Systems = append(stats.Systems, SystemInfo{
			Name:        systemName(t),
			Signature:   s.signature,
			Components:  components,
			EntityCount: s.EntityCount(),
		})
	}

	return stats
}

// SystemName returns the display name of a system, its type name without package.
func SystemName(system System) string {
	return systemName(reflect.TypeOf(system))
}
