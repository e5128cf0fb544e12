package pool

import "fmt"

// Snapshot is a read-only view of pool state for diagnostic consumers such as
// the registry and its inspector. It is recomputed on demand and grants no
// write access to the pool.
type Snapshot struct {
	Name                string `json:"name"`
	Type                string `json:"type"`
	InstanceCount       int    `json:"instance_count"`
	AvailableInstances  int    `json:"available_instances"`
	ExhaustionBehaviour string `json:"exhaustion_behaviour"`
	SpawnedTotal        uint64 `json:"spawned_total"`
	DespawnedTotal      uint64 `json:"despawned_total"`
	CreatedTotal        uint64 `json:"created_total"`
	ExhaustionsTotal    uint64 `json:"exhaustions_total"`
}

// Snapshot captures the pool's current state under the pool lock. The type
// identifier is the Go type of the pooled instances.
func (p *Pool[T]) Snapshot() Snapshot {
	var zero T

	p.mu.Lock()
	snap := Snapshot{
		Name:                p.name,
		Type:                fmt.Sprintf("%T", zero),
		InstanceCount:       len(p.slab),
		AvailableInstances:  p.availableLocked(),
		ExhaustionBehaviour: p.behaviour.String(),
	}
	p.mu.Unlock()

	snap.SpawnedTotal = p.spawned.Load()
	snap.DespawnedTotal = p.despawned.Load()
	snap.CreatedTotal = p.created.Load()
	snap.ExhaustionsTotal = p.exhaustions.Load()

	if p.collector != nil {
		p.collector.SetSize(snap.InstanceCount)
		p.collector.SetAvailable(snap.AvailableInstances)
	}
	return snap
}
