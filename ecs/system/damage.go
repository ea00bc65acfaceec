package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// ApplyDamage takes amount off e's health. It reports true when this hit
// ran the health out, in which case e is tagged for respawn. Entities
// without Health, or already waiting to respawn, are left alone.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount int) bool {
	if amount <= 0 || ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
		return false
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	h.Current -= amount
	if h.Current > 0 {
		return false
	}
	h.Current = 0
	_ = ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
	return true
}
