package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// ColliderSyncSystem recomputes every collider center from the entity's
// current position. It runs after movement and before anything tests
// collisions.
type ColliderSyncSystem struct{}

func NewColliderSyncSystem() *ColliderSyncSystem {
	return &ColliderSyncSystem{}
}

func (s *ColliderSyncSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, t *component.Transform, c *component.Collider) {
		SyncCollider(t, c)
	})
}

func SyncCollider(t *component.Transform, c *component.Collider) {
	c.Center = t.Position.Add(c.Offset)
}
