package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// Collide reports whether two circles overlap. Touching circles do not.
func Collide(a, b component.Collider) bool {
	r := a.Radius + b.Radius
	return a.Center.DistanceSq(b.Center) < r*r
}

// CollisionSystem reports every enemy touching the player as an
// EventPlayerContact.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	pe, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	pc, ok := ecs.Get(w, pe, component.ColliderComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, ec *component.Collider) {
		if Collide(*pc, *ec) {
			w.Events().Push(ecs.Event{
				Type: ecs.EventPlayerContact,
				Data: ecs.ContactEvent{Entity: pe, Other: e},
			})
		}
	})
}
