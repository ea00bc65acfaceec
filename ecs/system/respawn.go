package system

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

type RespawnSystem struct {
	rng *rand.Rand
}

func NewRespawnSystem(rng *rand.Rand) *RespawnSystem {
	return &RespawnSystem{rng: rng}
}

// Update handles pending respawn requests: a fresh random position inside
// the play area, full health, the animation restarted and the collider
// moved along.
func (s *RespawnSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok {
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		defer ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		var width, height float64
		if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			width, height = sp.Width, sp.Height
		}
		t.Position = RandomPosition(s.rng, width, height, f.Width, f.Height)

		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			h.Current = h.Max
		}
		if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			a.Phase = 0
		}
		if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
			SyncCollider(t, c)
		}
	})
}

// RandomPosition returns a top-left corner that keeps a width x height box
// inside the play area.
func RandomPosition(rng *rand.Rand, width, height, areaW, areaH float64) cp.Vector {
	return cp.Vector{
		X: rng.Float64() * max(areaW-width, 0),
		Y: rng.Float64() * max(areaH-height, 0),
	}
}
