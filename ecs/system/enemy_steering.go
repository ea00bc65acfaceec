package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// EnemySteeringSystem walks every enemy toward the player and advances its
// walk animation.
type EnemySteeringSystem struct{}

func NewEnemySteeringSystem() *EnemySteeringSystem {
	return &EnemySteeringSystem{}
}

func (s *EnemySteeringSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok {
		return
	}

	var target cp.Vector
	hasTarget := false
	if pe, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		if pt, ok := ecs.Get(w, pe, component.TransformComponent.Kind()); ok {
			target, hasTarget = pt.Position, true
		}
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform) {
		if hasTarget {
			t.Position, t.Rotation = Steer(t.Position, target, en.WalkSpeed, f.DT)
		}
		if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			a.Phase = AdvancePhase(a.Phase, f.DT*a.Speed, a.Frames)
		}
	})
}

// Steer moves pos toward target by speed*dt along the normalized
// direction and returns the heading it faces. A pos already on the target
// stays put.
func Steer(pos, target cp.Vector, speed, dt float64) (cp.Vector, float64) {
	d := target.Sub(pos)
	inv := common.FastInvSqrt(d.LengthSq())
	return pos.Add(d.Mult(inv * speed * dt)), Heading(d, inv)
}

// AdvancePhase adds step to phase. Once the phase reaches frames it keeps
// only its fractional part.
func AdvancePhase(phase, step float64, frames int) float64 {
	if frames <= 0 {
		return 0
	}
	phase += step
	if phase >= float64(frames) {
		phase -= math.Floor(phase)
	}
	return phase
}
