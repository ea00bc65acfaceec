package system

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/pool"
)

// BulletTuning is copied into every bullet at spawn time.
type BulletTuning struct {
	Speed  float64
	Radius float64
	Damage int
}

type target struct {
	entity   ecs.Entity
	collider component.Collider
}

// BulletSystem fires the player's weapon, moves live bullets and resolves
// their hits against enemies.
type BulletSystem struct {
	bullets *pool.Pool[component.Bullet]
	tuning  BulletTuning
	log     zerolog.Logger
	targets []target
}

func NewBulletSystem(bullets *pool.Pool[component.Bullet], tuning BulletTuning, log zerolog.Logger) *BulletSystem {
	return &BulletSystem{
		bullets: bullets,
		tuning:  tuning,
		log:     log.With().Str("subsystem", "bullets").Logger(),
	}
}

// SetTuning applies to bullets fired from now on.
func (s *BulletSystem) SetTuning(t BulletTuning) {
	s.tuning = t
}

func (s *BulletSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok || s.bullets == nil {
		return
	}

	s.fire(w, f.DT)
	s.collectTargets(w)

	s.bullets.ForEach(func(b *component.Bullet) pool.Action {
		b.Position = b.Position.Add(b.Direction.Mult(b.Speed * f.DT))
		if outside(b, f) {
			return pool.Remove
		}

		bc := component.Collider{Center: b.Position, Radius: b.Radius}
		for _, t := range s.targets {
			if !Collide(bc, t.collider) || ecs.Has(w, t.entity, component.RespawnRequestComponent.Kind()) {
				continue
			}
			hit := ecs.ContactEvent{Entity: t.entity}
			w.Events().Push(ecs.Event{Type: ecs.EventEnemyHit, Data: hit})
			if ApplyDamage(w, t.entity, b.Damage) {
				w.Events().Push(ecs.Event{Type: ecs.EventEnemyDown, Data: hit})
			}
			return pool.Remove
		}
		return pool.Keep
	})
}

func (s *BulletSystem) fire(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.WeaponComponent.Kind(), func(e ecs.Entity, _ *component.Player, wp *component.Weapon) {
		if wp.Remaining > 0 {
			wp.Remaining = max(wp.Remaining-dt, 0)
		}
		in, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok || !in.Shoot || wp.Remaining > 0 {
			return
		}
		c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			return
		}

		d := in.Pointer.Sub(c.Center)
		lsq := d.LengthSq()
		if lsq == 0 {
			return
		}
		inv := common.FastInvSqrt(lsq)
		wp.Remaining = wp.Cooldown

		_, err := s.bullets.Spawn(component.Bullet{
			Position:  c.Center,
			Direction: d.Mult(inv),
			Rotation:  Heading(d, inv),
			Speed:     s.tuning.Speed,
			Radius:    s.tuning.Radius,
			Damage:    s.tuning.Damage,
		})
		if err != nil {
			s.log.Warn().Err(err).Int("live", s.bullets.Active()).Msg("shot dropped")
			return
		}
		w.Events().Push(ecs.Event{Type: ecs.EventShotFired, Data: ecs.ContactEvent{Entity: e}})
	})
}

func (s *BulletSystem) collectTargets(w *ecs.World) {
	s.targets = s.targets[:0]
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, c *component.Collider) {
		s.targets = append(s.targets, target{entity: e, collider: *c})
	})
}

// outside reports whether the bullet has fully left the play area.
func outside(b *component.Bullet, f *component.Frame) bool {
	r := b.Radius
	return b.Position.X < -r || b.Position.Y < -r ||
		b.Position.X > f.Width+r || b.Position.Y > f.Height+r
}
