package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/pool"
)

func newBulletSystem(t *testing.T, capacity int) (*BulletSystem, *pool.Pool[component.Bullet]) {
	t.Helper()
	p, err := pool.New[component.Bullet](capacity, nil)
	require.NoError(t, err)
	return NewBulletSystem(p, BulletTuning{Speed: 100, Radius: 2, Damage: 1}, zerolog.Nop()), p
}

func armPlayer(t *testing.T, w *ecs.World, e ecs.Entity, pointer cp.Vector, cooldown float64) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, component.WeaponComponent.Kind(), &component.Weapon{Cooldown: cooldown}))
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.Shoot = true
	in.Pointer = pointer
}

func bullets(p *pool.Pool[component.Bullet]) []component.Bullet {
	var out []component.Bullet
	p.ForEach(func(b *component.Bullet) pool.Action {
		out = append(out, *b)
		return pool.Keep
	})
	return out
}

func TestFireSpawnsTowardPointer(t *testing.T) {
	w := newTestWorld(t, 800, 600, 0)
	e := addPlayer(t, w, cp.Vector{X: 84, Y: 84}, 32)
	armPlayer(t, w, e, cp.Vector{X: 100, Y: 0}, 0.5)
	sys, p := newBulletSystem(t, 4)

	sys.Update(w)

	live := bullets(p)
	require.Len(t, live, 1)
	require.Equal(t, cp.Vector{X: 100, Y: 100}, live[0].Position, "spawned at the collider center")
	require.InDelta(t, 0, live[0].Direction.X, 1e-9)
	require.InDelta(t, -1, live[0].Direction.Y, 0.002)
	require.Equal(t, 180.0, live[0].Rotation)
	require.Equal(t, 1, live[0].Damage)
	require.Equal(t, []ecs.EventType{ecs.EventShotFired}, eventTypes(w.Events().Drain()))

	wp, _ := ecs.Get(w, e, component.WeaponComponent.Kind())
	require.Equal(t, 0.5, wp.Remaining)
}

func TestFireRespectsCooldown(t *testing.T) {
	w := newTestWorld(t, 800, 600, 0.1)
	e := addPlayer(t, w, cp.Vector{X: 400, Y: 300}, 32)
	armPlayer(t, w, e, cp.Vector{X: 416, Y: 0}, 0.25)
	sys, p := newBulletSystem(t, 16)

	for i := 0; i < 6; i++ {
		sys.Update(w)
	}
	// fires at frames 0, 3 (0.25 - 3*0.1 <= 0)
	require.Equal(t, 2, p.Active())
}

func TestBulletsLeaveTheWorld(t *testing.T) {
	w := newTestWorld(t, 100, 100, 1)
	sys, p := newBulletSystem(t, 4)
	_, err := p.Spawn(component.Bullet{Position: cp.Vector{X: 50, Y: 5}, Direction: cp.Vector{Y: -1}, Speed: 6, Radius: 2})
	require.NoError(t, err)
	_, err = p.Spawn(component.Bullet{Position: cp.Vector{X: 50, Y: 50}, Direction: cp.Vector{X: 1}, Speed: 10, Radius: 2})
	require.NoError(t, err)

	sys.Update(w)
	require.Len(t, bullets(p), 2, "a bullet partly outside is still live")

	sys.Update(w)
	live := bullets(p)
	require.Len(t, live, 1)
	require.Equal(t, cp.Vector{X: 70, Y: 50}, live[0].Position)
}

func TestBulletHitDamagesEnemy(t *testing.T) {
	w := newTestWorld(t, 800, 600, 0.1)
	enemy := addEnemy(t, w, cp.Vector{X: 200, Y: 92}, 8, 2)
	sys, p := newBulletSystem(t, 4)

	spawn := func() {
		_, err := p.Spawn(component.Bullet{Position: cp.Vector{X: 190, Y: 100}, Direction: cp.Vector{X: 1}, Speed: 100, Radius: 2, Damage: 1})
		require.NoError(t, err)
	}

	spawn()
	sys.Update(w)
	require.Zero(t, p.Active(), "bullet is removed on hit")
	require.Equal(t, []ecs.EventType{ecs.EventEnemyHit}, eventTypes(w.Events().Drain()))
	h, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
	require.Equal(t, 1, h.Current)

	spawn()
	sys.Update(w)
	require.Equal(t, []ecs.EventType{ecs.EventEnemyHit, ecs.EventEnemyDown}, eventTypes(w.Events().Drain()))
	require.True(t, ecs.Has(w, enemy, component.RespawnRequestComponent.Kind()))

	spawn()
	sys.Update(w)
	require.Equal(t, 1, p.Active(), "an enemy waiting to respawn does not absorb bullets")
	require.Empty(t, w.Events().Drain())
}

func TestPoolExhaustionDropsShot(t *testing.T) {
	w := newTestWorld(t, 800, 600, 0.01)
	e := addPlayer(t, w, cp.Vector{X: 400, Y: 300}, 32)
	armPlayer(t, w, e, cp.Vector{X: 416, Y: 0}, 0)
	sys, p := newBulletSystem(t, 2)

	for i := 0; i < 5; i++ {
		require.NotPanics(t, func() { sys.Update(w) })
	}
	require.Equal(t, 2, p.Active())
	require.Zero(t, p.Free())

	fired := 0
	for _, ty := range eventTypes(w.Events().Drain()) {
		if ty == ecs.EventShotFired {
			fired++
		}
	}
	require.Equal(t, 2, fired)
}
