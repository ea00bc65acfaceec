package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

func newTestWorld(t *testing.T, width, height, dt float64) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	require.NoError(t, ecs.Add(w, ecs.CreateEntity(w), component.FrameComponent.Kind(), &component.Frame{DT: dt, Width: width, Height: height}))
	return w
}

func addPlayer(t *testing.T, w *ecs.World, pos cp.Vector, extent float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	off := cp.Vector{X: extent / 2, Y: extent / 2}
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Speed: 100, Extent: extent}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Center: pos.Add(off), Offset: off, Radius: extent / 2}))
	return e
}

func addEnemy(t *testing.T, w *ecs.World, pos cp.Vector, radius float64, health int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	off := cp.Vector{X: radius, Y: radius}
	require.NoError(t, ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{WalkSpeed: 50}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Center: pos.Add(off), Offset: off, Radius: radius}))
	require.NoError(t, ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: health, Max: health}))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: 2 * radius, Height: 2 * radius, Frames: 4}))
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Speed: 10, Frames: 4}))
	return e
}

func eventTypes(events []ecs.Event) []ecs.EventType {
	out := make([]ecs.EventType, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}
