package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render"
)

// NewEnemy builds one enemy at pos. tex is a horizontal strip of
// spec.Frames cells; the collider is centered on a cell.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, tex render.Texture, pos cp.Vector) (ecs.Entity, error) {
	frames := max(spec.Frames, 1)
	tw, th := tex.Size()
	fw, fh := float64(tw/frames), float64(th)
	offset := cp.Vector{X: fw / 2, Y: fh / 2}

	return BuildEntity(w, spec.Name,
		with(component.EnemyComponent.Kind(), &component.Enemy{WalkSpeed: spec.WalkSpeed}),
		with(component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}),
		with(component.TransformComponent.Kind(), &component.Transform{Position: pos}),
		with(component.ColliderComponent.Kind(), &component.Collider{Center: pos.Add(offset), Offset: offset, Radius: min(fw, fh) * spec.ColliderScale}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Texture: tex, Width: fw, Height: fh, Frames: frames}),
		with(component.AnimationComponent.Kind(), &component.Animation{Speed: spec.AnimationSpeed, Frames: frames}),
		with(component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer}),
	)
}

// ApplyEnemySpec updates the tunables of every live enemy.
func ApplyEnemySpec(w *ecs.World, spec prefabs.EnemySpec) {
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, en *component.Enemy) {
		en.WalkSpeed = spec.WalkSpeed
		if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			a.Speed = spec.AnimationSpeed
		}
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && spec.Health > 0 {
			h.Max = spec.Health
			h.Current = min(h.Current, h.Max)
		}
	})
}
