package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render"
)

// NewPlayer builds the player at pos. The collision square's side is the
// smaller of the drawn width and height; the collider circle is inscribed
// in that square at the sprite's top-left.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, tex render.Texture, pos cp.Vector) (ecs.Entity, error) {
	tw, th := tex.Size()
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = float64(tw)
	}
	if height <= 0 {
		height = float64(th)
	}
	extent := min(width, height)
	offset := cp.Vector{X: extent / 2, Y: extent / 2}

	return BuildEntity(w, spec.Name,
		with(component.PlayerComponent.Kind(), &component.Player{Speed: spec.Speed, Extent: extent}),
		with(component.InputComponent.Kind(), &component.Input{}),
		with(component.WeaponComponent.Kind(), &component.Weapon{Cooldown: spec.FireCooldown}),
		with(component.TransformComponent.Kind(), &component.Transform{Position: pos}),
		with(component.ColliderComponent.Kind(), &component.Collider{Center: pos.Add(offset), Offset: offset, Radius: extent / 2}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Texture: tex, Width: width, Height: height, Frames: 1}),
		with(component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer}),
	)
}

// ApplyPlayerSpec updates the tunables of a live player.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec prefabs.PlayerSpec) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		p.Speed = spec.Speed
	}
	if wp, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok {
		wp.Cooldown = spec.FireCooldown
		wp.Remaining = min(wp.Remaining, wp.Cooldown)
	}
}
