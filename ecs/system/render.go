package system

import (
	"sort"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/render"
)

type drawable struct {
	entity ecs.Entity
	layer  int
}

// RenderSystem draws every sprite, lower layers first.
type RenderSystem struct {
	order []drawable
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, c render.Canvas) {
	if w == nil || c == nil {
		return
	}

	r.order = r.order[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		r.order = append(r.order, drawable{entity: e, layer: layer})
	})
	sort.SliceStable(r.order, func(i, j int) bool {
		if r.order[i].layer != r.order[j].layer {
			return r.order[i].layer < r.order[j].layer
		}
		return r.order[i].entity < r.order[j].entity
	})

	for _, d := range r.order {
		t, _ := ecs.Get(w, d.entity, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, d.entity, component.SpriteComponent.Kind())
		if s.Texture == nil {
			continue
		}
		frame := 0
		if a, ok := ecs.Get(w, d.entity, component.AnimationComponent.Kind()); ok {
			frame = int(a.Phase)
		}
		tw, th := s.Texture.Size()
		c.Draw(s.Texture, render.DrawOptions{
			X:        t.Position.X,
			Y:        t.Position.Y,
			Width:    s.Width,
			Height:   s.Height,
			Rotation: t.Rotation,
			Source:   render.FrameRect(tw, th, s.Frames, frame),
		})
	}
}
