package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// Update moves the player and turns it toward the pointer.
func (s *PlayerControllerSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		in, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			return
		}
		t.Position = MovePlayer(t.Position, *in, p.Speed*f.DT, p.Extent, f.Width, f.Height)
		t.Rotation = HeadingTo(t.Position, in.Pointer)
	})
}

// MovePlayer offsets pos by step along every held direction. Each axis is
// clamped right after it moves so the extent x extent box stays inside
// [0, width] x [0, height].
func MovePlayer(pos cp.Vector, in component.Input, step, extent, width, height float64) cp.Vector {
	if in.MoveLeft {
		pos.X -= step
		if pos.X < 0 {
			pos.X = 0
		}
	}
	if in.MoveRight {
		pos.X += step
		if pos.X+extent > width {
			pos.X = width - extent
		}
	}
	if in.MoveUp {
		pos.Y -= step
		if pos.Y < 0 {
			pos.Y = 0
		}
	}
	if in.MoveDown {
		pos.Y += step
		if pos.Y+extent > height {
			pos.Y = height - extent
		}
	}
	return pos
}
