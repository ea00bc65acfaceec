package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// InputSource yields the input snapshot for the current frame.
type InputSource interface {
	Poll() component.Input
}

// InputSystem copies the frame's input onto every entity that reads input.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	in := NormalizeInput(s.source.Poll())
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, dst *component.Input) {
		*dst = in
	})
}

// NormalizeInput drops opposing directions held together.
func NormalizeInput(in component.Input) component.Input {
	if in.MoveLeft && in.MoveRight {
		in.MoveLeft, in.MoveRight = false, false
	}
	if in.MoveUp && in.MoveDown {
		in.MoveUp, in.MoveDown = false, false
	}
	return in
}
