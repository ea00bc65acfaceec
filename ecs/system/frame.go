package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// frameOf returns the world's Frame singleton. Systems skip the step when
// it is missing.
func frameOf(w *ecs.World) (*component.Frame, bool) {
	_, f, ok := ecs.Single(w, component.FrameComponent.Kind())
	return f, ok
}
