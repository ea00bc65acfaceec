package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// componentAdder attaches one component to a freshly created entity.
type componentAdder func(w *ecs.World, e ecs.Entity) error

func with[T any](kind component.ComponentKind[T], v *T) componentAdder {
	return func(w *ecs.World, e ecs.Entity) error {
		if err := ecs.Add(w, e, kind, v); err != nil {
			return fmt.Errorf("add %T: %w", v, err)
		}
		return nil
	}
}

// BuildEntity creates an entity and applies adders in order. If any adder
// fails the entity is destroyed again, so callers never see a half-built
// entity.
func BuildEntity(w *ecs.World, name string, adders ...componentAdder) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	e := ecs.CreateEntity(w)
	for _, add := range adders {
		if err := add(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: %w", name, err)
		}
	}
	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, pos cp.Vector, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.Position = pos
	t.Rotation = rotation
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		return err
	}
	if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		c.Center = pos.Add(c.Offset)
	}
	return nil
}
