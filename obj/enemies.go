package obj

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/entity"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/lifecycle"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render"
)

// Enemies owns the shared enemy sprite sheet and every enemy entity.
type Enemies struct {
	stack    *lifecycle.Stack
	world    *ecs.World
	tex      render.Texture
	entities []ecs.Entity
}

// NewEnemies spawns count enemies at random places inside the world.
func NewEnemies(w *ecs.World, spec prefabs.EnemySpec, count int, width, height float64, rng *rand.Rand, d Deps) (*Enemies, error) {
	st := lifecycle.New("enemies", d.Log)

	tex, err := loadTexture(st, d, spec.Sprite)
	if err != nil {
		return nil, err
	}

	ents, err := lifecycle.Step(st, "entities", lifecycle.KindAllocation, func() ([]ecs.Entity, error) {
		if count < 1 {
			return nil, fmt.Errorf("obj: enemy count %d < 1", count)
		}
		frames := max(spec.Frames, 1)
		tw, th := tex.Size()
		fw, fh := float64(tw/frames), float64(th)

		out := make([]ecs.Entity, 0, count)
		for i := 0; i < count; i++ {
			pos := system.RandomPosition(rng, fw, fh, width, height)
			e, err := entity.NewEnemy(w, spec, tex, pos)
			if err != nil {
				destroyAll(w, out)
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	}, func(ents []ecs.Entity) error {
		destroyAll(w, ents)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Enemies{stack: st, world: w, tex: tex, entities: ents}, nil
}

func destroyAll(w *ecs.World, ents []ecs.Entity) {
	for _, e := range ents {
		ecs.DestroyEntity(w, e)
	}
}

func (e *Enemies) Len() int {
	return len(e.entities)
}

func (e *Enemies) Entities() []ecs.Entity {
	return e.entities
}

// Apply updates the tunables of every live enemy.
func (e *Enemies) Apply(spec prefabs.EnemySpec) {
	entity.ApplyEnemySpec(e.world, spec)
}

func (e *Enemies) Close() error {
	return e.stack.Close()
}
