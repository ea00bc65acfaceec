package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/entity"
	"github.com/milk9111/swarm/lifecycle"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render"
)

type Player struct {
	stack  *lifecycle.Stack
	world  *ecs.World
	tex    render.Texture
	entity ecs.Entity
}

// NewPlayer loads the player sprite and places the player in the middle of
// a width x height world.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, width, height float64, d Deps) (*Player, error) {
	st := lifecycle.New("player", d.Log)

	tex, err := loadTexture(st, d, spec.Sprite)
	if err != nil {
		return nil, err
	}

	e, err := lifecycle.Step(st, "entity", lifecycle.KindAllocation, func() (ecs.Entity, error) {
		tw, th := tex.Size()
		sw, sh := spec.Width, spec.Height
		if sw <= 0 {
			sw = float64(tw)
		}
		if sh <= 0 {
			sh = float64(th)
		}
		start := cp.Vector{X: (width - sw) / 2, Y: (height - sh) / 2}
		return entity.NewPlayer(w, spec, tex, start)
	}, func(e ecs.Entity) error {
		ecs.DestroyEntity(w, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Player{stack: st, world: w, tex: tex, entity: e}, nil
}

func (p *Player) Entity() ecs.Entity {
	return p.entity
}

// Apply updates the live player's tunables.
func (p *Player) Apply(spec prefabs.PlayerSpec) {
	entity.ApplyPlayerSpec(p.world, p.entity, spec)
}

func (p *Player) Close() error {
	return p.stack.Close()
}
