package obj

import (
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/lifecycle"
	"github.com/milk9111/swarm/pool"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render"
)

// Bullets owns the bullet sprite and the fixed pool of live bullets.
type Bullets struct {
	stack  *lifecycle.Stack
	tex    render.Texture
	tw, th float64
	pool   *pool.Pool[component.Bullet]
	system *system.BulletSystem
}

func NewBullets(spec prefabs.BulletSpec, d Deps) (*Bullets, error) {
	st := lifecycle.New("bullets", d.Log)

	tex, err := loadTexture(st, d, spec.Sprite)
	if err != nil {
		return nil, err
	}

	p, err := lifecycle.Step(st, "pool", lifecycle.KindAllocation, func() (*pool.Pool[component.Bullet], error) {
		return pool.New[component.Bullet](spec.Capacity, nil)
	}, func(p *pool.Pool[component.Bullet]) error {
		p.Destroy()
		return nil
	})
	if err != nil {
		return nil, err
	}

	tw, th := tex.Size()
	return &Bullets{
		stack:  st,
		tex:    tex,
		tw:     float64(tw),
		th:     float64(th),
		pool:   p,
		system: system.NewBulletSystem(p, Tuning(spec), d.Log),
	}, nil
}

// Tuning extracts the per-shot values from spec.
func Tuning(spec prefabs.BulletSpec) system.BulletTuning {
	return system.BulletTuning{Speed: spec.Speed, Radius: spec.Radius, Damage: spec.Damage}
}

// System returns the ecs system that fires and moves the bullets.
func (b *Bullets) System() *system.BulletSystem {
	return b.system
}

// Live returns the number of bullets in flight.
func (b *Bullets) Live() int {
	if b.pool == nil || b.stack.Closed() {
		return 0
	}
	return b.pool.Active()
}

// Apply changes speed, radius and damage for shots fired from now on. The
// pool capacity is fixed at creation.
func (b *Bullets) Apply(spec prefabs.BulletSpec) {
	b.system.SetTuning(Tuning(spec))
}

// Draw renders every live bullet centered on its position.
func (b *Bullets) Draw(c render.Canvas) {
	if b.stack.Closed() {
		return
	}
	b.pool.ForEach(func(bl *component.Bullet) pool.Action {
		c.Draw(b.tex, render.DrawOptions{
			X:        bl.Position.X - b.tw/2,
			Y:        bl.Position.Y - b.th/2,
			Width:    b.tw,
			Height:   b.th,
			Rotation: bl.Rotation,
		})
		return pool.Keep
	})
}

func (b *Bullets) Close() error {
	return b.stack.Close()
}
