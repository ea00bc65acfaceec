// Package arena composes the game: one world, the player, the enemy swarm,
// the floor, bullets and sound, acquired in that order and torn down in
// reverse.
package arena

import (
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/lifecycle"
	"github.com/milk9111/swarm/obj"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render"
)

const ShootEffect = "shoot"

var ErrNoSpecs = errors.New("arena: no specs")

// Options size the arena. A nil Rand seeds one from the runtime.
type Options struct {
	Width   float64
	Height  float64
	Enemies int
	Specs   *prefabs.Specs
	Rand    *rand.Rand
}

// Stats is a snapshot for the HUD.
type Stats struct {
	Enemies  int
	Bullets  int
	Contacts int
	Kills    int
}

type Arena struct {
	stack *lifecycle.Stack
	log   zerolog.Logger

	width, height float64

	world   *ecs.World
	frame   *component.Frame
	player  *obj.Player
	enemies *obj.Enemies
	floor   *obj.Floor
	bullets *obj.Bullets
	sound   *obj.Sound

	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem

	input    component.Input
	contacts int
	kills    int
}

// New acquires every subsystem. If one fails, the ones before it are closed
// and the error names the failing subsystem.
func New(opts Options, d obj.Deps) (*Arena, error) {
	if opts.Specs == nil {
		return nil, ErrNoSpecs
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	specs := opts.Specs

	a := &Arena{
		stack:    lifecycle.New("game", d.Log),
		log:      d.Log.With().Str("subsystem", "game").Logger(),
		width:    opts.Width,
		height:   opts.Height,
		renderer: system.NewRenderSystem(),
	}
	st := a.stack

	w, err := lifecycle.Step(st, "world", lifecycle.KindAllocation, func() (*ecs.World, error) {
		w := ecs.NewWorld()
		a.frame = &component.Frame{Width: opts.Width, Height: opts.Height}
		if err := ecs.Add(w, ecs.CreateEntity(w), component.FrameComponent.Kind(), a.frame); err != nil {
			return nil, err
		}
		return w, nil
	}, func(w *ecs.World) error {
		ecs.Reset(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	a.world = w

	if a.player, err = lifecycle.Step(st, "player", lifecycle.KindAllocation, func() (*obj.Player, error) {
		return obj.NewPlayer(w, specs.Player, opts.Width, opts.Height, d)
	}, (*obj.Player).Close); err != nil {
		return nil, err
	}

	if a.enemies, err = lifecycle.Step(st, "enemies", lifecycle.KindAllocation, func() (*obj.Enemies, error) {
		return obj.NewEnemies(w, specs.Enemy, opts.Enemies, opts.Width, opts.Height, rng, d)
	}, (*obj.Enemies).Close); err != nil {
		return nil, err
	}

	if a.floor, err = lifecycle.Step(st, "floor", lifecycle.KindAllocation, func() (*obj.Floor, error) {
		return obj.NewFloor(specs.Floor, d)
	}, (*obj.Floor).Close); err != nil {
		return nil, err
	}

	if a.bullets, err = lifecycle.Step(st, "bullets", lifecycle.KindAllocation, func() (*obj.Bullets, error) {
		return obj.NewBullets(specs.Bullet, d)
	}, (*obj.Bullets).Close); err != nil {
		return nil, err
	}

	if a.sound, err = lifecycle.Step(st, "sound", lifecycle.KindAllocation, func() (*obj.Sound, error) {
		return obj.NewSound(specs.Sound, d)
	}, (*obj.Sound).Close); err != nil {
		return nil, err
	}

	a.scheduler = ecs.NewScheduler(
		system.NewInputSystem(a),
		system.NewPlayerControllerSystem(),
		system.NewEnemySteeringSystem(),
		system.NewColliderSyncSystem(),
		system.NewCollisionSystem(),
		a.bullets.System(),
		system.NewRespawnSystem(rng),
	)

	a.log.Info().
		Float64("width", opts.Width).
		Float64("height", opts.Height).
		Int("enemies", a.enemies.Len()).
		Msg("arena ready")
	return a, nil
}

// Poll hands the pending input to the input system.
func (a *Arena) Poll() component.Input {
	return a.input
}

// Step advances the simulation by dt seconds.
func (a *Arena) Step(dt float64, in component.Input) {
	if a.stack.Closed() {
		return
	}
	a.frame.DT = dt
	a.input = in
	a.scheduler.Update(a.world, a.handle)
}

func (a *Arena) handle(events []ecs.Event) {
	for _, evt := range events {
		switch evt.Type {
		case ecs.EventPlayerContact:
			a.contacts++
			if c, ok := evt.Data.(ecs.ContactEvent); ok {
				a.log.Debug().Stringer("enemy", c.Other).Msg("player contact")
			}
		case ecs.EventEnemyDown:
			a.kills++
			if c, ok := evt.Data.(ecs.ContactEvent); ok {
				a.log.Debug().Stringer("enemy", c.Entity).Int("kills", a.kills).Msg("enemy down")
			}
		case ecs.EventShotFired:
			_ = a.sound.Play(ShootEffect)
		}
	}
}

// Draw renders the floor, every sprite, then the bullets.
func (a *Arena) Draw(c render.Canvas) {
	if a.stack.Closed() || c == nil {
		return
	}
	a.floor.Draw(c, a.width, a.height)
	a.renderer.Draw(a.world, c)
	a.bullets.Draw(c)
}

// Reload applies new tunables to the live entities. Sprites and the bullet
// pool capacity keep their startup values.
func (a *Arena) Reload(specs *prefabs.Specs) {
	if specs == nil || a.stack.Closed() {
		return
	}
	a.player.Apply(specs.Player)
	a.enemies.Apply(specs.Enemy)
	a.bullets.Apply(specs.Bullet)
	a.log.Info().Msg("tuning reloaded")
}

func (a *Arena) Stats() Stats {
	s := Stats{Contacts: a.contacts, Kills: a.kills}
	if !a.stack.Closed() {
		s.Enemies = ecs.Count(a.world, component.EnemyComponent.Kind())
		s.Bullets = a.bullets.Live()
	}
	return s
}

func (a *Arena) World() *ecs.World {
	return a.world
}

func (a *Arena) Player() ecs.Entity {
	return a.player.Entity()
}

func (a *Arena) Size() (float64, float64) {
	return a.width, a.height
}

// Close releases every subsystem in reverse order. It is safe to call more
// than once.
func (a *Arena) Close() error {
	return a.stack.Close()
}
