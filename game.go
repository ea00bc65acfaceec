package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/milk9111/swarm/arena"
	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render/ebitenrender"
)

// Controls is one frame of input: the player's input plus the game-level
// quit and pause requests.
type Controls struct {
	component.Input
	Quit  bool
	Pause bool
}

type controlSource interface {
	Poll() Controls
}

type changeSource interface {
	Drain() []string
}

type Game struct {
	arena  *arena.Arena
	input  controlSource
	clock  *common.Clock
	log    zerolog.Logger
	ui     *ebitenui.UI
	width  int
	height int

	changes changeSource
	reload  func() (*prefabs.Specs, error)

	running bool
	paused  bool
	debug   bool
}

func NewGame(a *arena.Arena, input controlSource, log zerolog.Logger) *Game {
	w, h := a.Size()
	return &Game{
		arena:   a,
		input:   input,
		clock:   common.NewClock(nil),
		log:     log.With().Str("subsystem", "driver").Logger(),
		width:   int(w),
		height:  int(h),
		running: true,
	}
}

func (g *Game) Update() error {
	if !g.running {
		return ebiten.Termination
	}

	dt := g.clock.Tick()
	c := g.input.Poll()
	g.applyChanges()

	if c.Quit {
		g.running = false
	}
	if c.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		if g.ui != nil {
			g.ui.Update()
		}
		return nil
	}

	g.arena.Step(dt, c.Input)
	return nil
}

// applyChanges reloads tuning once per frame when spec files changed.
func (g *Game) applyChanges() {
	if g.changes == nil || g.reload == nil {
		return
	}
	names := g.changes.Drain()
	if len(names) == 0 {
		return
	}
	specs, err := g.reload()
	if err != nil {
		g.log.Warn().Err(err).Strs("files", names).Msg("reload rejected")
		return
	}
	g.arena.Reload(specs)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.arena.Draw(ebitenrender.Canvas{Screen: screen})

	if g.paused && g.ui != nil {
		g.ui.Draw(screen)
	}
	if g.debug {
		s := g.arena.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  enemies: %d  bullets: %d  kills: %d  contacts: %d",
			g.clock.FPS(), s.Enemies, s.Bullets, s.Kills, s.Contacts))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) Resume() {
	g.paused = false
}

func (g *Game) Quit() {
	g.running = false
}
