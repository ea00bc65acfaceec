// Command spsa previews an animated sprite strip at the speed the game
// plays it.
package main

import (
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/milk9111/swarm/assets"
	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render"
	"github.com/milk9111/swarm/render/ebitenrender"
)

const previewSize = 512

type preview struct {
	tex    render.Texture
	frames int
	speed  float64
	phase  float64
	clock  *common.Clock
}

func (p *preview) Update() error {
	p.phase = system.AdvancePhase(p.phase, p.clock.Tick()*p.speed, p.frames)
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{A: 0xff})
	tw, th := p.tex.Size()
	w, h := fit(float64(tw/max(p.frames, 1)), float64(th), previewSize*0.75)
	ebitenrender.Canvas{Screen: screen}.Draw(p.tex, render.DrawOptions{
		X:      (previewSize - w) / 2,
		Y:      (previewSize - h) / 2,
		Width:  w,
		Height: h,
		Source: render.FrameRect(tw, th, p.frames, int(p.phase)),
	})
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// fit scales a w x h frame up or down so its longer side is box.
func fit(w, h, box float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	s := box / max(w, h)
	return w * s, h * s
}

func main() {
	fs := pflag.NewFlagSet("spsa", pflag.ExitOnError)
	assetDir := fs.String("assets", "", "asset directory; empty uses the embedded assets")
	sprite := fs.String("sprite", "", "sprite strip; empty uses the enemy prefab's")
	frames := fs.Int("frames", 0, "frames in the strip; 0 uses the enemy prefab's")
	fps := fs.Float64("fps", 0, "frames per second; 0 uses the enemy prefab's")
	_ = fs.Parse(os.Args[1:])

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Str("cmd", "spsa").Logger()

	spec, err := prefabs.LoadSpec[prefabs.EnemySpec](prefabs.EnemyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load enemy prefab")
	}
	if *sprite != "" {
		spec.Sprite = *sprite
	}
	if *frames > 0 {
		spec.Frames = *frames
	}
	if *fps > 0 {
		spec.AnimationSpeed = *fps
	}

	img, err := assets.Dir(*assetDir).Image(spec.Sprite)
	if err != nil {
		log.Fatal().Err(err).Msg("load sprite")
	}
	tex, err := ebitenrender.NewDevice().NewTexture(img)
	if err != nil {
		log.Fatal().Err(err).Msg("bind sprite")
	}
	defer tex.Dispose()

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("spsa: " + spec.Sprite)
	p := &preview{tex: tex, frames: max(spec.Frames, 1), speed: spec.AnimationSpeed, clock: common.NewClock(nil)}
	if err := ebiten.RunGame(p); err != nil {
		log.Error().Err(err).Msg("preview stopped")
	}
}
