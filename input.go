package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs/component"
)

type ebitenInput struct{}

func newEbitenInput() ebitenInput {
	return ebitenInput{}
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (ebitenInput) Poll() Controls {
	x, y := ebiten.CursorPosition()
	return Controls{
		Input: component.Input{
			MoveLeft:  anyKey(ebiten.KeyA, ebiten.KeyArrowLeft),
			MoveRight: anyKey(ebiten.KeyD, ebiten.KeyArrowRight),
			MoveUp:    anyKey(ebiten.KeyW, ebiten.KeyArrowUp),
			MoveDown:  anyKey(ebiten.KeyS, ebiten.KeyArrowDown),
			Shoot:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Pointer:   cp.Vector{X: float64(x), Y: float64(y)},
		},
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit:  ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed(),
	}
}
