// Package ebitenrender binds the render contracts to ebiten images.
package ebitenrender

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/swarm/render"
)

type Device struct{}

func NewDevice() *Device {
	return &Device{}
}

// NewTexture uploads img to the GPU.
func (d *Device) NewTexture(img image.Image) (render.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, render.ErrEmptyImage
	}
	return &Texture{img: ebiten.NewImageFromImage(img)}, nil
}

type Texture struct {
	img *ebiten.Image
}

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Dispose frees the GPU side of the texture. Drawing it afterwards is a
// no-op in ebiten.
func (t *Texture) Dispose() {
	t.img.Deallocate()
}

func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Canvas draws onto the screen image ebiten hands to Game.Draw.
type Canvas struct {
	Screen *ebiten.Image
}

func (c Canvas) Draw(tex render.Texture, o render.DrawOptions) {
	t, ok := tex.(*Texture)
	if !ok || c.Screen == nil {
		return
	}
	src := t.img
	if !o.Source.Empty() {
		src = t.img.SubImage(o.Source).(*ebiten.Image)
	}
	b := src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 {
		return
	}
	dw, dh := o.Width, o.Height
	if dw <= 0 {
		dw = sw
	}
	if dh <= 0 {
		dh = sh
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-sw/2, -sh/2)
	op.GeoM.Scale(dw/sw, dh/sh)
	if o.Rotation != 0 {
		op.GeoM.Rotate(o.Rotation * math.Pi / 180)
	}
	op.GeoM.Translate(o.X+dw/2, o.Y+dh/2)
	op.Filter = ebiten.FilterNearest
	c.Screen.DrawImage(src, op)
}
