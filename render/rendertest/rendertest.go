// Package rendertest provides an in-memory render device for tests.
package rendertest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/milk9111/swarm/render"
)

// Texture records its size and how many times it was disposed.
type Texture struct {
	W, H     int
	Disposed int
	Source   image.Image
}

func (t *Texture) Size() (int, int) { return t.W, t.H }
func (t *Texture) Dispose() { t.Disposed++ }

// Device creates Textures. Err makes every NewTexture fail; ZeroSize binds
// textures that report no pixels so the query step fails.
type Device struct {
	Err      error
	ZeroSize bool
	Created  []*Texture
}

func (d *Device) NewTexture(img image.Image) (render.Texture, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, render.ErrEmptyImage
	}
	t := &Texture{Source: img}
	if !d.ZeroSize {
		t.W, t.H = img.Bounds().Dx(), img.Bounds().Dy()
	}
	d.Created = append(d.Created, t)
	return t, nil
}

// Live returns how many created textures were never disposed.
func (d *Device) Live() int {
	n := 0
	for _, t := range d.Created {
		if t.Disposed == 0 {
			n++
		}
	}
	return n
}

type Call struct {
	Texture render.Texture
	Opts    render.DrawOptions
}

// Canvas records draw calls.
type Canvas struct {
	Calls []Call
}

func (c *Canvas) Draw(tex render.Texture, opts render.DrawOptions) {
	c.Calls = append(c.Calls, Call{Texture: tex, Opts: opts})
}

// PNG encodes a solid w x h image.
func PNG(w, h int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
