// Package render holds the drawing contracts the game is written against.
// The ebiten binding lives in render/ebitenrender; tests use
// render/rendertest.
package render

import (
	"errors"
	"image"
)

var (
	ErrEmptyImage   = errors.New("render: empty image")
	ErrEmptyTexture = errors.New("render: texture has no size")
)

// Texture is an image bound to the rendering device.
type Texture interface {
	Size() (width, height int)
	Dispose()
}

// Device binds decoded images to the renderer.
type Device interface {
	NewTexture(img image.Image) (Texture, error)
}

// DrawOptions places a texture. X, Y is the top-left corner of the
// destination box; Rotation is in degrees, clockwise about the box center.
// A zero Source draws the whole texture.
type DrawOptions struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
	Source        image.Rectangle
}

// Canvas is the per-frame draw target.
type Canvas interface {
	Draw(tex Texture, opts DrawOptions)
}

// Query returns the texture's size, failing for a texture the device bound
// with no pixels.
func Query(tex Texture) (int, int, error) {
	if tex == nil {
		return 0, 0, ErrEmptyTexture
	}
	w, h := tex.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, ErrEmptyTexture
	}
	return w, h, nil
}

// FrameRect returns the source rectangle of frame index in a horizontal
// strip of frames equally sized cells. index wraps.
func FrameRect(texW, texH, frames, index int) image.Rectangle {
	if frames <= 1 {
		return image.Rect(0, 0, texW, texH)
	}
	fw := texW / frames
	index %= frames
	if index < 0 {
		index += frames
	}
	return image.Rect(index*fw, 0, (index+1)*fw, texH)
}
