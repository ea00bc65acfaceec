package component

import "github.com/milk9111/swarm/render"

// Sprite draws Texture at Width x Height. A sheet with Frames > 1 is a
// horizontal strip of equally sized frames.
type Sprite struct {
	Texture render.Texture
	Width   float64
	Height  float64
	Frames  int
}

var SpriteComponent = NewComponent[Sprite]()
