package obj

import (
	"github.com/milk9111/swarm/lifecycle"
	"github.com/milk9111/swarm/prefabs"
	"github.com/milk9111/swarm/render"
)

// Floor tiles one texture across the whole world.
type Floor struct {
	stack  *lifecycle.Stack
	tex    render.Texture
	tw, th int
}

func NewFloor(spec prefabs.FloorSpec, d Deps) (*Floor, error) {
	st := lifecycle.New("floor", d.Log)
	tex, err := loadTexture(st, d, spec.Sprite)
	if err != nil {
		return nil, err
	}
	tw, th := tex.Size()
	return &Floor{stack: st, tex: tex, tw: tw, th: th}, nil
}

// Draw covers width x height with tiles. Tiles on the right and bottom
// edges may hang over.
func (f *Floor) Draw(c render.Canvas, width, height float64) {
	if f.tex == nil || f.tw <= 0 || f.th <= 0 {
		return
	}
	tw, th := float64(f.tw), float64(f.th)
	for y := 0.0; y <= height; y += th {
		for x := 0.0; x <= width; x += tw {
			c.Draw(f.tex, render.DrawOptions{X: x, Y: y, Width: tw, Height: th})
		}
	}
}

func (f *Floor) Close() error {
	f.tex = nil
	return f.stack.Close()
}
