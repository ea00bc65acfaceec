package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

func TestMovePlayer(t *testing.T) {
	const (
		width  = 800.0
		height = 600.0
		extent = 32.0
	)
	cases := []struct {
		name string
		pos  cp.Vector
		in   component.Input
		step float64
		want cp.Vector
	}{
		{"idle", cp.Vector{X: 100, Y: 100}, component.Input{}, 5, cp.Vector{X: 100, Y: 100}},
		{"left", cp.Vector{X: 100, Y: 100}, component.Input{MoveLeft: true}, 5, cp.Vector{X: 95, Y: 100}},
		{"left_wall", cp.Vector{X: 1, Y: 100}, component.Input{MoveLeft: true}, 5, cp.Vector{X: 0, Y: 100}},
		{"right_wall", cp.Vector{X: 765, Y: 100}, component.Input{MoveRight: true}, 10, cp.Vector{X: 768, Y: 100}},
		{"top_wall", cp.Vector{X: 50, Y: 2}, component.Input{MoveUp: true}, 5, cp.Vector{X: 50, Y: 0}},
		{"bottom_wall", cp.Vector{X: 50, Y: 566}, component.Input{MoveDown: true}, 5, cp.Vector{X: 50, Y: 568}},
		{"diagonal_into_corner", cp.Vector{X: 3, Y: 4}, component.Input{MoveLeft: true, MoveUp: true}, 10, cp.Vector{X: 0, Y: 0}},
		{"diagonal_into_far_corner", cp.Vector{X: 760, Y: 560}, component.Input{MoveRight: true, MoveDown: true}, 50, cp.Vector{X: 768, Y: 568}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, MovePlayer(c.pos, c.in, c.step, extent, width, height))
		})
	}
}

func TestMovePlayerStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.Float64Range(240, 2000).Draw(t, "width")
		height := rapid.Float64Range(240, 2000).Draw(t, "height")
		extent := rapid.Float64Range(1, 200).Draw(t, "extent")
		pos := cp.Vector{
			X: rapid.Float64Range(0, width-extent).Draw(t, "x"),
			Y: rapid.Float64Range(0, height-extent).Draw(t, "y"),
		}
		for i := rapid.IntRange(1, 50).Draw(t, "frames"); i > 0; i-- {
			in := NormalizeInput(component.Input{
				MoveLeft:  rapid.Bool().Draw(t, "left"),
				MoveRight: rapid.Bool().Draw(t, "right"),
				MoveUp:    rapid.Bool().Draw(t, "up"),
				MoveDown:  rapid.Bool().Draw(t, "down"),
			})
			pos = MovePlayer(pos, in, rapid.Float64Range(0, 500).Draw(t, "step"), extent, width, height)
			if pos.X < 0 || pos.Y < 0 || pos.X+extent > width || pos.Y+extent > height {
				t.Fatalf("player box left the area: pos=%v extent=%v area=%vx%v", pos, extent, width, height)
			}
		}
	})
}

func TestPlayerControllerSystem(t *testing.T) {
	w := newTestWorld(t, 800, 600, 0.5)
	e := addPlayer(t, w, cp.Vector{X: 400, Y: 300}, 32)
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.MoveRight = true
	in.Pointer = cp.Vector{X: 1000, Y: 300}

	NewPlayerControllerSystem().Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	require.Equal(t, cp.Vector{X: 450, Y: 300}, tr.Position, "speed 100 * dt 0.5")
	require.InDelta(t, 90, tr.Rotation, 1e-9, "facing the pointer on the right")
}
