package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

type staticSource component.Input

func (s staticSource) Poll() component.Input { return component.Input(s) }

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		name string
		in   component.Input
		want component.Input
	}{
		{"left_right_cancel", component.Input{MoveLeft: true, MoveRight: true}, component.Input{}},
		{"up_down_cancel", component.Input{MoveUp: true, MoveDown: true, MoveLeft: true}, component.Input{MoveLeft: true}},
		{"all_four_cancel", component.Input{MoveLeft: true, MoveRight: true, MoveUp: true, MoveDown: true, Shoot: true}, component.Input{Shoot: true}},
		{"single_kept", component.Input{MoveDown: true}, component.Input{MoveDown: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, NormalizeInput(c.in))
		})
	}
}

func TestInputSystemCopiesSnapshot(t *testing.T) {
	w := newTestWorld(t, 800, 600, 0)
	e := addPlayer(t, w, cp.Vector{}, 32)
	src := staticSource{MoveLeft: true, MoveRight: true, MoveUp: true, Shoot: true, Pointer: cp.Vector{X: 9, Y: 9}}

	NewInputSystem(src).Update(w)

	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	require.Equal(t, component.Input{MoveUp: true, Shoot: true, Pointer: cp.Vector{X: 9, Y: 9}}, *in)
}
