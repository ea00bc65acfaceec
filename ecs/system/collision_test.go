package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

func TestCollide(t *testing.T) {
	cases := []struct {
		name string
		dist float64
		want bool
	}{
		{"overlapping", 9.9, true},
		{"touching_is_not_a_hit", 10, false},
		{"apart", 10.1, false},
		{"same_center", 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := component.Collider{Center: cp.Vector{X: 100, Y: 100}, Radius: 5}
			b := component.Collider{Center: cp.Vector{X: 100 + c.dist, Y: 100}, Radius: 5}
			require.Equal(t, c.want, Collide(a, b))
		})
	}
}

func TestCollideIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := func(label string) component.Collider {
			return component.Collider{
				Center: cp.Vector{
					X: rapid.Float64Range(-1e4, 1e4).Draw(t, label+"x"),
					Y: rapid.Float64Range(-1e4, 1e4).Draw(t, label+"y"),
				},
				Radius: rapid.Float64Range(0, 500).Draw(t, label+"r"),
			}
		}
		a, b := gen("a"), gen("b")
		if Collide(a, b) != Collide(b, a) {
			t.Fatalf("asymmetric result for %v and %v", a, b)
		}
	})
}

func TestColliderSyncUsesCurrentPosition(t *testing.T) {
	w := newTestWorld(t, 800, 600, 0.016)
	e := addEnemy(t, w, cp.Vector{X: 10, Y: 10}, 8, 1)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	tr.Position = cp.Vector{X: 200, Y: 150}

	NewColliderSyncSystem().Update(w)

	c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
	require.Equal(t, cp.Vector{X: 208, Y: 158}, c.Center)
}

func TestCollisionSystemReportsContacts(t *testing.T) {
	w := newTestWorld(t, 800, 600, 0.016)
	p := addPlayer(t, w, cp.Vector{X: 100, Y: 100}, 32)
	near := addEnemy(t, w, cp.Vector{X: 110, Y: 110}, 8, 1)
	addEnemy(t, w, cp.Vector{X: 500, Y: 500}, 8, 1)

	NewCollisionSystem().Update(w)

	events := w.Events().Drain()
	require.Len(t, events, 1)
	require.Equal(t, ecs.EventPlayerContact, events[0].Type)
	require.Equal(t, ecs.ContactEvent{Entity: p, Other: near}, events[0].Data)
}
