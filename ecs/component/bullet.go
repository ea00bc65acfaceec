package component

import "github.com/jakecoffman/cp"

// Bullet is a projectile. Bullets live in a fixed-capacity pool rather than
// the world, so there is no component handle for them.
type Bullet struct {
	Position  cp.Vector
	Direction cp.Vector
	Rotation  float64
	Speed     float64
	Radius    float64
	Damage    int
}
