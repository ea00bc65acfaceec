package component

import "github.com/jakecoffman/cp"

// Collider is a circle. Center is derived from the Transform each frame as
// Position + Offset.
type Collider struct {
	Center cp.Vector
	Offset cp.Vector
	Radius float64
}

var ColliderComponent = NewComponent[Collider]()
