package component

import "github.com/jakecoffman/cp"

// Transform places an entity. Position is the top-left corner of its
// sprite; Rotation is in degrees, clockwise.
type Transform struct {
	Position cp.Vector
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
