package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/common"
)

// Heading turns a direction into a clockwise rotation in degrees where 0
// faces up the screen and 180 faces down. inv is 1/|d|; passing it in lets
// callers that also normalize d share one square root.
//
// The arccosine only spans half a turn, so the sign of -d.X picks the side.
// A direction exactly on the vertical axis has sign 0 and always yields 180.
func Heading(d cp.Vector, inv float64) float64 {
	return common.Sign(-d.X)*common.RadToDeg(common.FastAcos(d.Y*inv)) + 180
}

// HeadingTo returns the Heading from one point toward another.
func HeadingTo(from, to cp.Vector) float64 {
	d := to.Sub(from)
	return Heading(d, common.FastInvSqrt(d.LengthSq()))
}
