package component

// Frame is a singleton carrying the current step's delta (seconds) and the
// play area size.
type Frame struct {
	DT     float64
	Width  float64
	Height float64
}

var FrameComponent = NewComponent[Frame]()
