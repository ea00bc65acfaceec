package component

// Animation advances Phase by Speed frames per second and wraps it once it
// reaches Frames. The drawn frame is int(Phase).
type Animation struct {
	Phase  float64
	Speed  float64
	Frames int
}

var AnimationComponent = NewComponent[Animation]()
