package component

// Player marks the controllable entity. Extent is the side of the square
// the player is clamped to the window with.
type Player struct {
	Speed  float64
	Extent float64
}

var PlayerComponent = NewComponent[Player]()
