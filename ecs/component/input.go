package component

import "github.com/jakecoffman/cp"

// Input stores per-frame input state for an entity. Opposing directions
// held together cancel out before systems see them.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool
	Shoot     bool
	Pointer   cp.Vector
}

var InputComponent = NewComponent[Input]()
