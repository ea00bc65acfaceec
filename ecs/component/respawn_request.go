package component

// RespawnRequest marks an enemy whose health ran out. The respawn system
// moves it to a fresh position and restores its health.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
