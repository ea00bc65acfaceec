package component

// Weapon gates firing. Remaining counts down to zero; a shot resets it to
// Cooldown.
type Weapon struct {
	Cooldown  float64
	Remaining float64
}

var WeaponComponent = NewComponent[Weapon]()
