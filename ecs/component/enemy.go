package component

type Enemy struct {
	WalkSpeed float64
}

var EnemyComponent = NewComponent[Enemy]()
