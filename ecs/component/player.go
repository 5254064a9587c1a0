package component

// Player marks the controllable character and remembers the prefab it was
// built from so tuning can be reloaded.
type Player struct {
	Prefab string
}

var PlayerComponent = NewComponent[Player]()
