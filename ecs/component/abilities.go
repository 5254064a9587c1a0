package component

import "github.com/milk9111/wipsidescroller/ability"

// Abilities holds the dash and wall jump state machine for a character.
type Abilities struct {
	Character *ability.Character
	Bindings  *ability.Bindings
	Started   bool
}

var AbilitiesComponent = NewComponent[Abilities]()
