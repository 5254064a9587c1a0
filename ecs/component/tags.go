package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// SolidTag marks level geometry the player can stand on or wall jump off.
type SolidTag struct{}

var SolidTagComponent = NewComponent[SolidTag]()
