package component

// LevelBounds is the pixel size of the loaded level. The physics system
// walls it in and the camera keeps its view inside it.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
