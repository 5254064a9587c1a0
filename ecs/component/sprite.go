package component

import "image/color"

// Sprite is a flat colored rectangle centered on the transform.
type Sprite struct {
	Width      float64
	Height     float64
	Color      color.Color
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
