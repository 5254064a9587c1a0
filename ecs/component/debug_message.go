package component

import "image/color"

// DebugMessage is an on-screen message that expires after Remaining seconds.
type DebugMessage struct {
	Text      string
	Color     color.RGBA
	Remaining float64
}

// DebugMessages is the on-screen debug log.
type DebugMessages struct {
	Messages []DebugMessage
}

var DebugMessagesComponent = NewComponent[DebugMessages]()
