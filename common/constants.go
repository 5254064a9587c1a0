package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate; every system steps by TickSeconds.
	TPS         = 60
	TickSeconds = 1.0 / TPS

	// Gravity in pixels per second squared, before a body's gravity scale.
	Gravity = 980.0

	// ReferenceArmLength is the camera arm length that renders at zoom 1.
	ReferenceArmLength = 500.0

	TileSize = 32.0
)
