package ability

// Vector3 is a direction or velocity in play space. Y is the lateral
// (side-scrolling) axis and Z points up; X goes into the screen and is
// never written by abilities.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Scale returns v multiplied by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// IsZero reports whether every component of v is zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
