package component

// Camera is a side-view follow camera on a spring arm. ArmLength maps to
// zoom against the reference arm length; SocketOffset raises the view.
type Camera struct {
	TargetName   string
	ArmLength    float64
	SocketOffset float64
	Smoothness   float64
	Zoom         float64
}

var CameraComponent = NewComponent[Camera]()
