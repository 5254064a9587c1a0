package component

// TouchEdge is a touch that started or ended this frame.
type TouchEdge struct {
	ID int
	X  float64
	Y  float64
}

// Input stores per-frame input state for an entity. Pressed/Released fields
// are edges and only hold for the frame they happened on.
type Input struct {
	MoveX        float64
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	DashPressed  bool
	DashReleased bool

	TouchesPressed  []TouchEdge
	TouchesReleased []TouchEdge
}

var InputComponent = NewComponent[Input]()
