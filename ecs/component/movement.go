package component

// CharacterMovement is the walking/falling movement model for a character.
// Tuning fields come from the prefab; the rest is runtime state.
type CharacterMovement struct {
	MaxWalkSpeed    float64
	MaxAcceleration float64
	BrakingDecel    float64
	GroundFriction  float64
	AirControl      float64
	GravityScale    float64
	JumpZVelocity   float64
	JumpMaxCount    int

	Grounded         bool
	JumpCurrentCount int
	// SkipGravity is set for a step whose velocity was overridden.
	SkipGravity      bool

	// Requests collected during the frame, consumed by the movement system.
	PendingInput      float64
	VelocityOverride  bool
	OverrideVelocityX float64
	OverrideVelocityY float64
	JumpRequested     bool
}

var CharacterMovementComponent = NewComponent[CharacterMovement]()
