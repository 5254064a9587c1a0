package ability

// MovementSink is the movement component a Character drives. Implementations
// integrate the requests against physics once per frame.
type MovementSink interface {
	SetVelocity(v Vector3)
	AddMovementInput(dir Vector3, scale float64)
	Jump()
	StopJumping()
	JumpStatus() JumpStatus
}

// Character binds ability state to a movement sink and to input events.
type Character struct {
	state *State
	sink  MovementSink

	// OnWallJump, if set, runs after a jump press resolves to a wall jump.
	OnWallJump func()
}

// NewCharacter creates a character driving sink with state.
func NewCharacter(state *State, sink MovementSink) *Character {
	return &Character{state: state, sink: sink}
}

// State returns the ability state.
func (c *Character) State() *State {
	return c.state
}

// SetSink swaps the movement sink, e.g. per frame when the sink wraps a
// component copy.
func (c *Character) SetSink(sink MovementSink) {
	c.sink = sink
}

// BeginPlay records the spawn jump count and resets facing.
func (c *Character) BeginPlay(maxJumpCount int) {
	c.state.OnBeginPlay(maxJumpCount)
}

// SetupInput registers the character's handlers on b.
func (c *Character) SetupInput(b *Bindings) {
	b.BindAction(ActionJump, Pressed, c.JumpStarted)
	b.BindAction(ActionJump, Released, c.StopJumping)
	b.BindAction(ActionDash, Pressed, c.DashStarted)
	b.BindAction(ActionDash, Released, c.DashReleased)
	b.BindAxis(AxisMoveRight, c.MoveRight)
	b.BindTouch(Pressed, c.TouchStarted)
	b.BindTouch(Released, c.TouchStopped)
}

// Tick advances ability timers by dt seconds and applies their movement.
func (c *Character) Tick(dt float64) {
	c.apply(c.state.OnTick(dt))
}

func (c *Character) MoveRight(value float64) {
	req := c.state.OnMoveRight(value)
	if req.Apply && c.sink != nil {
		c.sink.AddMovementInput(req.Input, req.Scale)
	}
}

func (c *Character) JumpStarted() {
	var status JumpStatus
	if c.sink != nil {
		status = c.sink.JumpStatus()
	}
	decision := c.state.OnJumpPressed(status)
	if decision.WallJump && c.OnWallJump != nil {
		c.OnWallJump()
	}
	if decision.Jump && c.sink != nil {
		c.sink.Jump()
	}
}

func (c *Character) StopJumping() {
	if c.sink != nil {
		c.sink.StopJumping()
	}
}

func (c *Character) DashStarted() {
	c.state.OnDashPressed()
}

func (c *Character) DashReleased() {
	c.apply(c.state.OnDashReleased())
}

// TouchStarted jumps on any touch.
func (c *Character) TouchStarted(TouchPoint) {
	if c.sink != nil {
		c.sink.Jump()
	}
}

func (c *Character) TouchStopped(TouchPoint) {
	c.StopJumping()
}

func (c *Character) Landed() {
	c.state.OnLanded()
}

func (c *Character) OverlapBegin(other ActorID) {
	c.state.OnOverlapBegin(other)
}

func (c *Character) OverlapEnd(other ActorID) {
	c.state.OnOverlapEnd(other)
}

func (c *Character) apply(o MovementOverride) {
	if c.sink == nil {
		return
	}
	if o.SetVelocity {
		c.sink.SetVelocity(o.Velocity)
	}
	if o.AddInput {
		c.sink.AddMovementInput(o.Input, o.InputScale)
	}
}
