package ability

import "log/slog"

// ActorID identifies a collider owner for overlap checks. Zero is never a
// valid actor.
type ActorID uint64

// Valid reports whether id refers to an actor.
func (id ActorID) Valid() bool {
	return id != 0
}

// Config holds the tuning values for dash and wall jump.
type Config struct {
	MaxDashDuration     float64 `yaml:"max_dash_duration"`
	MaxWallJumpDuration float64 `yaml:"max_wall_jump_duration"`
	DashSpeed           float64 `yaml:"dash_speed"`
}

// MovementOverride is what a tick (or dash release) asks the movement sink
// to apply this frame. Either part may be absent.
type MovementOverride struct {
	SetVelocity bool
	Velocity    Vector3

	AddInput   bool
	Input      Vector3
	InputScale float64
}

// MovementRequest is a movement input request produced by horizontal input.
type MovementRequest struct {
	Apply bool
	Input Vector3
	Scale float64
}

// JumpStatus is the movement component's view of jumping at the moment the
// jump button goes down.
type JumpStatus struct {
	JumpVelocity     float64
	JumpCurrentCount int
}

// JumpDecision reports what a jump press resolved to. Jump is always set:
// a wall jump augments the regular jump rather than replacing it.
type JumpDecision struct {
	WallJump bool
	Jump     bool
}

// State tracks the wall contact flag, the dash and wall jump countdowns, the
// facing direction and the jump count bonus for one character.
//
// State is not safe for concurrent use; the frame loop owns it.
type State struct {
	cfg    Config
	self   ActorID
	logger *slog.Logger

	againstWall   bool
	direction     float64
	dashTimer     float64
	wallJumpTimer float64

	maxJumpCount         int
	maxJumpCountBaseline int
}

// NewState creates ability state for the actor self. A nil logger falls back
// to slog.Default.
func NewState(self ActorID, cfg Config, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		cfg:       cfg,
		self:      self,
		logger:    logger,
		direction: 1,
	}
}

// Config returns the active tuning values.
func (s *State) Config() Config {
	return s.cfg
}

// SetConfig swaps tuning values. Running timers keep their remaining time.
func (s *State) SetConfig(cfg Config) {
	s.cfg = cfg
}

func (s *State) AgainstWall() bool { return s.againstWall }
func (s *State) Direction() float64 { return s.direction }
func (s *State) DashTimer() float64 { return s.dashTimer }
func (s *State) WallJumpTimer() float64 { return s.wallJumpTimer }
func (s *State) MaxJumpCount() int { return s.maxJumpCount }
func (s *State) BaselineJumpCount() int { return s.maxJumpCountBaseline }

// Dashing reports whether the dash override is live.
func (s *State) Dashing() bool { return s.dashTimer > 0 }

// WallJumping reports whether the wall jump assist is live.
func (s *State) WallJumping() bool { return s.wallJumpTimer > 0 }

// OnBeginPlay records the jump count the character spawned with.
func (s *State) OnBeginPlay(currentMaxJumpCount int) {
	s.maxJumpCount = currentMaxJumpCount
	s.maxJumpCountBaseline = currentMaxJumpCount
	s.direction = 1
}

// OnTick advances both countdowns by dt seconds and returns the movement the
// live abilities want applied this frame. A live dash takes precedence over
// the wall jump assist input; both timers still count down.
func (s *State) OnTick(dt float64) MovementOverride {
	if dt < 0 {
		dt = 0
	}

	var out MovementOverride
	dashing := s.dashTimer > 0
	if dashing {
		s.dashTimer = countdown(s.dashTimer, dt)
		out.SetVelocity = true
		out.Velocity = Vector3{Y: -s.direction * s.cfg.DashSpeed}
	}

	if s.wallJumpTimer > 0 {
		s.wallJumpTimer = countdown(s.wallJumpTimer, dt)
		if !dashing {
			out.AddInput = true
			out.Input = Vector3{Y: s.direction}
			out.InputScale = 1
		}
	}

	return out
}

// OnMoveRight handles the horizontal axis. The lateral axis is inverted
// relative to raw input. Zero input keeps the last facing direction.
func (s *State) OnMoveRight(value float64) MovementRequest {
	var req MovementRequest
	if s.wallJumpTimer <= 0 {
		req = MovementRequest{Apply: true, Input: Vector3{Y: -1}, Scale: value}
	}

	if value > 0 {
		s.direction = 1
	} else if value < 0 {
		s.direction = -1
	}

	return req
}

// OnJumpPressed decides whether this press is a wall jump. A wall jump needs
// wall contact, a nonzero jump velocity and at least one jump already used.
func (s *State) OnJumpPressed(status JumpStatus) JumpDecision {
	decision := JumpDecision{Jump: true}
	if s.againstWall && status.JumpVelocity != 0 && status.JumpCurrentCount > 0 {
		s.wallJumpTimer = s.cfg.MaxWallJumpDuration
		s.maxJumpCount++
		decision.WallJump = true
		s.logger.Debug("wall jump",
			"actor", uint64(s.self),
			"direction", s.direction,
			"max_jump_count", s.maxJumpCount,
		)
	}
	return decision
}

// OnLanded drops any wall jump bonus.
func (s *State) OnLanded() {
	s.maxJumpCount = s.maxJumpCountBaseline
}

// OnOverlapBegin marks wall contact for any valid collider other than self.
func (s *State) OnOverlapBegin(other ActorID) {
	if !other.Valid() || other == s.self {
		return
	}
	s.againstWall = true
}

// OnOverlapEnd clears wall contact when any valid collider other than self
// stops overlapping, even if another one still touches.
func (s *State) OnOverlapEnd(other ActorID) {
	if !other.Valid() || other == s.self {
		return
	}
	s.againstWall = false
}

// OnDashPressed restarts the dash countdown.
func (s *State) OnDashPressed() {
	s.dashTimer = s.cfg.MaxDashDuration
}

// OnDashReleased cancels the dash and stops the character dead.
func (s *State) OnDashReleased() MovementOverride {
	s.dashTimer = 0
	return MovementOverride{SetVelocity: true}
}

func countdown(t, dt float64) float64 {
	t -= dt
	if t < 0 {
		return 0
	}
	return t
}
