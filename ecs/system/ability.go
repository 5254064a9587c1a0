package system

import (
	"log/slog"

	"github.com/milk9111/wipsidescroller/ability"
	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"golang.org/x/image/colornames"
)

const wallJumpMessageSeconds = 5.0

// AbilitySystem drives each character's ability state: it routes last
// frame's overlap and landing events, dispatches this frame's input through
// the character's bindings, then ticks the ability timers. Movement requests
// land in the CharacterMovement component for CharacterMovementSystem.
type AbilitySystem struct {
	dt     float64
	logger *slog.Logger
}

func NewAbilitySystem(logger *slog.Logger) *AbilitySystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &AbilitySystem{dt: common.TickSeconds, logger: logger}
}

func (a *AbilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Events().Drain()

	for _, e := range w.Query(component.AbilitiesComponent.Kind(), component.CharacterMovementComponent.Kind()) {
		ab, ok := ecs.GetPtr(w, e, component.AbilitiesComponent)
		if !ok || ab.Character == nil {
			continue
		}
		mv, ok := ecs.GetPtr(w, e, component.CharacterMovementComponent)
		if !ok {
			continue
		}

		c := ab.Character
		c.SetSink(&movementSink{mv: mv})
		if !ab.Started {
			a.begin(w, e, ab, mv)
		}

		for _, evt := range events {
			if evt.Entity != e {
				continue
			}
			switch evt.Kind {
			case ecs.EventOverlapBegin:
				c.OverlapBegin(actorID(w, evt.Other))
			case ecs.EventOverlapEnd:
				c.OverlapEnd(actorID(w, evt.Other))
			case ecs.EventLanded:
				c.Landed()
			}
		}

		if input, ok := ecs.Get(w, e, component.InputComponent); ok {
			dispatchInput(ab.Bindings, input)
		}

		c.Tick(a.dt)
		mv.JumpMaxCount = c.State().MaxJumpCount()

		if sprite, ok := ecs.GetPtr(w, e, component.SpriteComponent); ok {
			sprite.FacingLeft = c.State().Direction() < 0
		}
	}
}

func (a *AbilitySystem) begin(w *ecs.World, e ecs.Entity, ab *component.Abilities, mv *component.CharacterMovement) {
	c := ab.Character
	c.BeginPlay(mv.JumpMaxCount)
	if ab.Bindings == nil {
		ab.Bindings = ability.NewBindings()
		c.SetupInput(ab.Bindings)
	}
	c.OnWallJump = func() {
		PostDebugMessage(w, "wall jump", colornames.Red, wallJumpMessageSeconds)
	}
	ab.Started = true
	a.logger.Info("abilities ready",
		"entity", e.String(),
		"max_jump_count", mv.JumpMaxCount,
	)
}

// actorID maps an overlap partner to an ability actor; dead or missing
// entities map to the invalid actor.
func actorID(w *ecs.World, e ecs.Entity) ability.ActorID {
	if !e.Valid() || !w.IsAlive(e) {
		return 0
	}
	return ability.ActorID(e)
}

func dispatchInput(b *ability.Bindings, in component.Input) {
	if b == nil {
		return
	}
	b.Axis(ability.AxisMoveRight, in.MoveX)
	if in.JumpPressed {
		b.Action(ability.ActionJump, ability.Pressed)
	}
	if in.JumpReleased {
		b.Action(ability.ActionJump, ability.Released)
	}
	if in.DashPressed {
		b.Action(ability.ActionDash, ability.Pressed)
	}
	if in.DashReleased {
		b.Action(ability.ActionDash, ability.Released)
	}
	for _, t := range in.TouchesPressed {
		b.Touch(ability.Pressed, ability.TouchPoint{ID: t.ID, X: t.X, Y: t.Y})
	}
	for _, t := range in.TouchesReleased {
		b.Touch(ability.Released, ability.TouchPoint{ID: t.ID, X: t.X, Y: t.Y})
	}
}

// movementSink writes ability requests into a CharacterMovement component.
// Ability vectors use the lateral Y axis with Z up; the side view looks at
// the play plane from behind, so screen X is -Y and screen Y is -Z.
type movementSink struct {
	mv *component.CharacterMovement
}

func (s *movementSink) SetVelocity(v ability.Vector3) {
	s.mv.VelocityOverride = true
	s.mv.OverrideVelocityX = -v.Y
	s.mv.OverrideVelocityY = -v.Z
}

func (s *movementSink) AddMovementInput(dir ability.Vector3, scale float64) {
	s.mv.PendingInput += -dir.Y * scale
}

func (s *movementSink) Jump() {
	s.mv.JumpRequested = true
}

// StopJumping is a no-op: jumps have no hold time, so releasing the button
// after the impulse changes nothing.
func (s *movementSink) StopJumping() {}

func (s *movementSink) JumpStatus() ability.JumpStatus {
	return ability.JumpStatus{
		JumpVelocity:     s.mv.JumpZVelocity,
		JumpCurrentCount: s.mv.JumpCurrentCount,
	}
}
