package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wipsidescroller/common"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
)

// CharacterMovementSystem integrates the movement requests collected during
// the frame into the character's physics body: walking acceleration and
// braking, air control, jumps and velocity overrides. Gravity is left to the
// physics step, scaled per character.
type CharacterMovementSystem struct {
	dt float64
}

func NewCharacterMovementSystem() *CharacterMovementSystem {
	return &CharacterMovementSystem{dt: common.TickSeconds}
}

func (m *CharacterMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CharacterMovementComponent, component.PhysicsBodyComponent, func(e ecs.Entity, mv *component.CharacterMovement, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}
		vel := m.step(mv, bodyComp.Body.Velocity())
		bodyComp.Body.SetVelocityVector(vel)
		bodyComp.Body.SetAngle(0)
		bodyComp.Body.SetAngularVelocity(0)
	})
}

func (m *CharacterMovementSystem) step(mv *component.CharacterMovement, vel cp.Vector) cp.Vector {
	dt := m.dt

	mv.SkipGravity = mv.VelocityOverride
	if mv.VelocityOverride {
		vel = cp.Vector{X: mv.OverrideVelocityX, Y: mv.OverrideVelocityY}
	} else {
		vel.X = m.walk(mv, vel.X, common.Clamp(mv.PendingInput, -1, 1), dt)
	}

	if mv.JumpRequested {
		if !mv.Grounded && mv.JumpCurrentCount == 0 {
			// walked off a ledge: the first jump is already spent
			mv.JumpCurrentCount = 1
		}
		if mv.JumpCurrentCount < mv.JumpMaxCount {
			vel.Y = -mv.JumpZVelocity
			mv.JumpCurrentCount++
		}
	}

	mv.PendingInput = 0
	mv.VelocityOverride = false
	mv.OverrideVelocityX = 0
	mv.OverrideVelocityY = 0
	mv.JumpRequested = false
	return vel
}

func (m *CharacterMovementSystem) walk(mv *component.CharacterMovement, vx, input, dt float64) float64 {
	control := 1.0
	if !mv.Grounded {
		control = mv.AirControl
	}

	if input != 0 {
		target := input * mv.MaxWalkSpeed
		// friction pulls velocity toward the input direction while grounded
		accel := mv.MaxAcceleration * control
		if mv.Grounded {
			accel += mv.GroundFriction * math.Abs(target-vx)
		}
		return common.Approach(vx, target, accel*dt)
	}

	if !mv.Grounded {
		return vx
	}
	brake := mv.BrakingDecel + mv.GroundFriction*math.Abs(vx)
	return common.Approach(vx, 0, brake*dt)
}
