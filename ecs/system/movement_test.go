package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wipsidescroller/ecs/component"
)

func testMovement() component.CharacterMovement {
	return component.CharacterMovement{
		MaxWalkSpeed:    600,
		MaxAcceleration: 2048,
		BrakingDecel:    2048,
		GroundFriction:  3,
		AirControl:      0.8,
		GravityScale:    2,
		JumpZVelocity:   1000,
		JumpMaxCount:    1,
		Grounded:        true,
	}
}

func TestCharacterMovementStep(t *testing.T) {
	m := NewCharacterMovementSystem()

	cases := []struct {
		name   string
		mutate func(mv *component.CharacterMovement)
		vel    cp.Vector
		check  func(t *testing.T, mv component.CharacterMovement, vel cp.Vector)
	}{
		{
			name: "override_replaces_velocity_and_skips_gravity",
			mutate: func(mv *component.CharacterMovement) {
				mv.VelocityOverride = true
				mv.OverrideVelocityX = 1500
				mv.PendingInput = -1
			},
			vel: cp.Vector{X: -300, Y: 200},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel.X != 1500 || vel.Y != 0 || !mv.SkipGravity {
					t.Fatalf("expected (1500,0) without gravity, got %v skip=%v", vel, mv.SkipGravity)
				}
			},
		},
		{
			name: "zero_override_stops_dead",
			mutate: func(mv *component.CharacterMovement) {
				mv.VelocityOverride = true
			},
			vel: cp.Vector{X: 1500, Y: -50},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel != (cp.Vector{}) {
					t.Fatalf("expected zero velocity, got %v", vel)
				}
			},
		},
		{
			name: "walk_accelerates_toward_input",
			mutate: func(mv *component.CharacterMovement) {
				mv.PendingInput = 1
			},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel.X <= 0 || vel.X > mv.MaxWalkSpeed {
					t.Fatalf("expected positive walk speed below max, got %v", vel.X)
				}
			},
		},
		{
			name: "input_is_clamped",
			mutate: func(mv *component.CharacterMovement) {
				mv.PendingInput = 5
			},
			vel: cp.Vector{X: 600},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel.X != 600 {
					t.Fatalf("expected max walk speed 600, got %v", vel.X)
				}
			},
		},
		{
			name: "grounded_brakes_without_input",
			vel:  cp.Vector{X: 300},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel.X >= 300 || vel.X < 0 {
					t.Fatalf("expected braking toward 0, got %v", vel.X)
				}
			},
		},
		{
			name: "airborne_keeps_momentum",
			mutate: func(mv *component.CharacterMovement) {
				mv.Grounded = false
			},
			vel: cp.Vector{X: 300, Y: 120},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel.X != 300 || vel.Y != 120 || mv.SkipGravity {
					t.Fatalf("expected momentum kept for physics to pull down, got %v skip=%v", vel, mv.SkipGravity)
				}
			},
		},
		{
			name: "grounded_jump",
			mutate: func(mv *component.CharacterMovement) {
				mv.JumpRequested = true
			},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel.Y != -mv.JumpZVelocity || mv.JumpCurrentCount != 1 {
					t.Fatalf("expected jump, got vel=%v count=%d", vel, mv.JumpCurrentCount)
				}
			},
		},
		{
			name: "airborne_first_jump_is_spent",
			mutate: func(mv *component.CharacterMovement) {
				mv.Grounded = false
				mv.JumpRequested = true
			},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel.Y < 0 || mv.JumpCurrentCount != 1 {
					t.Fatalf("expected no jump off a ledge, got vel=%v count=%d", vel, mv.JumpCurrentCount)
				}
			},
		},
		{
			name: "bonus_jump_in_air",
			mutate: func(mv *component.CharacterMovement) {
				mv.Grounded = false
				mv.JumpCurrentCount = 1
				mv.JumpMaxCount = 2
				mv.JumpRequested = true
			},
			check: func(t *testing.T, mv component.CharacterMovement, vel cp.Vector) {
				if vel.Y != -mv.JumpZVelocity || mv.JumpCurrentCount != 2 {
					t.Fatalf("expected air jump, got vel=%v count=%d", vel, mv.JumpCurrentCount)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mv := testMovement()
			if c.mutate != nil {
				c.mutate(&mv)
			}
			vel := m.step(&mv, c.vel)
			c.check(t, mv, vel)

			if mv.PendingInput != 0 || mv.VelocityOverride || mv.JumpRequested {
				t.Fatalf("frame requests should be cleared, got %+v", mv)
			}
		})
	}
}
