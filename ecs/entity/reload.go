package entity

import (
	"fmt"

	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"github.com/milk9111/wipsidescroller/prefabs"
)

// ApplyPlayerSpec pushes reloaded tuning onto a live player. Runtime
// movement state is kept; the ability state restarts play so the new jump
// count becomes the baseline. A changed collider is rebuilt by the physics
// system on its next update.
func ApplyPlayerSpec(w *ecs.World, player ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: nil spec")
	}
	mv, ok := ecs.GetPtr(w, player, component.CharacterMovementComponent)
	if !ok {
		return fmt.Errorf("player %s: no movement", player)
	}
	ab, ok := ecs.GetPtr(w, player, component.AbilitiesComponent)
	if !ok || ab.Character == nil {
		return fmt.Errorf("player %s: no abilities", player)
	}

	tuned := MovementFromSpec(spec.Movement)
	tuned.Grounded = mv.Grounded
	tuned.JumpCurrentCount = mv.JumpCurrentCount
	*mv = tuned

	if body, ok := ecs.GetPtr(w, player, component.PhysicsBodyComponent); ok && colliderChanged(*body, spec.Collider) {
		body.Width = spec.Collider.Width
		body.Height = spec.Collider.Height
		body.Mass = spec.Collider.Mass
		body.Friction = spec.Collider.Friction
		body.Body = nil
		body.Shape = nil
	}

	ab.Character.State().SetConfig(spec.Abilities)
	ab.Started = false

	if sprite, ok := ecs.GetPtr(w, player, component.SpriteComponent); ok {
		sprite.Width = spec.Collider.Width
		sprite.Height = spec.Collider.Height
		if spec.Sprite.Color != nil && spec.Sprite.Color.Color != nil {
			sprite.Color = spec.Sprite.Color.Color
		}
	}
	return nil
}

func colliderChanged(body component.PhysicsBody, c prefabs.ColliderSpec) bool {
	return body.Width != c.Width || body.Height != c.Height || body.Mass != c.Mass || body.Friction != c.Friction
}
