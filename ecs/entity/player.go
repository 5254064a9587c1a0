package entity

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wipsidescroller/ability"
	"github.com/milk9111/wipsidescroller/ecs"
	"github.com/milk9111/wipsidescroller/ecs/component"
	"github.com/milk9111/wipsidescroller/prefabs"
	"golang.org/x/image/colornames"
)

const playerPrefab = "player.yaml"

func NewPlayer(w *ecs.World, logger *slog.Logger) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, logger)
}

func NewPlayerAt(w *ecs.World, x, y float64, logger *slog.Logger) (ecs.Entity, error) {
	player, err := NewPlayer(w, logger)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, player, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return player, nil
}

// NewPlayerFromSpec builds the player character. The ability state is keyed
// by the entity so overlap events against the player's own shapes are
// ignored.
func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, logger *slog.Logger) (ecs.Entity, error) {
	if w == nil {
		return 0, component.ErrNilWorld
	}
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	if logger == nil {
		logger = slog.Default()
	}

	player := w.CreateEntity()
	state := ability.NewState(ability.ActorID(player), spec.Abilities, logger)

	var spriteColor color.Color = colornames.Crimson
	if spec.Sprite.Color != nil && spec.Sprite.Color.Color != nil {
		spriteColor = spec.Sprite.Color.Color
	}

	steps := []struct {
		name string
		add  func() error
	}{
		{"player", func() error {
			return ecs.Add(w, player, component.PlayerComponent, component.Player{Prefab: playerPrefab})
		}},
		{"player tag", func() error {
			return ecs.Add(w, player, component.PlayerTagComponent, component.PlayerTag{})
		}},
		{"transform", func() error {
			return ecs.Add(w, player, component.TransformComponent, component.Transform{X: spec.Transform.X, Y: spec.Transform.Y})
		}},
		{"physics body", func() error {
			return ecs.Add(w, player, component.PhysicsBodyComponent, component.PhysicsBody{
				Width:    spec.Collider.Width,
				Height:   spec.Collider.Height,
				Mass:     spec.Collider.Mass,
				Friction: spec.Collider.Friction,
			})
		}},
		{"movement", func() error {
			return ecs.Add(w, player, component.CharacterMovementComponent, MovementFromSpec(spec.Movement))
		}},
		{"input", func() error {
			return ecs.Add(w, player, component.InputComponent, component.Input{})
		}},
		{"abilities", func() error {
			return ecs.Add(w, player, component.AbilitiesComponent, component.Abilities{
				Character: ability.NewCharacter(state, nil),
			})
		}},
		{"sprite", func() error {
			return ecs.Add(w, player, component.SpriteComponent, component.Sprite{
				Width:  spec.Collider.Width,
				Height: spec.Collider.Height,
				Color:  spriteColor,
			})
		}},
		{"render layer", func() error {
			return ecs.Add(w, player, component.RenderLayerComponent, component.RenderLayer{Index: spec.RenderLayer.Index})
		}},
	}
	for _, step := range steps {
		if err := step.add(); err != nil {
			w.DestroyEntity(player)
			return 0, fmt.Errorf("player: add %s: %w", step.name, err)
		}
	}

	return player, nil
}

// MovementFromSpec builds fresh movement tuning from a prefab.
func MovementFromSpec(spec prefabs.MovementSpec) component.CharacterMovement {
	return component.CharacterMovement{
		MaxWalkSpeed:    spec.MaxWalkSpeed,
		MaxAcceleration: spec.MaxAcceleration,
		BrakingDecel:    spec.BrakingDecel,
		GroundFriction:  spec.GroundFriction,
		AirControl:      spec.AirControl,
		GravityScale:    spec.GravityScale,
		JumpZVelocity:   spec.JumpZVelocity,
		JumpMaxCount:    spec.JumpMaxCount,
	}
}

// SetEntityTransform moves an entity and, once the physics system has
// created its body, the body too.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	transform, ok := ecs.GetPtr(w, e, component.TransformComponent)
	if !ok {
		return fmt.Errorf("entity %s has no transform", e)
	}
	transform.X = x
	transform.Y = y
	if body, ok := ecs.GetPtr(w, e, component.PhysicsBodyComponent); ok && body.Body != nil {
		body.Body.SetPosition(cp.Vector{X: x, Y: y})
	}
	return nil
}
