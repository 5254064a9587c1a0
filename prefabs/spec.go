package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/wipsidescroller/ability"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Collider    ColliderSpec    `yaml:"collider"`
	Movement    MovementSpec    `yaml:"movement"`
	Abilities   ability.Config  `yaml:"abilities"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

// MovementSpec mirrors component.CharacterMovement tuning.
type MovementSpec struct {
	MaxWalkSpeed    float64 `yaml:"max_walk_speed"`
	MaxAcceleration float64 `yaml:"max_acceleration"`
	BrakingDecel    float64 `yaml:"braking_deceleration"`
	GroundFriction  float64 `yaml:"ground_friction"`
	AirControl      float64 `yaml:"air_control"`
	GravityScale    float64 `yaml:"gravity_scale"`
	JumpZVelocity   float64 `yaml:"jump_z_velocity"`
	JumpMaxCount    int     `yaml:"jump_max_count"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

// Validate rejects tuning the movement model cannot run with.
func (s PlayerSpec) Validate() error {
	switch {
	case s.Collider.Width <= 0 || s.Collider.Height <= 0:
		return fmt.Errorf("collider size must be positive, got %gx%g", s.Collider.Width, s.Collider.Height)
	case s.Movement.JumpMaxCount < 1:
		return fmt.Errorf("jump_max_count must be at least 1, got %d", s.Movement.JumpMaxCount)
	case s.Abilities.MaxDashDuration < 0 || s.Abilities.MaxWallJumpDuration < 0:
		return fmt.Errorf("ability durations must not be negative")
	}
	return nil
}

type CameraSpec struct {
	Name         string        `yaml:"name"`
	Transform    TransformSpec `yaml:"transform"`
	Target       string        `yaml:"target"`
	ArmLength    float64       `yaml:"arm_length"`
	SocketOffset float64       `yaml:"socket_offset"`
	Smoothness   float64       `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type SpriteSpec struct {
	Color *YAMLColor `yaml:"color"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
