package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

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

// VecSpec is a vector in world coordinates.
type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TileSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type MaterialSpec struct {
	Mass       float64 `yaml:"mass"`
	Elasticity float64 `yaml:"elasticity"`
	Friction   float64 `yaml:"friction"`
}

type PhysicsSpec struct {
	Gravity            VecSpec `yaml:"gravity"`
	MaxVelocityY       float64 `yaml:"max_velocity_y"`
	GroundSensorHeight float64 `yaml:"ground_sensor_height"`
	StressScale        float64 `yaml:"stress_scale"`
	Countdown          float64 `yaml:"countdown"`
}

func LoadPhysicsSpec() (*PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec]("physics.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name          string       `yaml:"name"`
	Size          VecSpec      `yaml:"size"`
	Material      MaterialSpec `yaml:"material"`
	WalkSpeed     float64      `yaml:"walk_speed"`
	JumpSpeed     float64      `yaml:"jump_speed"`
	TurnCooldown  float64      `yaml:"turn_cooldown"`
	JumpCooldown  float64      `yaml:"jump_cooldown"`
	StepInterval  float64      `yaml:"step_interval"`
	ReleaseGrace  float64      `yaml:"release_grace"`
	ThrowBoost    float64      `yaml:"throw_boost"`
	CarryOffset   VecSpec      `yaml:"carry_offset"`
	PickupSize    VecSpec      `yaml:"pickup_size"`
	PickupOffsetY float64      `yaml:"pickup_offset_y"`
	DrawPriority  int          `yaml:"draw_priority"`
	DrawOffset    VecSpec      `yaml:"draw_offset"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BodySpec describes one kind of level object.
type BodySpec struct {
	Size     VecSpec      `yaml:"size"`
	Material MaterialSpec `yaml:"material"`
	Pickable bool         `yaml:"pickable"`
	Tiles    []TileSpec   `yaml:"tiles"`
	Color    *YAMLColor   `yaml:"color"`
}

type BlocksSpec struct {
	Wall       BodySpec            `yaml:"wall"`
	Blocks     map[string]BodySpec `yaml:"blocks"`
	Receiver   BodySpec            `yaml:"receiver"`
	Teleporter BodySpec            `yaml:"teleporter"`
	Lift       BodySpec            `yaml:"lift"`
}

func LoadBlocksSpec() (*BlocksSpec, error) {
	spec, err := LoadSpec[BlocksSpec]("blocks.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Blocks) == 0 {
		return nil, fmt.Errorf("prefabs: blocks.yaml: no block kinds")
	}
	return &spec, nil
}

type FrameSpec struct {
	Tile     TileSpec `yaml:"tile"`
	Duration float64  `yaml:"duration"`
}

type ClipSpec struct {
	Type   string      `yaml:"type"`
	Speed  float64     `yaml:"speed"`
	Frames []FrameSpec `yaml:"frames"`
}

type PlayerAnimationSpec struct {
	TileW int                 `yaml:"tile_w"`
	TileH int                 `yaml:"tile_h"`
	Torso map[string]ClipSpec `yaml:"torso"`
	Legs  map[string]ClipSpec `yaml:"legs"`
}

func LoadPlayerAnimationSpec() (*PlayerAnimationSpec, error) {
	spec, err := LoadSpec[PlayerAnimationSpec]("player_animation.yaml")
	if err != nil {
		return nil, err
	}
	if spec.TileW <= 0 || spec.TileH <= 0 {
		return nil, fmt.Errorf("prefabs: player_animation.yaml: tile size must be positive")
	}
	return &spec, nil
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

// RGBA8 returns the color as premultiplied RGBA, white when unset.
func (c *YAMLColor) RGBA8() color.RGBA {
	if c == nil || c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}
