package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs/component"
	"github.com/milk9111/blockdrop/physics"
	"github.com/milk9111/blockdrop/prefabs"
)

// Config is the tuning shared by every entity of a level.
type Config struct {
	Physics     component.PhysicsSettings
	Player      component.PlayerSettings
	PlayerSpec  prefabs.PlayerSpec
	Blocks      prefabs.BlocksSpec
	Animation   prefabs.PlayerAnimationSpec
	Countdown   float64
	StressScale float64
}

// LoadConfig reads every prefab the factory needs.
func LoadConfig() (*Config, error) {
	phys, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	blocks, err := prefabs.LoadBlocksSpec()
	if err != nil {
		return nil, err
	}
	anim, err := prefabs.LoadPlayerAnimationSpec()
	if err != nil {
		return nil, err
	}
	if player.Size.X <= 0 || player.Size.Y <= 0 {
		return nil, fmt.Errorf("entity: player.yaml: size must be positive")
	}

	return &Config{
		Physics: component.PhysicsSettings{
			Gravity:            vec(phys.Gravity),
			MaxVelocityY:       phys.MaxVelocityY,
			GroundSensorHeight: phys.GroundSensorHeight,
		},
		Player: component.PlayerSettings{
			WalkSpeed:     player.WalkSpeed,
			JumpSpeed:     player.JumpSpeed,
			TurnCooldown:  player.TurnCooldown,
			JumpCooldown:  player.JumpCooldown,
			StepInterval:  player.StepInterval,
			ReleaseGrace:  player.ReleaseGrace,
			ThrowBoost:    player.ThrowBoost,
			CarryOffset:   vec(player.CarryOffset),
			PickupSize:    vec(player.PickupSize),
			PickupOffsetY: player.PickupOffsetY,
		},
		PlayerSpec:  *player,
		Blocks:      *blocks,
		Animation:   *anim,
		Countdown:   phys.Countdown,
		StressScale: phys.StressScale,
	}, nil
}

func vec(v prefabs.VecSpec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func material(m prefabs.MaterialSpec) physics.Material {
	return physics.Material{Mass: m.Mass, Elasticity: m.Elasticity, Friction: m.Friction}
}

// PlayerAnimations builds a fresh set of clips from the animation prefab.
func (c *Config) PlayerAnimations() component.PlayerAnimations {
	actions := map[string]component.Action{
		"stand": component.ActionStanding,
		"walk":  component.ActionWalking,
		"jump":  component.ActionJumping,
		"fall":  component.ActionFalling,
	}
	out := component.PlayerAnimations{
		Torso: make(map[component.Action]*component.Animation),
		Legs:  make(map[component.Action]*component.Animation),
	}
	for name, action := range actions {
		if spec, ok := c.Animation.Torso[name]; ok {
			out.Torso[action] = clip(spec)
		}
		if spec, ok := c.Animation.Legs[name]; ok {
			out.Legs[action] = clip(spec)
		}
	}
	if spec, ok := c.Animation.Torso["hold"]; ok {
		out.Hold = clip(spec)
	}
	return out
}

func (c *Config) CharTileset() component.Tileset {
	return component.Tileset{TileW: c.Animation.TileW, TileH: c.Animation.TileH}
}

func clip(spec prefabs.ClipSpec) *component.Animation {
	frames := make([]component.AnimationFrame, 0, len(spec.Frames))
	for _, f := range spec.Frames {
		frames = append(frames, component.AnimationFrame{
			Tile:     component.TileIndex{X: f.Tile.X, Y: f.Tile.Y},
			Duration: f.Duration,
		})
	}
	typ := component.AnimationLoop
	switch spec.Type {
	case "ping_pong":
		typ = component.AnimationPingPong
	case "once":
		typ = component.AnimationOnce
	}
	return component.NewAnimation(frames, typ, spec.Speed)
}
