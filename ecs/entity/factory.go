package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
	"github.com/milk9111/blockdrop/physics"
	"github.com/milk9111/blockdrop/prefabs"
)

const (
	BlockNormal  = "normal"
	BlockBig     = "big"
	BlockBall    = "ball"
	BlockRubberH = "rubber_h"
	BlockRubberV = "rubber_v"
)

// Factory builds level entities into one world and engine.
type Factory struct {
	world  *ecs.World
	engine physics.World
	colors *ColorMap
	cfg    *Config
	rng    *rand.Rand
}

func NewFactory(w *ecs.World, engine physics.World, colors *ColorMap, cfg *Config, seed uint64) *Factory {
	if colors == nil {
		colors = NewColorMap(seed)
	}
	return &Factory{
		world:  w,
		engine: engine,
		colors: colors,
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed, seed+1)),
	}
}

func (f *Factory) World() *ecs.World     { return f.world }
func (f *Factory) Colors() *ColorMap     { return f.colors }
func (f *Factory) Config() *Config       { return f.cfg }
func (f *Factory) Engine() physics.World { return f.engine }

func (f *Factory) newPhysics(e ecs.Entity, static bool, pos, size cp.Vector) (*component.Physics, error) {
	p := component.NewPhysics(f.engine, e, static, pos, size, f.cfg.Physics)
	if err := ecs.Add(f.world, e, component.PhysicsComponent.Kind(), p); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

func (f *Factory) newSprite(spec prefabs.BodySpec, tile component.TileIndex) *component.Sprite {
	s := &component.Sprite{Sheet: component.SheetWorld, ScaleWithBody: true}
	i := s.AddElement(component.WorldTileset.Rect(tile))
	if spec.Color != nil {
		s.SetColor(i, spec.Color.RGBA8())
	}
	return s
}

func (f *Factory) tint(s *component.Sprite, value int) {
	if c, ok := f.colors.Color(value); ok {
		s.SetColor(0, c)
	}
}

func firstTile(spec prefabs.BodySpec) component.TileIndex {
	if len(spec.Tiles) == 0 {
		return component.TileIndex{}
	}
	return component.TileIndex{X: spec.Tiles[0].X, Y: spec.Tiles[0].Y}
}

func (f *Factory) wallTile(spec prefabs.BodySpec) component.TileIndex {
	if len(spec.Tiles) > 1 && f.rng.IntN(100) >= 75 {
		t := spec.Tiles[1+f.rng.IntN(len(spec.Tiles)-1)]
		return component.TileIndex{X: t.X, Y: t.Y}
	}
	return firstTile(spec)
}

func (f *Factory) NewWall(pos cp.Vector) (ecs.Entity, error) {
	spec := f.cfg.Blocks.Wall
	e := ecs.CreateEntity(f.world)
	p, err := f.newPhysics(e, true, pos, vec(spec.Size))
	if err != nil {
		return 0, fmt.Errorf("entity: wall: %w", err)
	}
	body := p.Body()
	body.AddGroups(component.GroupSolid)
	body.AddGroupsToCheck(component.GroupSolid)
	body.SetMaterial(material(spec.Material))

	if err := ecs.Add(f.world, e, component.SpriteComponent.Kind(), f.newSprite(spec, f.wallTile(spec))); err != nil {
		return 0, fmt.Errorf("entity: wall: %w", err)
	}
	if err := ecs.Add(f.world, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		return 0, fmt.Errorf("entity: wall: %w", err)
	}
	return e, nil
}

// NewBlock builds a block of the given prefab kind. A value of -1 fits any
// receiver.
func (f *Factory) NewBlock(kind string, pos cp.Vector, value int) (ecs.Entity, error) {
	spec, ok := f.cfg.Blocks.Blocks[kind]
	if !ok {
		return 0, fmt.Errorf("entity: unknown block kind %q", kind)
	}

	e := ecs.CreateEntity(f.world)
	p, err := f.newPhysics(e, false, pos, vec(spec.Size))
	if err != nil {
		return 0, fmt.Errorf("entity: block: %w", err)
	}
	body := p.Body()
	body.AddGroups(component.GroupSolid | component.GroupBlock)
	if spec.Pickable {
		body.AddGroups(component.GroupCanBePicked)
	}
	body.AddGroupsToCheck(component.GroupSolid)
	body.AddGroupsNoResolve(component.GroupBlockFloating)
	body.SetMaterial(material(spec.Material))

	sprite := f.newSprite(spec, firstTile(spec))
	f.tint(sprite, value)

	if err := ecs.Add(f.world, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("entity: block: %w", err)
	}
	if err := ecs.Add(f.world, e, component.BlockComponent.Kind(), component.NewBlock(f.world, e, p, value)); err != nil {
		return 0, fmt.Errorf("entity: block: %w", err)
	}
	if err := ecs.Add(f.world, e, component.BlockTagComponent.Kind(), &component.BlockTag{}); err != nil {
		return 0, fmt.Errorf("entity: block: %w", err)
	}
	return e, nil
}

func (f *Factory) NewPlayer(pos cp.Vector, controls component.Controls) (ecs.Entity, error) {
	spec := f.cfg.PlayerSpec
	e := ecs.CreateEntity(f.world)
	p, err := f.newPhysics(e, false, pos, vec(spec.Size))
	if err != nil {
		return 0, fmt.Errorf("entity: player: %w", err)
	}
	body := p.Body()
	body.AddGroups(component.GroupSolid | component.GroupPlayer)
	body.AddGroupsToCheck(component.GroupSolid)
	body.AddGroupsNoResolve(component.GroupBlockFloating)
	body.SetMaterial(material(spec.Material))

	sprite := &component.Sprite{
		Sheet:    component.SheetChar,
		Offset:   vec(spec.DrawOffset),
		Priority: spec.DrawPriority,
	}
	player := component.NewPlayer(f.world, e, p, controls, f.cfg.Player)
	anim := component.NewPlayerAnimation(player, sprite, f.cfg.CharTileset(), f.cfg.PlayerAnimations())

	if err := ecs.Add(f.world, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("entity: player: %w", err)
	}
	if err := ecs.Add(f.world, e, component.PlayerComponent.Kind(), player); err != nil {
		return 0, fmt.Errorf("entity: player: %w", err)
	}
	if err := ecs.Add(f.world, e, component.PlayerAnimationComponent.Kind(), anim); err != nil {
		return 0, fmt.Errorf("entity: player: %w", err)
	}
	if err := ecs.Add(f.world, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("entity: player: %w", err)
	}
	return e, nil
}

func (f *Factory) NewReceiver(pos cp.Vector, value int) (ecs.Entity, error) {
	spec := f.cfg.Blocks.Receiver
	e := ecs.CreateEntity(f.world)
	p, err := f.newPhysics(e, false, pos, vec(spec.Size))
	if err != nil {
		return 0, fmt.Errorf("entity: receiver: %w", err)
	}
	receiver := component.NewReceiver(f.world, p, value)

	sprite := f.newSprite(spec, firstTile(spec))
	f.tint(sprite, value)

	if err := ecs.Add(f.world, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("entity: receiver: %w", err)
	}
	if err := ecs.Add(f.world, e, component.ReceiverComponent.Kind(), receiver); err != nil {
		return 0, fmt.Errorf("entity: receiver: %w", err)
	}
	return e, nil
}

func (f *Factory) NewTeleporter(pos cp.Vector) (ecs.Entity, error) {
	spec := f.cfg.Blocks.Teleporter
	e := ecs.CreateEntity(f.world)
	p, err := f.newPhysics(e, false, pos, vec(spec.Size))
	if err != nil {
		return 0, fmt.Errorf("entity: teleporter: %w", err)
	}
	tele := component.NewTeleporter(f.world, p)

	if err := ecs.Add(f.world, e, component.SpriteComponent.Kind(), f.newSprite(spec, firstTile(spec))); err != nil {
		return 0, fmt.Errorf("entity: teleporter: %w", err)
	}
	if err := ecs.Add(f.world, e, component.TeleporterComponent.Kind(), tele); err != nil {
		return 0, fmt.Errorf("entity: teleporter: %w", err)
	}
	return e, nil
}

// NewLift builds a solid platform that moves at twice vel every tick.
func (f *Factory) NewLift(pos, vel cp.Vector) (ecs.Entity, error) {
	spec := f.cfg.Blocks.Lift
	e := ecs.CreateEntity(f.world)
	p, err := f.newPhysics(e, false, pos, vec(spec.Size))
	if err != nil {
		return 0, fmt.Errorf("entity: lift: %w", err)
	}
	body := p.Body()
	body.AddGroups(component.GroupSolid)
	body.AddGroupsToCheck(component.GroupSolid)
	body.AddGroupsNoResolve(component.GroupBlockFloating)
	body.SetMaterial(material(spec.Material))
	lift := component.NewLift(p, vel)

	if err := ecs.Add(f.world, e, component.SpriteComponent.Kind(), f.newSprite(spec, firstTile(spec))); err != nil {
		return 0, fmt.Errorf("entity: lift: %w", err)
	}
	if err := ecs.Add(f.world, e, component.LiftComponent.Kind(), lift); err != nil {
		return 0, fmt.Errorf("entity: lift: %w", err)
	}
	return e, nil
}

func (f *Factory) NewCountdown() (ecs.Entity, error) {
	e := ecs.CreateEntity(f.world)
	if err := ecs.Add(f.world, e, component.CountdownComponent.Kind(), component.NewCountdown(f.cfg.Countdown)); err != nil {
		return 0, fmt.Errorf("entity: countdown: %w", err)
	}
	return e, nil
}
