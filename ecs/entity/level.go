package entity

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
	"github.com/milk9111/blockdrop/levels"
	"github.com/milk9111/blockdrop/physics"
)

// TileSize is the side of one level grid cell in world coordinates.
const TileSize = 3200

// CellCenter returns the world position of the center of cell (x, y).
func CellCenter(x, y float64) cp.Vector {
	return cp.Vector{X: x*TileSize + TileSize/2, Y: y*TileSize + TileSize/2}
}

// cellFloor returns the position that rests an object of height h on the
// bottom edge of cell (x, y).
func cellFloor(x, y, h float64) cp.Vector {
	return cp.Vector{X: x*TileSize + TileSize/2, Y: (y+1)*TileSize - h/2}
}

// LoadLevel builds every wall and object of lvl and returns the player.
func LoadLevel(f *Factory, lvl *levels.Level, controls component.Controls) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("entity: nil level")
	}

	for _, cell := range lvl.Walls() {
		if _, err := f.NewWall(CellCenter(float64(cell[0]), float64(cell[1]))); err != nil {
			return 0, err
		}
	}
	if _, err := f.NewCountdown(); err != nil {
		return 0, err
	}

	var player ecs.Entity
	for i, spec := range lvl.Entities {
		var err error
		switch spec.Type {
		case "player":
			player, err = f.NewPlayer(CellCenter(spec.X, spec.Y), controls)
		case "block":
			kind := spec.Kind
			if kind == "" {
				kind = BlockNormal
			}
			_, err = f.NewBlock(kind, CellCenter(spec.X, spec.Y), spec.ValueOr(-1))
		case "receiver":
			_, err = f.NewReceiver(CellCenter(spec.X, spec.Y), spec.ValueOr(-1))
		case "teleporter":
			_, err = f.NewTeleporter(cellFloor(spec.X, spec.Y, f.cfg.Blocks.Teleporter.Size.Y))
		case "lift":
			_, err = f.NewLift(CellCenter(spec.X, spec.Y), cp.Vector{X: spec.VelX, Y: spec.VelY})
		default:
			err = fmt.Errorf("unknown type %q", spec.Type)
		}
		if err != nil {
			return 0, fmt.Errorf("entity: level %q entity %d: %w", lvl.Name, i, err)
		}
	}

	log.Printf("Level: loaded %q (%d walls, %d blocks)", lvl.Name, len(lvl.Walls()), ecs.Count(f.world, component.BlockTagComponent.Kind()))
	return player, nil
}

// NewLevelWorld builds lvl into a fresh world running systems in order. A
// level that fails to build leaves nothing behind in engine.
func NewLevelWorld(engine physics.World, cfg *Config, lvl *levels.Level, controls component.Controls, systems ...ecs.System) (*ecs.World, error) {
	if lvl == nil {
		return nil, fmt.Errorf("entity: nil level")
	}
	w := ecs.NewWorld()
	for _, s := range systems {
		w.AddSystem(s)
	}
	f := NewFactory(w, engine, NewColorMap(lvl.Seed), cfg, lvl.Seed)
	if _, err := LoadLevel(f, lvl, controls); err != nil {
		ecs.Clear(w)
		return nil, err
	}
	return w, nil
}
