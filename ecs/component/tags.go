package component

import "github.com/milk9111/blockdrop/ecs"

type PlayerTag struct{}

var PlayerTagComponent = ecs.NewComponent[PlayerTag]()

// BlockTag marks the entities a teleporter waits on.
type BlockTag struct{}

var BlockTagComponent = ecs.NewComponent[BlockTag]()

type WallTag struct{}

var WallTagComponent = ecs.NewComponent[WallTag]()
