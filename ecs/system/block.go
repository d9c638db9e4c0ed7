package system

import (
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
)

type BlockSystem struct{}

func NewBlockSystem() *BlockSystem {
	return &BlockSystem{}
}

func (s *BlockSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.BlockComponent.Kind(), func(_ ecs.Entity, b *component.Block) {
		b.Update(dt)
	})
}
