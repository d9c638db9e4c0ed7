package system

import (
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.PlayerAnimationComponent.Kind(), func(_ ecs.Entity, a *component.PlayerAnimation) {
		a.Update(dt)
	})
}
