package system

import (
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
	"github.com/milk9111/blockdrop/physics"
)

// PhysicsSystem steps the engine, which dispatches every body and sensor
// callback, then lets each physics adapter queue gravity for the next step.
type PhysicsSystem struct {
	engine physics.World
}

func NewPhysicsSystem(engine physics.World) *PhysicsSystem {
	return &PhysicsSystem{engine: engine}
}

func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if s == nil || s.engine == nil || w == nil {
		return
	}

	s.engine.Update(dt)

	ecs.ForEach(w, component.PhysicsComponent.Kind(), func(_ ecs.Entity, p *component.Physics) {
		p.Update(dt)
	})
}

func (s *PhysicsSystem) Engine() physics.World {
	return s.engine
}
