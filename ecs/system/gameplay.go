package system

import (
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/physics"
)

// Gameplay returns the systems of one level tick in order. The event system
// is left to the caller so it can be registered last.
func Gameplay(engine physics.World) []ecs.System {
	return []ecs.System{
		NewPhysicsSystem(engine),
		NewBlockSystem(),
		NewPlayerControllerSystem(),
		NewAnimationSystem(),
		NewCountdownSystem(),
	}
}
