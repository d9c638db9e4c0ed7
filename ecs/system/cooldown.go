package system

import (
	"log"

	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
)

// CountdownSystem ticks the level countdown and requests a restart when it
// runs out.
type CountdownSystem struct{}

func NewCountdownSystem() *CountdownSystem {
	return &CountdownSystem{}
}

func (s *CountdownSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.CountdownComponent.Kind(), func(_ ecs.Entity, c *component.Countdown) {
		if c.Tick(dt) {
			log.Printf("Countdown: expired, restarting level")
			component.RequestLevelChange(w, component.LevelRestart)
		}
	})
}
