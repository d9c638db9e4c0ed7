package ecs

// System updates a world each tick. dt is the elapsed time in ticks.
type System interface {
	Update(w *World, dt float64)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World, dt float64)

func (f SystemFunc) Update(w *World, dt float64) { f(w, dt) }

// scheduler runs systems in registration order.
type scheduler struct {
	systems []System
}

func (s *scheduler) add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *scheduler) update(w *World, dt float64) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}
