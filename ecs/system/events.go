package system

import "github.com/milk9111/blockdrop/ecs"

// EventSystem drains the world event queue and hands every event to the
// handlers registered for its type. It must run last: the world drops
// undrained events at the end of the tick.
type EventSystem struct {
	handlers map[string][]func(ecs.Event)
}

func NewEventSystem() *EventSystem {
	return &EventSystem{handlers: make(map[string][]func(ecs.Event))}
}

func (s *EventSystem) Handle(typ string, fn func(ecs.Event)) {
	if fn == nil {
		return
	}
	s.handlers[typ] = append(s.handlers[typ], fn)
}

func (s *EventSystem) Update(w *ecs.World, _ float64) {
	for _, evt := range w.Events().Drain() {
		for _, fn := range s.handlers[evt.Type] {
			fn(evt)
		}
	}
}
