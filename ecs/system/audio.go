package system

import (
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
)

// SoundPlayer plays named cues.
type SoundPlayer interface {
	Play(name string, mode component.PlayMode)
}

// AudioHandler returns an EventSystem handler forwarding sound requests to p.
func AudioHandler(p SoundPlayer) func(ecs.Event) {
	return func(evt ecs.Event) {
		req, ok := evt.Data.(component.SoundRequest)
		if !ok || p == nil {
			return
		}
		p.Play(req.Name, req.Mode)
	}
}

// LevelHandler returns an EventSystem handler reporting level change requests.
func LevelHandler(fn func(component.LevelChange)) func(ecs.Event) {
	return func(evt ecs.Event) {
		req, ok := evt.Data.(component.LevelChangeRequest)
		if !ok || fn == nil {
			return
		}
		fn(req.Change)
	}
}
