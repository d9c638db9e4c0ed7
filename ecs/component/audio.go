package component

import "github.com/milk9111/blockdrop/ecs"

// EventSound carries a SoundRequest.
const EventSound = "sound"

type PlayMode int

const (
	// PlayOverlap starts a new instance next to any playing one.
	PlayOverlap PlayMode = iota
	// PlayOverride restarts the cue if it is already playing.
	PlayOverride
	// PlayAbort drops the request while the cue is playing.
	PlayAbort
)

const (
	SoundPick   = "pick"
	SoundDrop   = "drop"
	SoundJump   = "jump"
	SoundStep   = "step"
	SoundBounce = "bounce"
	SoundRecv   = "recv"
	SoundTele   = "tele"
)

type SoundRequest struct {
	Name string
	Mode PlayMode
}

// PlaySound queues a sound request on the world event queue.
func PlaySound(w *ecs.World, name string, mode PlayMode) {
	ecs.Emit(w, EventSound, SoundRequest{Name: name, Mode: mode})
}
