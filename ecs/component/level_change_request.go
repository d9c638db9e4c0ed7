package component

import "github.com/milk9111/blockdrop/ecs"

// EventLevel carries a LevelChangeRequest.
const EventLevel = "level"

type LevelChange int

const (
	LevelRestart LevelChange = iota
	LevelNext
)

func (c LevelChange) String() string {
	switch c {
	case LevelNext:
		return "next"
	default:
		return "restart"
	}
}

type LevelChangeRequest struct {
	Change LevelChange
}

func RequestLevelChange(w *ecs.World, change LevelChange) {
	ecs.Emit(w, EventLevel, LevelChangeRequest{Change: change})
}
