package component

import "github.com/milk9111/blockdrop/physics"

// Collision groups shared by every body and sensor of a level.
const (
	GroupSolid physics.Group = 1 << iota
	GroupBlock
	GroupBlockFloating
	GroupCanBePicked
	GroupPlayer
	GroupSensor
	GroupReceiver
)
