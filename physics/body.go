package physics

import "github.com/jakecoffman/cp"

// Group is a collision group bitmask.
type Group uint32

// Has reports whether g shares any bit with other.
func (g Group) Has(other Group) bool {
	return g&other != 0
}

// ResolutionInfo describes a correction the engine is about to apply to a body
// while separating it from Body. Handlers may set the NoResolve flags to cancel
// the correction's effect for this tick.
type ResolutionInfo struct {
	Body              Body
	Resolution        cp.Vector
	NoResolvePosition bool
	NoResolveVelocity bool
}

// DetectionInfo reports an overlap with Body. UserData is the other body's
// identity payload, nil when it has none.
type DetectionInfo struct {
	Body     Body
	UserData any
}

// Hooks are the lifecycle callbacks an engine object dispatches each tick.
type Hooks struct {
	OnPreUpdate  Signal
	OnPostUpdate Signal
	OnDetection  Delegate[DetectionInfo]
	OnResolution Delegate[*ResolutionInfo]
}

// Material carries the solver tuning of a body.
type Material struct {
	Mass       float64
	Elasticity float64
	Friction   float64
}

// Body is a rigid axis-aligned box owned by the engine.
type Body interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	SetVelocityX(x float64)
	SetVelocityY(y float64)
	// ApplyAccel adds a to the acceleration integrated on the next tick.
	ApplyAccel(a cp.Vector)
	Size() cp.Vector
	// Stress is the magnitude of the corrections accumulated during the last tick.
	Stress() cp.Vector
	Static() bool

	AddGroups(g Group)
	DelGroups(g Group)
	HasGroup(g Group) bool
	AddGroupsToCheck(g Group)
	DelGroupsToCheck(g Group)
	AddGroupsNoResolve(g Group)
	DelGroupsNoResolve(g Group)
	HasGroupNoResolve(g Group) bool
	SetResolve(resolve bool)

	SetMaterial(m Material)
	SetUserData(data any)
	UserData() any

	Hooks() *Hooks
	Destroy()
	Destroyed() bool
}

// Sensor is a trigger volume: it reports overlaps but never resolves them.
type Sensor interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	Size() cp.Vector
	AddGroups(g Group)
	AddGroupsToCheck(g Group)
	Hooks() *Hooks
	Destroy()
	Destroyed() bool
}

// World creates engine objects and advances the simulation.
type World interface {
	CreateBody(pos, size cp.Vector, static bool) Body
	CreateSensor(pos, size cp.Vector) Sensor
	Update(dt float64)
}
