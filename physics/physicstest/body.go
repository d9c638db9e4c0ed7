package physicstest

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/physics"
)

// Body is a scripted physics.Body. Its fields are mutated only by the owning
// World and by the behavior under test.
type Body struct {
	pos, vel, accel cp.Vector
	size, stress    cp.Vector
	static          bool
	resolve         bool
	groups          physics.Group
	toCheck         physics.Group
	noResolve       physics.Group
	material        physics.Material
	userData        any
	hooks           physics.Hooks
	destroyed       bool
}

var _ physics.Body = (*Body)(nil)

func (b *Body) Position() cp.Vector            { return b.pos }
func (b *Body) SetPosition(p cp.Vector)        { b.pos = p }
func (b *Body) Velocity() cp.Vector            { return b.vel }
func (b *Body) SetVelocity(v cp.Vector)        { b.vel = v }
func (b *Body) SetVelocityX(x float64)         { b.vel.X = x }
func (b *Body) SetVelocityY(y float64)         { b.vel.Y = y }
func (b *Body) ApplyAccel(a cp.Vector)         { b.accel = b.accel.Add(a) }
func (b *Body) Size() cp.Vector                { return b.size }
func (b *Body) Stress() cp.Vector              { return b.stress }
func (b *Body) Static() bool                   { return b.static }
func (b *Body) SetMaterial(m physics.Material) { b.material = m }
func (b *Body) Material() physics.Material     { return b.material }
func (b *Body) SetUserData(data any)           { b.userData = data }
func (b *Body) UserData() any                  { return b.userData }
func (b *Body) Hooks() *physics.Hooks          { return &b.hooks }
func (b *Body) Destroy()                       { b.destroyed = true }
func (b *Body) Destroyed() bool                { return b.destroyed }

// PendingAccel returns the acceleration queued for the next tick.
func (b *Body) PendingAccel() cp.Vector { return b.accel }

// SetStress fakes the stress the solver would report.
func (b *Body) SetStress(v cp.Vector) { b.stress = v }

func (b *Body) AddGroups(g physics.Group)          { b.groups |= g }
func (b *Body) DelGroups(g physics.Group)          { b.groups &^= g }
func (b *Body) HasGroup(g physics.Group) bool      { return b.groups.Has(g) }
func (b *Body) AddGroupsToCheck(g physics.Group)   { b.toCheck |= g }
func (b *Body) DelGroupsToCheck(g physics.Group)   { b.toCheck &^= g }
func (b *Body) AddGroupsNoResolve(g physics.Group) { b.noResolve |= g }
func (b *Body) DelGroupsNoResolve(g physics.Group) { b.noResolve &^= g }
func (b *Body) HasGroupNoResolve(g physics.Group) bool {
	return b.noResolve.Has(g)
}
func (b *Body) SetResolve(resolve bool) { b.resolve = resolve }
func (b *Body) Resolves() bool          { return b.resolve }
func (b *Body) GroupsToCheck() physics.Group {
	return b.toCheck
}

// Sensor is a scripted physics.Sensor.
type Sensor struct {
	pos, size cp.Vector
	groups    physics.Group
	toCheck   physics.Group
	hooks     physics.Hooks
	destroyed bool
}

var _ physics.Sensor = (*Sensor)(nil)

func (s *Sensor) Position() cp.Vector              { return s.pos }
func (s *Sensor) SetPosition(p cp.Vector)          { s.pos = p }
func (s *Sensor) Size() cp.Vector                  { return s.size }
func (s *Sensor) AddGroups(g physics.Group)        { s.groups |= g }
func (s *Sensor) AddGroupsToCheck(g physics.Group) { s.toCheck |= g }
func (s *Sensor) GroupsToCheck() physics.Group     { return s.toCheck }
func (s *Sensor) Hooks() *physics.Hooks            { return &s.hooks }
func (s *Sensor) Destroy()                         { s.destroyed = true }
func (s *Sensor) Destroyed() bool                  { return s.destroyed }
