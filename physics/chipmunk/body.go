package chipmunk

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/physics"
)

// Body is a box shape on a Chipmunk body with collision group bookkeeping.
type Body struct {
	owner  *Space
	body   *cp.Body
	shape  *cp.Shape
	size   cp.Vector
	static bool

	accel  cp.Vector
	stress cp.Vector

	groups    physics.Group
	toCheck   physics.Group
	noResolve physics.Group
	resolve   bool

	userData  any
	hooks     physics.Hooks
	destroyed bool
}

var _ physics.Body = (*Body)(nil)

func (b *Body) Position() cp.Vector { return b.body.Position() }

func (b *Body) SetPosition(p cp.Vector) {
	if !b.static || b.owner.stepping || b.destroyed {
		b.body.SetPosition(p)
		return
	}
	// Static shapes are only re-indexed when they are added to the space.
	b.owner.space.RemoveShape(b.shape)
	b.body.SetPosition(p)
	b.owner.space.AddShape(b.shape)
}

func (b *Body) Velocity() cp.Vector {
	if b.static {
		return cp.Vector{}
	}
	return b.body.Velocity()
}

func (b *Body) SetVelocity(v cp.Vector) {
	if !b.static {
		b.body.SetVelocityVector(v)
	}
}

func (b *Body) SetVelocityX(x float64) {
	v := b.Velocity()
	v.X = x
	b.SetVelocity(v)
}

func (b *Body) SetVelocityY(y float64) {
	v := b.Velocity()
	v.Y = y
	b.SetVelocity(v)
}

func (b *Body) ApplyAccel(a cp.Vector) { b.accel = b.accel.Add(a) }
func (b *Body) Size() cp.Vector        { return b.size }
func (b *Body) Stress() cp.Vector      { return b.stress }
func (b *Body) Static() bool           { return b.static }

func (b *Body) AddGroups(g physics.Group)              { b.groups |= g }
func (b *Body) DelGroups(g physics.Group)              { b.groups &^= g }
func (b *Body) HasGroup(g physics.Group) bool          { return b.groups.Has(g) }
func (b *Body) AddGroupsToCheck(g physics.Group)       { b.toCheck |= g }
func (b *Body) DelGroupsToCheck(g physics.Group)       { b.toCheck &^= g }
func (b *Body) AddGroupsNoResolve(g physics.Group)     { b.noResolve |= g }
func (b *Body) DelGroupsNoResolve(g physics.Group)     { b.noResolve &^= g }
func (b *Body) HasGroupNoResolve(g physics.Group) bool { return b.noResolve.Has(g) }
func (b *Body) SetResolve(resolve bool)                { b.resolve = resolve }

func (b *Body) SetMaterial(m physics.Material) {
	if !b.static && m.Mass > 0 {
		b.body.SetMass(m.Mass)
		b.body.SetMoment(math.Inf(1))
	}
	b.shape.SetElasticity(m.Elasticity)
	b.shape.SetFriction(m.Friction)
}

func (b *Body) SetUserData(data any)  { b.userData = data }
func (b *Body) UserData() any         { return b.userData }
func (b *Body) Hooks() *physics.Hooks { return &b.hooks }
func (b *Body) Destroyed() bool       { return b.destroyed }

// Destroy detaches the body. Removal from the space is deferred until the
// current tick finishes.
func (b *Body) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.owner.flush()
}

// Sensor is a sensor shape on a Chipmunk body that is re-centered on its
// logical position before every step.
type Sensor struct {
	owner *Space
	body  *cp.Body
	shape *cp.Shape
	pos   cp.Vector
	size  cp.Vector

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
func (s *Sensor) Hooks() *physics.Hooks            { return &s.hooks }
func (s *Sensor) Destroyed() bool                  { return s.destroyed }

func (s *Sensor) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.owner.flush()
}
