package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/physics"
)

const (
	crushedMax       = 3
	crushedTolerance = 1
)

// PhysicsSettings tunes gravity for every physics adapter of a level.
type PhysicsSettings struct {
	Gravity      cp.Vector
	MaxVelocityY float64
	// GroundSensorHeight is the height of the volume centered on the bottom edge.
	GroundSensorHeight float64
}

var DefaultPhysicsSettings = PhysicsSettings{
	Gravity:            cp.Vector{X: 0, Y: 25},
	MaxVelocityY:       1000,
	GroundSensorHeight: 100,
}

// Physics owns one engine body and the ground sensor that follows it. It
// applies gravity, tracks crush state from resolution history and relays
// engine events to the other components of its entity.
type Physics struct {
	world    physics.World
	body     physics.Body
	ground   *Sensor
	settings PhysicsSettings

	affectedByGravity bool
	lastResolution    cp.Vector

	crushedLeft, crushedRight, crushedTop, crushedBottom int
	hitLeft, hitRight, hitTop, hitBottom                 bool

	OnDetection  physics.Delegate[ecs.Entity]
	OnResolution physics.Delegate[*physics.ResolutionInfo]
}

var PhysicsComponent = ecs.NewComponent[Physics]()

// NewPhysics creates the body for e. Static bodies get no ground sensor and
// ignore gravity.
func NewPhysics(world physics.World, e ecs.Entity, static bool, pos, size cp.Vector, settings PhysicsSettings) *Physics {
	if world == nil {
		panic("component: physics needs a world")
	}

	p := &Physics{
		world:             world,
		body:              world.CreateBody(pos, size, static),
		settings:          settings,
		affectedByGravity: !static,
	}
	p.body.SetUserData(e)

	if !static {
		p.ground = NewSensor(world, p.body, cp.Vector{X: size.X, Y: settings.GroundSensorHeight})
		p.ground.AddGroupsToCheck(GroupSolid)
		p.ground.SetPosition(p.groundPosition())
	}

	hooks := p.body.Hooks()
	hooks.OnPreUpdate.Add(func() {
		p.hitLeft, p.hitRight, p.hitTop, p.hitBottom = false, false, false, false
	})
	hooks.OnDetection.Add(func(di physics.DetectionInfo) {
		if e, ok := di.UserData.(ecs.Entity); ok {
			p.OnDetection.Call(e)
		}
	})
	hooks.OnResolution.Add(func(ri *physics.ResolutionInfo) {
		p.lastResolution = ri.Resolution
		p.markHit(ri.Resolution)
		p.OnResolution.Call(ri)
	})
	hooks.OnPostUpdate.Add(p.updateCrush)
	return p
}

// Update applies gravity for the next engine tick and re-centers the ground
// sensor under the body.
func (p *Physics) Update(dt float64) {
	if p == nil || p.body.Destroyed() {
		return
	}
	if p.affectedByGravity && !p.body.Static() && p.body.Velocity().Y < p.settings.MaxVelocityY {
		p.body.ApplyAccel(p.settings.Gravity)
	}
	if p.ground != nil {
		p.ground.SetPosition(p.groundPosition())
	}
}

func (p *Physics) groundPosition() cp.Vector {
	pos := p.body.Position()
	return cp.Vector{X: pos.X, Y: pos.Y + p.body.Size().Y/2}
}

// markHit records which side of the body a correction pushed against. A
// correction pushing right means the body was hit on its left side.
func (p *Physics) markHit(res cp.Vector) {
	switch {
	case res.X > 0:
		p.hitLeft = true
	case res.X < 0:
		p.hitRight = true
	}
	switch {
	case res.Y > 0:
		p.hitTop = true
	case res.Y < 0:
		p.hitBottom = true
	}
}

func (p *Physics) updateCrush() {
	p.crushedLeft = nextCrush(p.crushedLeft, p.hitLeft)
	p.crushedRight = nextCrush(p.crushedRight, p.hitRight)
	p.crushedTop = nextCrush(p.crushedTop, p.hitTop)
	p.crushedBottom = nextCrush(p.crushedBottom, p.hitBottom)
}

func nextCrush(c int, hit bool) int {
	if !hit {
		return 0
	}
	if c < crushedMax {
		return c + 1
	}
	return crushedMax
}

func (p *Physics) World() physics.World      { return p.world }
func (p *Physics) Body() physics.Body        { return p.body }
func (p *Physics) GroundSensor() *Sensor     { return p.ground }
func (p *Physics) Position() cp.Vector       { return p.body.Position() }
func (p *Physics) Velocity() cp.Vector       { return p.body.Velocity() }
func (p *Physics) LastResolution() cp.Vector { return p.lastResolution }

func (p *Physics) SetAffectedByGravity(v bool) { p.affectedByGravity = v }
func (p *Physics) IsAffectedByGravity() bool   { return p.affectedByGravity }

func (p *Physics) IsCrushedLeft() bool   { return p.crushedLeft > crushedTolerance }
func (p *Physics) IsCrushedRight() bool  { return p.crushedRight > crushedTolerance }
func (p *Physics) IsCrushedTop() bool    { return p.crushedTop > crushedTolerance }
func (p *Physics) IsCrushedBottom() bool { return p.crushedBottom > crushedTolerance }

func (p *Physics) CrushedLeft() int   { return p.crushedLeft }
func (p *Physics) CrushedRight() int  { return p.crushedRight }
func (p *Physics) CrushedTop() int    { return p.crushedTop }
func (p *Physics) CrushedBottom() int { return p.crushedBottom }

// IsInAir reports that the ground sensor saw nothing during the last tick.
func (p *Physics) IsInAir() bool {
	if p.ground == nil {
		return false
	}
	return !p.ground.Active()
}

func (p *Physics) IsGrounded() bool { return !p.IsInAir() }

// Destroy releases the ground sensor and the body. The engine defers the
// actual removal while it is dispatching callbacks.
func (p *Physics) Destroy() {
	if p.ground != nil {
		p.ground.Destroy()
	}
	p.body.Destroy()
}
