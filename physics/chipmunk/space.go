// Package chipmunk implements the physics contract on top of a Chipmunk2D
// space. Every shape shares one collision type; a single handler turns
// contacts into detection and resolution events and enforces the group rules.
package chipmunk

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/physics"
)

const collisionTypeBody cp.CollisionType = 1

// DefaultStressScale converts accumulated solver impulses into stress units.
const DefaultStressScale = 10.0

// Space owns the Chipmunk space and the engine objects created in it.
type Space struct {
	space         *cp.Space
	handlersReady bool
	stepping      bool

	bodies  []*Body
	sensors []*Sensor

	bodyShapes   map[*cp.Shape]*Body
	sensorShapes map[*cp.Shape]*Sensor

	StressScale float64
}

var _ physics.World = (*Space)(nil)

// NewSpace creates an empty space. Gravity is left at zero: bodies receive
// acceleration explicitly through ApplyAccel.
func NewSpace() *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	s := &Space{
		space:        space,
		bodyShapes:   make(map[*cp.Shape]*Body),
		sensorShapes: make(map[*cp.Shape]*Sensor),
		StressScale:  DefaultStressScale,
	}
	s.setupHandlers()
	return s
}

// Space returns the underlying Chipmunk space.
func (s *Space) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

func (s *Space) CreateBody(pos, size cp.Vector, static bool) physics.Body {
	var body *cp.Body
	if static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(1, math.Inf(1))
	}
	body.SetPosition(pos)
	shape := cp.NewBox(body, size.X, size.Y, 0)
	shape.SetCollisionType(collisionTypeBody)
	shape.SetFriction(0)

	s.space.AddBody(body)
	s.space.AddShape(shape)

	b := &Body{owner: s, body: body, shape: shape, size: size, static: static, resolve: true}
	s.bodies = append(s.bodies, b)
	s.bodyShapes[shape] = b
	return b
}

func (s *Space) CreateSensor(pos, size cp.Vector) physics.Sensor {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		body.SetVelocityVector(cp.Vector{})
	})
	shape := cp.NewBox(body, size.X, size.Y, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeBody)

	s.space.AddBody(body)
	s.space.AddShape(shape)

	sn := &Sensor{owner: s, body: body, shape: shape, pos: pos, size: size}
	s.sensors = append(s.sensors, sn)
	s.sensorShapes[shape] = sn
	return sn
}

// Update runs one engine tick: pre-update hooks, acceleration integration,
// the Chipmunk step (which dispatches detection and resolution), post-update
// hooks, then removal of anything destroyed meanwhile.
func (s *Space) Update(dt float64) {
	if s == nil || s.space == nil {
		return
	}
	s.stepping = true

	for _, b := range s.bodies {
		if b.destroyed {
			continue
		}
		b.hooks.OnPreUpdate.Call()
	}
	for _, sn := range s.sensors {
		if !sn.destroyed {
			sn.hooks.OnPreUpdate.Call()
		}
	}

	for _, b := range s.bodies {
		if b.destroyed || b.static {
			continue
		}
		if b.accel != (cp.Vector{}) {
			b.body.SetVelocityVector(b.body.Velocity().Add(b.accel.Mult(dt)))
			b.accel = cp.Vector{}
		}
	}
	for _, sn := range s.sensors {
		if !sn.destroyed {
			sn.body.SetPosition(sn.pos)
			sn.body.SetVelocityVector(cp.Vector{})
		}
	}

	// Pre-update hooks read the previous tick's stress.
	for _, b := range s.bodies {
		b.stress = cp.Vector{}
	}
	s.space.Step(dt)

	for _, b := range s.bodies {
		if !b.destroyed {
			b.hooks.OnPostUpdate.Call()
		}
	}
	for _, sn := range s.sensors {
		if !sn.destroyed {
			sn.hooks.OnPostUpdate.Call()
		}
	}

	s.stepping = false
	s.flush()
}

func (s *Space) flush() {
	if s.stepping {
		return
	}
	bodies := s.bodies[:0]
	for _, b := range s.bodies {
		if !b.destroyed {
			bodies = append(bodies, b)
			continue
		}
		s.space.RemoveShape(b.shape)
		s.space.RemoveBody(b.body)
		delete(s.bodyShapes, b.shape)
	}
	s.bodies = bodies

	sensors := s.sensors[:0]
	for _, sn := range s.sensors {
		if !sn.destroyed {
			sensors = append(sensors, sn)
			continue
		}
		s.space.RemoveShape(sn.shape)
		s.space.RemoveBody(sn.body)
		delete(s.sensorShapes, sn.shape)
	}
	s.sensors = sensors
}

// Len returns the number of live bodies and sensors.
func (s *Space) Len() (bodies, sensors int) {
	return len(s.bodies), len(s.sensors)
}

func (s *Space) setupHandlers() {
	if s.handlersReady {
		return
	}
	// cp hands the handler itself to the callbacks, not its UserData.
	handler := s.space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	handler.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		return s.preSolve(arb)
	}
	handler.PostSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		s.postSolve(arb)
	}
	s.handlersReady = true
	log.Printf("chipmunk: collision handlers ready")
}
