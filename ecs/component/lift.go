package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
)

// Lift is a gravity-less solid driven at a constant velocity.
type Lift struct {
	Velocity cp.Vector
}

var LiftComponent = ecs.NewComponent[Lift]()

func NewLift(p *Physics, vel cp.Vector) *Lift {
	if p == nil {
		panic("component: lift needs a physics adapter")
	}
	l := &Lift{Velocity: vel}
	p.SetAffectedByGravity(false)
	body := p.Body()
	body.Hooks().OnPreUpdate.Add(func() {
		body.SetVelocity(l.Velocity.Mult(2))
	})
	return l
}
