package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/physics"
)

// Sensor wraps an engine trigger volume owned by a parent body.
//
// Active is cleared before every engine tick and set by any overlap other than
// the parent, so it reflects the previous tick. OnDetection fires once per
// overlap whose body carries an entity.
type Sensor struct {
	parent   physics.Body
	sensor   physics.Sensor
	position cp.Vector
	active   bool

	OnDetection physics.Delegate[ecs.Entity]
}

func NewSensor(world physics.World, parent physics.Body, size cp.Vector) *Sensor {
	if world == nil || parent == nil {
		panic("component: sensor needs a world and a parent body")
	}

	s := &Sensor{parent: parent, position: parent.Position()}
	s.sensor = world.CreateSensor(s.position, size)
	s.sensor.AddGroups(GroupSensor)

	hooks := s.sensor.Hooks()
	hooks.OnPreUpdate.Add(func() {
		s.active = false
		s.sensor.SetPosition(s.position)
	})
	hooks.OnDetection.Add(s.detect)
	return s
}

func (s *Sensor) detect(di physics.DetectionInfo) {
	if di.Body == s.parent {
		return
	}
	s.active = true

	e, ok := di.UserData.(ecs.Entity)
	if !ok {
		return
	}
	s.OnDetection.Call(e)
}

// SetPosition moves the volume before the next engine tick.
func (s *Sensor) SetPosition(p cp.Vector) { s.position = p }

func (s *Sensor) Position() cp.Vector { return s.position }

func (s *Sensor) Active() bool { return s.active }

func (s *Sensor) AddGroupsToCheck(g physics.Group) { s.sensor.AddGroupsToCheck(g) }

func (s *Sensor) Engine() physics.Sensor { return s.sensor }

func (s *Sensor) Destroy() {
	if s.sensor != nil {
		s.sensor.Destroy()
	}
}
