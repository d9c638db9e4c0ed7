// Package physicstest provides a scripted engine implementing physics.World.
// Nothing collides on its own: tests queue the detections and resolutions a
// real solver would produce, and Update dispatches them in engine order.
package physicstest

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/physics"
)

type hooked interface {
	Hooks() *physics.Hooks
	Destroyed() bool
}

type resolution struct {
	target *Body
	other  physics.Body
	vec    cp.Vector
}

type detection struct {
	target hooked
	other  physics.Body
}

// World is a deterministic stand-in for a rigid body engine.
type World struct {
	bodies      []*Body
	sensors     []*Sensor
	resolutions []resolution
	detections  []detection
	overlaps    []detection

	// Dispatched holds the resolution infos delivered during the last Update,
	// after handlers had a chance to set the NoResolve flags.
	Dispatched []*physics.ResolutionInfo
	Ticks      int
}

var _ physics.World = (*World)(nil)

func NewWorld() *World {
	return &World{}
}

func (w *World) CreateBody(pos, size cp.Vector, static bool) physics.Body {
	return w.NewBody(pos, size, static)
}

// NewBody is CreateBody returning the concrete type.
func (w *World) NewBody(pos, size cp.Vector, static bool) *Body {
	b := &Body{pos: pos, size: size, static: static, resolve: true}
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) CreateSensor(pos, size cp.Vector) physics.Sensor {
	s := &Sensor{pos: pos, size: size}
	w.sensors = append(w.sensors, s)
	return s
}

// Bodies returns the live bodies in creation order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if !b.destroyed {
			out = append(out, b)
		}
	}
	return out
}

// Sensors returns the live sensors in creation order.
func (w *World) Sensors() []*Sensor {
	out := make([]*Sensor, 0, len(w.sensors))
	for _, s := range w.sensors {
		if !s.destroyed {
			out = append(out, s)
		}
	}
	return out
}

// Resolve queues a correction of vec against target, caused by other.
func (w *World) Resolve(target *Body, other physics.Body, vec cp.Vector) {
	w.resolutions = append(w.resolutions, resolution{target: target, other: other, vec: vec})
}

// Detect queues a one-tick overlap between target (a body or a sensor) and other.
func (w *World) Detect(target hooked, other physics.Body) {
	w.detections = append(w.detections, detection{target: target, other: other})
}

// Overlap reports an overlap every tick until Separate is called.
func (w *World) Overlap(target hooked, other physics.Body) {
	w.overlaps = append(w.overlaps, detection{target: target, other: other})
}

func (w *World) Separate(target hooked, other physics.Body) {
	kept := w.overlaps[:0]
	for _, d := range w.overlaps {
		if d.target == target && d.other == other {
			continue
		}
		kept = append(kept, d)
	}
	w.overlaps = kept
}

func (w *World) Update(dt float64) {
	w.Ticks++
	w.Dispatched = nil

	for _, b := range w.bodies {
		if !b.destroyed {
			b.hooks.OnPreUpdate.Call()
		}
	}
	for _, s := range w.sensors {
		if !s.destroyed {
			s.hooks.OnPreUpdate.Call()
		}
	}

	for _, b := range w.bodies {
		if b.destroyed || b.static {
			continue
		}
		b.vel = b.vel.Add(b.accel.Mult(dt))
		b.accel = cp.Vector{}
		b.pos = b.pos.Add(b.vel.Mult(dt))
	}

	for _, d := range append(append([]detection(nil), w.overlaps...), w.detections...) {
		if d.target.Destroyed() || d.other == nil || d.other.Destroyed() {
			continue
		}
		d.target.Hooks().OnDetection.Call(physics.DetectionInfo{Body: d.other, UserData: d.other.UserData()})
	}
	w.detections = nil

	for _, r := range w.resolutions {
		if r.target.destroyed {
			continue
		}
		info := &physics.ResolutionInfo{Body: r.other, Resolution: r.vec}
		r.target.hooks.OnResolution.Call(info)
		w.Dispatched = append(w.Dispatched, info)
		if !info.NoResolvePosition {
			r.target.pos = r.target.pos.Add(r.vec)
		}
		if !info.NoResolveVelocity {
			if r.vec.X != 0 {
				r.target.vel.X = 0
			}
			if r.vec.Y != 0 {
				r.target.vel.Y = 0
			}
		}
	}
	w.resolutions = nil

	for _, b := range w.bodies {
		if !b.destroyed {
			b.hooks.OnPostUpdate.Call()
		}
	}
	for _, s := range w.sensors {
		if !s.destroyed {
			s.hooks.OnPostUpdate.Call()
		}
	}
}
