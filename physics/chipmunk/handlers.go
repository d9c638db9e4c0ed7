package chipmunk

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/physics"
)

func (s *Space) preSolve(arb *cp.Arbiter) bool {
	shapeA, shapeB := arb.Shapes()

	if sn, ok := s.sensorShapes[shapeA]; ok {
		s.sense(sn, s.bodyShapes[shapeB])
		return false
	}
	if sn, ok := s.sensorShapes[shapeB]; ok {
		s.sense(sn, s.bodyShapes[shapeA])
		return false
	}

	a, okA := s.bodyShapes[shapeA]
	b, okB := s.bodyShapes[shapeB]
	if !okA || !okB || a.destroyed || b.destroyed {
		return false
	}

	aChecks := a.toCheck.Has(b.groups)
	bChecks := b.toCheck.Has(a.groups)
	if aChecks {
		a.hooks.OnDetection.Call(physics.DetectionInfo{Body: b, UserData: b.userData})
	}
	if bChecks {
		b.hooks.OnDetection.Call(physics.DetectionInfo{Body: a, UserData: a.userData})
	}

	aResolves := aChecks && a.resolve && !a.noResolve.Has(b.groups)
	bResolves := bChecks && b.resolve && !b.noResolve.Has(a.groups)
	if !aResolves && !bResolves {
		return false
	}

	normal, depth := penetration(arb)
	if depth <= 0 {
		return true
	}

	apply := true
	if aResolves && !a.destroyed {
		info := &physics.ResolutionInfo{Body: b, Resolution: axisCorrection(normal.Neg(), depth)}
		a.hooks.OnResolution.Call(info)
		if info.NoResolvePosition || info.NoResolveVelocity {
			apply = false
		}
	}
	if bResolves && !b.destroyed {
		info := &physics.ResolutionInfo{Body: a, Resolution: axisCorrection(normal, depth)}
		b.hooks.OnResolution.Call(info)
		if info.NoResolvePosition || info.NoResolveVelocity {
			apply = false
		}
	}
	return apply
}

func (s *Space) postSolve(arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	impulse := arb.TotalImpulse()
	stress := cp.Vector{X: math.Abs(impulse.X), Y: math.Abs(impulse.Y)}.Mult(s.StressScale)
	if b, ok := s.bodyShapes[shapeA]; ok && !b.static {
		b.stress = b.stress.Add(stress)
	}
	if b, ok := s.bodyShapes[shapeB]; ok && !b.static {
		b.stress = b.stress.Add(stress)
	}
}

func (s *Space) sense(sn *Sensor, other *Body) {
	if sn == nil || other == nil || sn.destroyed || other.destroyed {
		return
	}
	if !sn.toCheck.Has(other.groups) {
		return
	}
	sn.hooks.OnDetection.Call(physics.DetectionInfo{Body: other, UserData: other.userData})
}

// penetration returns the contact normal (pointing from A to B) and the
// deepest overlap of the contact set.
func penetration(arb *cp.Arbiter) (cp.Vector, float64) {
	set := arb.ContactPointSet()
	depth := 0.0
	for i := 0; i < set.Count; i++ {
		if d := -set.Points[i].Distance; d > depth {
			depth = d
		}
	}
	return set.Normal, depth
}

// axisCorrection snaps dir to its dominant axis and scales it by depth, so
// every resolution is reported against exactly one side.
func axisCorrection(dir cp.Vector, depth float64) cp.Vector {
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		return cp.Vector{X: math.Copysign(depth, dir.X)}
	}
	return cp.Vector{Y: math.Copysign(depth, dir.Y)}
}
