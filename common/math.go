package common

import "github.com/jakecoffman/cp"

// CoordsPerPixel is the number of world coordinates in one screen pixel.
const CoordsPerPixel = 100

func ToPixels(v float64) float64 {
	return v / CoordsPerPixel
}

func ToCoords(v float64) float64 {
	return v * CoordsPerPixel
}

func VecToPixels(v cp.Vector) cp.Vector {
	return cp.Vector{X: ToPixels(v.X), Y: ToPixels(v.Y)}
}

func VecToCoords(v cp.Vector) cp.Vector {
	return cp.Vector{X: ToCoords(v.X), Y: ToCoords(v.Y)}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampVec clamps each component of v to [lo, hi].
func ClampVec(v cp.Vector, lo, hi float64) cp.Vector {
	return cp.Vector{X: Clamp(v.X, lo, hi), Y: Clamp(v.Y, lo, hi)}
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
