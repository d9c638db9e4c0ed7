package entity

import (
	"image/color"
	"math/rand/v2"
)

// ColorMap hands out one random opaque tint per block value. Blocks and
// receivers of a level share a map so matching values look alike; -1 and
// other negative values stay untinted.
type ColorMap struct {
	rng    *rand.Rand
	colors map[int]color.RGBA
}

func NewColorMap(seed uint64) *ColorMap {
	return &ColorMap{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		colors: make(map[int]color.RGBA),
	}
}

// Color returns the tint for value and whether value is tinted at all.
func (m *ColorMap) Color(value int) (color.RGBA, bool) {
	if value < 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, false
	}
	if c, ok := m.colors[value]; ok {
		return c, true
	}
	c := color.RGBA{
		R: uint8(m.rng.IntN(256)),
		G: uint8(m.rng.IntN(256)),
		B: uint8(m.rng.IntN(256)),
		A: 255,
	}
	m.colors[value] = c
	return c, true
}

func (m *ColorMap) Len() int { return len(m.colors) }
