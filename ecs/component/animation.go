package component

import "image"

type AnimationType int

const (
	AnimationLoop AnimationType = iota
	AnimationOnce
	AnimationPingPong
)

// TileIndex addresses a tile by column and row.
type TileIndex struct {
	X int
	Y int
}

// Tileset maps tile indices to source rectangles on a sheet.
type Tileset struct {
	TileW int
	TileH int
}

func (t Tileset) Rect(i TileIndex) image.Rectangle {
	x, y := i.X*t.TileW, i.Y*t.TileH
	return image.Rect(x, y, x+t.TileW, y+t.TileH)
}

// AnimationFrame shows Tile for Duration ticks.
type AnimationFrame struct {
	Tile     TileIndex
	Duration float64
}

// Animation is a frame sequence advanced by elapsed time.
type Animation struct {
	Frames []AnimationFrame
	Type   AnimationType
	Speed  float64

	index    int
	time     float64
	backward bool
}

func NewAnimation(frames []AnimationFrame, typ AnimationType, speed float64) *Animation {
	if speed <= 0 {
		speed = 1
	}
	return &Animation{Frames: frames, Type: typ, Speed: speed}
}

func (a *Animation) Update(dt float64) {
	if a == nil || len(a.Frames) == 0 {
		return
	}
	a.time += dt * a.Speed
	for {
		d := a.Frames[a.index].Duration
		if d <= 0 || a.time < d {
			return
		}
		a.time -= d
		if !a.advance() {
			a.time = 0
			return
		}
	}
}

// advance moves to the next frame and reports whether the clip can go on.
func (a *Animation) advance() bool {
	last := len(a.Frames) - 1
	if last == 0 {
		return a.Type != AnimationOnce
	}
	switch a.Type {
	case AnimationOnce:
		if a.index == last {
			return false
		}
		a.index++
	case AnimationPingPong:
		if a.backward {
			a.index--
			if a.index == 0 {
				a.backward = false
			}
		} else {
			a.index++
			if a.index == last {
				a.backward = true
			}
		}
	default:
		a.index = (a.index + 1) % len(a.Frames)
	}
	return true
}

func (a *Animation) Index() int { return a.index }

func (a *Animation) Tile() TileIndex {
	if a == nil || len(a.Frames) == 0 {
		return TileIndex{}
	}
	return a.Frames[a.index].Tile
}

func (a *Animation) Reset() {
	a.index = 0
	a.time = 0
	a.backward = false
}
