package component

import (
	"image"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
)

// Sheet names a drawable sheet known to the renderer.
type Sheet int

const (
	SheetWorld Sheet = iota
	SheetChar
)

// SpriteElement is one layer of an entity's sprite.
type SpriteElement struct {
	Source image.Rectangle
	Color  color.RGBA
}

// Sprite describes how an entity is drawn centered on its body. Elements are
// drawn in order; Offset is in pixels.
type Sprite struct {
	Sheet    Sheet
	Elements []SpriteElement
	FlipX    bool
	Offset   cp.Vector
	// ScaleWithBody stretches each element to the body size.
	ScaleWithBody bool
	Priority      int
}

var SpriteComponent = ecs.NewComponent[Sprite]()

// AddElement appends an untinted element and returns its index.
func (s *Sprite) AddElement(src image.Rectangle) int {
	s.Elements = append(s.Elements, SpriteElement{Source: src, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}})
	return len(s.Elements) - 1
}

func (s *Sprite) SetSource(i int, src image.Rectangle) {
	if i >= 0 && i < len(s.Elements) {
		s.Elements[i].Source = src
	}
}

func (s *Sprite) SetColor(i int, c color.RGBA) {
	if i >= 0 && i < len(s.Elements) {
		s.Elements[i].Color = c
	}
}

// WorldTileset slices the world sheet.
var WorldTileset = Tileset{TileW: 16, TileH: 16}
