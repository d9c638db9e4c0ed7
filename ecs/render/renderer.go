package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/blockdrop/common"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	labelSize    = 13
	countdownBar = 6
)

// Renderer draws every entity that has both a physics body and a sprite.
type Renderer struct {
	face       text.Face
	ShowLabels bool
}

func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13), ShowLabels: true}
}

// Draw renders sprites in descending Priority, so lower priorities end up on
// top, then block stress labels and the countdown bar.
func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image, view View) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := ecs.Query(w, component.PhysicsComponent.Kind().ID(), component.SpriteComponent.Kind().ID())
	priority := func(e ecs.Entity) int {
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			return s.Priority
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		pi, pj := priority(entities[i]), priority(entities[j])
		if pi != pj {
			return pi > pj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		p, _ := ecs.Get(w, e, component.PhysicsComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		r.drawSprite(screen, p, s, view)
	}

	if r.ShowLabels {
		ecs.ForEach(w, component.BlockComponent.Kind(), func(_ ecs.Entity, b *component.Block) {
			r.drawLabel(screen, b, view)
		})
	}
	r.drawCountdown(w, screen)
}

func (r *Renderer) drawSprite(screen *ebiten.Image, p *component.Physics, s *component.Sprite, view View) {
	sheet := SheetImage(s.Sheet)
	if sheet == nil || p.Body().Destroyed() {
		return
	}
	pos := common.VecToPixels(p.Position()).Add(s.Offset)
	size := common.VecToPixels(p.Body().Size())

	for _, el := range s.Elements {
		img, ok := sheet.SubImage(el.Source).(*ebiten.Image)
		if !ok || el.Source.Empty() {
			continue
		}
		sw, sh := float64(el.Source.Dx()), float64(el.Source.Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-sw/2, -sh/2)
		if s.FlipX {
			op.GeoM.Scale(-1, 1)
		}
		if s.ScaleWithBody {
			op.GeoM.Scale(size.X/sw, size.Y/sh)
		}
		op.GeoM.Translate(pos.X, pos.Y)
		view.apply(&op.GeoM)
		op.ColorScale.ScaleWithColor(el.Color)
		screen.DrawImage(img, op)
	}
}

// drawLabel writes the stress label just above the block's top-left corner.
func (r *Renderer) drawLabel(screen *ebiten.Image, b *component.Block, view View) {
	body := b.Physics().Body()
	if body.Destroyed() {
		return
	}
	corner := body.Position().Sub(body.Size().Mult(0.5))
	x, y := view.ToScreen(corner)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-labelSize)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, b.Label(), r.face, op)
}

// drawCountdown shows the remaining time as a bar along the top edge that
// shifts from green to red.
func (r *Renderer) drawCountdown(w *ecs.World, screen *ebiten.Image) {
	e, ok := ecs.First(w, component.CountdownComponent.Kind())
	if !ok {
		return
	}
	c, _ := ecs.Get(w, e, component.CountdownComponent.Kind())
	if !c.Running() || c.Duration <= 0 {
		return
	}
	frac := common.Clamp(c.Remaining/c.Duration, 0, 1)
	width := float64(screen.Bounds().Dx())
	bar := color.RGBA{
		R: uint8(common.Lerp(255, 60, frac)),
		G: uint8(common.Lerp(40, 200, frac)),
		B: 60,
		A: 255,
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width*frac), countdownBar, bar, false)
}
