package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/common"
)

// View maps world pixels to screen pixels: scale by Zoom, then shift.
type View struct {
	Zoom float64
	X, Y float64
}

// FitView centers a level of lw x lh world coordinates on a sw x sh screen.
func FitView(lw, lh, sw, sh float64) View {
	pw, ph := common.ToPixels(lw), common.ToPixels(lh)
	if pw <= 0 || ph <= 0 {
		return View{Zoom: 1}
	}
	zoom := min(sw/pw, sh/ph)
	return View{
		Zoom: zoom,
		X:    (sw - pw*zoom) / 2,
		Y:    (sh - ph*zoom) / 2,
	}
}

func (v View) apply(g *ebiten.GeoM) {
	g.Scale(v.Zoom, v.Zoom)
	g.Translate(v.X, v.Y)
}

// ToScreen converts world coordinates to screen pixels.
func (v View) ToScreen(c cp.Vector) (float64, float64) {
	p := common.VecToPixels(c)
	return p.X*v.Zoom + v.X, p.Y*v.Zoom + v.Y
}
