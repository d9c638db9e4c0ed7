package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockdrop/ecs/component"
)

var sheets = map[component.Sheet]*ebiten.Image{}

// RegisterSheet stores the image drawn for sprites of sheet.
func RegisterSheet(sheet component.Sheet, img *ebiten.Image) {
	if img == nil {
		return
	}
	sheets[sheet] = img
}

// SheetImage returns a registered sheet or nil.
func SheetImage(sheet component.Sheet) *ebiten.Image {
	return sheets[sheet]
}
