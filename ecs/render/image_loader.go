package render

import (
	"github.com/milk9111/blockdrop/assets"
	"github.com/milk9111/blockdrop/ecs/component"
)

// LoadSheets registers the world sheet and the character sheet sliced by
// charTiles.
func LoadSheets(charTiles component.Tileset) {
	world, char := assets.Sheets(charTiles.TileW, charTiles.TileH)
	RegisterSheet(component.SheetWorld, world)
	RegisterSheet(component.SheetChar, char)
}
