package assets

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

const worldTile = 16

var (
	sheetsOnce sync.Once
	worldSheet *ebiten.Image
	charSheet  *ebiten.Image
)

// Sheets returns the world and character sheets, loading Dir/world.png and
// Dir/char.png when present and painting them otherwise.
func Sheets(charTileW, charTileH int) (world, char *ebiten.Image) {
	sheetsOnce.Do(func() {
		worldSheet = loadOrPaint("world.png", PaintWorld)
		charSheet = loadOrPaint("char.png", func() *image.RGBA { return PaintChar(charTileW, charTileH) })
	})
	return worldSheet, charSheet
}

func loadOrPaint(path string, paint func() *image.RGBA) *ebiten.Image {
	if img, err := LoadImage(path); err == nil {
		return ebiten.NewImageFromImage(img)
	}
	log.Printf("assets: %s unavailable, painting it", path)
	return ebiten.NewImageFromImage(paint())
}

// PaintWorld draws the world tiles. Blocks are painted white so the renderer
// can tint them per value.
func PaintWorld() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 11*worldTile, 2*worldTile))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	grey := color.RGBA{R: 190, G: 190, B: 190, A: 255}

	// blocks
	framed(img, 0, 0, white, grey)
	framed(img, 1, 1, white, colornames.Sienna)
	circle(img, 7, 0, white)
	stripes(img, 9, 0, white, grey, true)
	stripes(img, 10, 0, white, grey, false)

	// walls
	bricks(img, 1, 0, colornames.Slategray, colornames.Darkslategray)
	bricks(img, 3, 0, colornames.Gray, colornames.Darkslategray)
	bricks(img, 4, 0, colornames.Lightslategray, colornames.Darkslategray)
	bricks(img, 5, 1, colornames.Dimgray, colornames.Darkslategray)

	hollow(img, 5, 0, white)
	fill(img, tileRect(6, 0), white)
	framed(img, 0, 1, white, grey)

	return withOutline(img, 1, color.RGBA{A: 160})
}

// PaintChar draws the player frames: torso on row 0 and legs on row 1, each
// frame a full-height layer so both rows stack on the same spot.
func PaintChar(tw, th int) *image.RGBA {
	if tw <= 0 || th <= 0 {
		tw, th = 12, 30
	}
	img := image.NewRGBA(image.Rect(0, 0, 8*tw, 2*th))
	skin := colornames.Peachpuff
	shirt := colornames.Steelblue
	pants := colornames.Midnightblue

	hip := th * 3 / 5
	for i := 0; i < 8; i++ {
		x0 := i * tw
		head := image.Rect(x0+tw/4, 1, x0+tw*3/4, 1+tw/2)
		fill(img, head, skin)
		fill(img, image.Rect(x0+tw/4, head.Max.Y, x0+tw*3/4, hip), shirt)

		armY := head.Max.Y + 1
		switch {
		case i == 7:
			// arms raised for holding
			fill(img, image.Rect(x0+tw*3/4, armY-2, x0+tw, armY), skin)
		case i >= 2 && i <= 4:
			swing := (i - 3) * 2
			fill(img, image.Rect(x0+tw/2+swing, armY+2, x0+tw/2+swing+2, hip-2), skin)
		default:
			fill(img, image.Rect(x0+tw/2, armY+2, x0+tw/2+2, hip-2), skin)
		}
	}

	for i := 0; i < 7; i++ {
		x0 := i * tw
		y0 := th
		stride := 0
		switch i {
		case 1, 3:
			stride = 2
		case 2:
			stride = 3
		case 5:
			stride = -1
		case 6:
			stride = 1
		}
		left := image.Rect(x0+tw/4-stride, y0+hip, x0+tw/2-stride, y0+th-1)
		right := image.Rect(x0+tw/2+stride, y0+hip, x0+tw*3/4+stride, y0+th-1)
		fill(img, left.Intersect(image.Rect(x0, y0, x0+tw, y0+th)), pants)
		fill(img, right.Intersect(image.Rect(x0, y0, x0+tw, y0+th)), pants)
	}
	return img
}

func tileRect(x, y int) image.Rectangle {
	return image.Rect(x*worldTile, y*worldTile, (x+1)*worldTile, (y+1)*worldTile)
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func framed(img *image.RGBA, x, y int, inner, border color.Color) {
	r := tileRect(x, y)
	fill(img, r, border)
	fill(img, r.Inset(2), inner)
}

func hollow(img *image.RGBA, x, y int, c color.Color) {
	r := tileRect(x, y)
	fill(img, r, c)
	fill(img, r.Inset(3), color.Transparent)
}

func bricks(img *image.RGBA, x, y int, brick, mortar color.Color) {
	r := tileRect(x, y)
	fill(img, r, mortar)
	for row := 0; row < 4; row++ {
		shift := (row % 2) * 4
		for col := -1; col < 2; col++ {
			b := image.Rect(r.Min.X+col*8+shift+1, r.Min.Y+row*4+1, r.Min.X+col*8+shift+8, r.Min.Y+row*4+4)
			fill(img, b.Intersect(r), brick)
		}
	}
}

func stripes(img *image.RGBA, x, y int, a, b color.Color, horizontal bool) {
	r := tileRect(x, y)
	for i := 0; i < worldTile; i += 2 {
		c := a
		if (i/2)%2 == 1 {
			c = b
		}
		if horizontal {
			fill(img, image.Rect(r.Min.X, r.Min.Y+i, r.Max.X, r.Min.Y+i+2), c)
		} else {
			fill(img, image.Rect(r.Min.X+i, r.Min.Y, r.Min.X+i+2, r.Max.Y), c)
		}
	}
}

func circle(img *image.RGBA, x, y int, c color.Color) {
	r := tileRect(x, y)
	half := worldTile / 2
	for py := 0; py < worldTile; py++ {
		for px := 0; px < worldTile; px++ {
			dx, dy := px-half, py-half
			if dx*dx+dy*dy < half*half {
				img.Set(r.Min.X+px, r.Min.Y+py, c)
			}
		}
	}
}

// withOutline draws an outlineCol border of the given thickness around the
// opaque pixels of src, in place.
func withOutline(src *image.RGBA, thickness int, outlineCol color.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	opaque := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			opaque[y*w+x] = src.RGBAAt(b.Min.X+x, b.Min.Y+y).A != 0
		}
	}
	isOpaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return opaque[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isOpaque(x, y) {
				continue
			}
			found := false
			for yy := y - thickness; yy <= y+thickness && !found; yy++ {
				for xx := x - thickness; xx <= x+thickness; xx++ {
					if isOpaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				src.SetRGBA(b.Min.X+x, b.Min.Y+y, outlineCol)
			}
		}
	}
	return src
}
