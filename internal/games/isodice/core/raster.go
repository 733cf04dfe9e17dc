package core

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrLevelLoad wraps every failure to build a world from level data.
var ErrLevelLoad = errors.New("level load failed")

// Raster colors. Any other color places nothing.
var (
	ColorFloor = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	ColorBlock = color.NRGBA{R: 255, G: 127, B: 0, A: 255}
	ColorGoal  = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	ColorStart = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	ColorTimed = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

var rasterTiles = map[[3]uint8]TileType{
	rgbKey(ColorFloor): TileFloor,
	rgbKey(ColorBlock): TileBlock,
	rgbKey(ColorGoal):  TileGoal,
	rgbKey(ColorStart): TileStart,
	rgbKey(ColorTimed): TileTimed,
}

func rgbKey(c color.NRGBA) [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Placement is one tile decoded from a level raster.
type Placement struct {
	Pos  Vec3
	Type TileType
}

// Raster is the decoded content of a level image.
type Raster struct {
	Width  int
	Height int
	Tiles  []Placement // Row-major, top row first
	Start  Vec3        // Grid position of the start tile
}

// DieSpawn is the die position for a start tile at start.
func (r Raster) DieSpawn() Vec3 {
	return Vec3{X: r.Start.X + 1, Y: r.Start.Y, Z: 1}
}

// DecodeRaster reads tile placements from a level image. Each pixel at
// (x, y) selects the tile at grid (x, y, 0). Exactly one start pixel is required.
func DecodeRaster(img image.Image) (Raster, error) {
	if img == nil {
		return Raster{}, fmt.Errorf("%w: no image", ErrLevelLoad)
	}

	b := img.Bounds()
	r := Raster{Width: b.Dx(), Height: b.Dy()}
	if r.Width == 0 || r.Height == 0 {
		return Raster{}, fmt.Errorf("%w: empty image", ErrLevelLoad)
	}

	starts := 0
	for j := 0; j < r.Height; j++ {
		for i := 0; i < r.Width; i++ {
			px := color.NRGBAModel.Convert(img.At(b.Min.X+i, b.Min.Y+j)).(color.NRGBA)
			if px.A == 0 {
				continue
			}
			t, ok := rasterTiles[rgbKey(px)]
			if !ok {
				continue
			}
			pos := Vec3{X: i, Y: j}
			if t == TileStart {
				starts++
				r.Start = pos
			}
			r.Tiles = append(r.Tiles, Placement{Pos: pos, Type: t})
		}
	}

	if starts != 1 {
		return Raster{}, fmt.Errorf("%w: want exactly one start tile, found %d", ErrLevelLoad, starts)
	}
	return r, nil
}
