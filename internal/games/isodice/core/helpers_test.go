package core

import (
	"image"
	"image/color"
	"testing"
)

// Level fixtures are written as rows of characters, top row first:
//
//	.  empty      f  floor      b  block      g  goal
//	s  start      t  timed      v  void (raster builder only)
var fixtureTiles = map[rune]TileType{
	'f': TileFloor,
	'b': TileBlock,
	'g': TileGoal,
	's': TileStart,
	't': TileTimed,
	'v': TileVoid,
}

var fixtureColors = map[rune]color.NRGBA{
	'f': ColorFloor,
	'b': ColorBlock,
	'g': ColorGoal,
	's': ColorStart,
	't': ColorTimed,
}

// rasterOf builds a raster directly, bypassing image decoding.
func rasterOf(t *testing.T, rows ...string) Raster {
	t.Helper()
	r := Raster{Height: len(rows)}
	starts := 0
	for y, row := range rows {
		if len(row) > r.Width {
			r.Width = len(row)
		}
		for x, ch := range row {
			tt, ok := fixtureTiles[ch]
			if !ok {
				continue
			}
			if tt == TileStart {
				starts++
				r.Start = V(x, y, 0)
			}
			r.Tiles = append(r.Tiles, Placement{Pos: V(x, y, 0), Type: tt})
		}
	}
	if starts != 1 {
		t.Fatalf("fixture needs exactly one start, got %d", starts)
	}
	return r
}

// imageOf renders rows to a level image.
func imageOf(rows ...string) *image.NRGBA {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			if c, ok := fixtureColors[ch]; ok {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// newTestWorld builds a world from rows with the given die layout.
func newTestWorld(t *testing.T, layout Layout, rows ...string) *World {
	t.Helper()
	w := NewWorld(Options{})
	w.Build(rasterOf(t, rows...), layout)
	return w
}

// oneStep is a layout whose first roll in any direction travels one cell.
var oneStep = NewLayout(5, 0, 0, 0, 0, 0)
