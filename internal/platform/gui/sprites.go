package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/isodice/internal/games/isodice/core"
)

// tileColors holds the top, front and right face colors of each tile sprite.
var tileColors = map[core.TileType][3]color.RGBA{
	core.TileFloor: {{R: 90, G: 120, B: 200, A: 255}, {R: 70, G: 95, B: 170, A: 255}, {R: 60, G: 80, B: 150, A: 255}},
	core.TileStart: {{R: 90, G: 200, B: 120, A: 255}, {R: 70, G: 160, B: 95, A: 255}, {R: 60, G: 140, B: 85, A: 255}},
	core.TileGoal:  {{R: 230, G: 70, B: 80, A: 255}, {R: 190, G: 55, B: 65, A: 255}, {R: 170, G: 45, B: 55, A: 255}},
	core.TileTimed: {{R: 170, G: 170, B: 180, A: 255}, {R: 140, G: 140, B: 150, A: 255}, {R: 120, G: 120, B: 130, A: 255}},
	core.TileBlock: {{R: 240, G: 150, B: 60, A: 255}, {R: 200, G: 120, B: 45, A: 255}, {R: 180, G: 105, B: 40, A: 255}},
}

// steppedColors is the timed tile sprite once its countdown runs.
var steppedColors = [3]color.RGBA{
	{R: 95, G: 95, B: 105, A: 255},
	{R: 75, G: 75, B: 85, A: 255},
	{R: 65, G: 65, B: 75, A: 255},
}

// Sprites caches the GPU images of tiles and the die texture.
type Sprites struct {
	template *image.RGBA
	tiles    map[core.TileType]*ebiten.Image
	stepped  *ebiten.Image

	dieSrc *image.RGBA // Texture the die image was made from
	die    *ebiten.Image
}

// NewSprites recolors the cube template once per tile type.
func NewSprites() *Sprites {
	s := &Sprites{
		template: core.DefaultTemplate(),
		tiles:    make(map[core.TileType]*ebiten.Image, len(tileColors)),
	}
	for t, c := range tileColors {
		s.tiles[t] = s.recolor(c)
	}
	s.stepped = s.recolor(steppedColors)
	return s
}

func (s *Sprites) recolor(c [3]color.RGBA) *ebiten.Image {
	return ebiten.NewImageFromImage(core.Recolor(s.template, c[0], c[1], c[2]))
}

// Tile returns the sprite of a block, or nil when it draws nothing.
func (s *Sprites) Tile(b *core.Block) *ebiten.Image {
	if b.Void() {
		return nil
	}
	if b.Timed() && b.Toggle.SteppedOn {
		return s.stepped
	}
	return s.tiles[b.Type]
}

// Die returns the GPU image of the die texture. The texture is replaced only
// after a successful roll, so the upload happens once per move.
func (s *Sprites) Die(d *core.Die) *ebiten.Image {
	tex := d.Texture()
	if tex != s.dieSrc || s.die == nil {
		if s.die != nil {
			s.die.Deallocate()
		}
		s.die = ebiten.NewImageFromImage(tex)
		s.dieSrc = tex
	}
	return s.die
}
