package isodice

import (
	"fmt"
	"math"
	"strconv"

	platformcore "github.com/vovakirdan/isodice/internal/core"
	"github.com/vovakirdan/isodice/internal/games/isodice/core"
)

const (
	hudHeight    = 2 // Rows above the world view
	cellsPerStep = 2 // Terminal columns per grid step along X
	minScreenW   = 40
	minScreenH   = 12
)

// faceColors maps die faces to terminal colors, following core.FacePalette.
var faceColors = [core.FaceCount]platformcore.Color{
	platformcore.ColorBrightWhite,
	platformcore.ColorRed,
	platformcore.ColorOrange,
	platformcore.ColorYellow,
	platformcore.ColorGreen,
	platformcore.ColorBlue,
}

// tileGlyphs holds the two-column glyph and color of each tile type.
var tileGlyphs = map[core.TileType]struct {
	glyph [2]rune
	color platformcore.Color
}{
	core.TileFloor: {[2]rune{'░', '░'}, platformcore.ColorBlue},
	core.TileBlock: {[2]rune{'█', '█'}, platformcore.ColorOrange},
	core.TileGoal:  {[2]rune{'▓', '▓'}, platformcore.ColorBrightRed},
	core.TileStart: {[2]rune{'░', '░'}, platformcore.ColorGreen},
	core.TileTimed: {[2]rune{'▒', '▒'}, platformcore.ColorGray},
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderWorld(dst)
	g.renderTexts(dst)
	g.renderHUD(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

// cell converts a projected offset to a terminal cell below the HUD.
func (g *Game) cell(p core.FVec2) (int, int) {
	x := int(math.Floor((p.X - g.camera.X) * cellsPerStep / core.XOffset))
	y := int(math.Floor((p.Y-g.camera.Y)/core.YOffset)) + hudHeight
	return x, y
}

// renderWorld draws the visible elements back to front.
func (g *Game) renderWorld(dst *platformcore.Screen) {
	for _, e := range g.world.Elements() {
		if !g.world.InView(g.camera, e) {
			continue
		}

		switch e.Kind {
		case core.KindBlock:
			g.renderBlock(dst, e.Block)
		case core.KindDie:
			g.renderDie(dst, e.Die)
		case core.KindParticle:
			x, y := g.cell(core.ProjectF(e.Particle.Pos))
			if y >= hudHeight {
				dst.DrawTextColored(x, y, e.Particle.Text, platformcore.ColorBrightYellow)
			}
		}
	}
}

func (g *Game) renderBlock(dst *platformcore.Screen, b *core.Block) {
	style, ok := tileGlyphs[b.Type]
	if !ok {
		return // Void draws nothing
	}
	c := style.color
	if b.Timed() && b.Toggle.SteppedOn {
		c = platformcore.ColorDarkGray
	}

	x, y := g.cell(core.ProjectF(b.Pos.Float()))
	if y < hudHeight {
		return
	}
	dst.SetColored(x, y, style.glyph[0], c)
	dst.SetColored(x+1, y, style.glyph[1], c)
}

// renderDie draws the die one row above the tile it stands on, showing the
// pips of its top face.
func (g *Game) renderDie(dst *platformcore.Screen, d *core.Die) {
	above := d.Footprint().Add(core.V(0, 0, 1))
	x, y := g.cell(core.ProjectF(above.Float()))
	if y < hudHeight {
		return
	}

	top := d.Layout().Top
	c := faceColors[int(top)%core.FaceCount]
	dst.SetColored(x, y, '■', c)
	dst.SetColored(x+1, y, rune('1'+top), c)
}

// renderTexts draws level captions. Screen captions use cell coordinates;
// level captions use projected offsets and scroll with the camera.
func (g *Game) renderTexts(dst *platformcore.Screen) {
	for _, t := range g.texts {
		if t.Screen {
			dst.DrawTextColored(int(t.Pos[0]), int(t.Pos[1])+hudHeight, t.Text(), platformcore.ColorWhite)
			continue
		}
		x, y := g.cell(core.FVec2{X: t.Pos[0], Y: t.Pos[1]})
		if y >= hudHeight {
			dst.DrawTextColored(x, y, t.Text(), platformcore.ColorWhite)
		}
	}
}

// renderHUD draws the level info and the visible faces.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := fmt.Sprintf("LEVEL %d/%d  %s", g.level+1, g.LevelCount(), g.levelName)
	dst.DrawTextColored(1, 0, title, platformcore.ColorBrightWhite)

	d := g.world.Die()
	if d == nil {
		return
	}

	moves := "MOVES " + strconv.Itoa(d.Moves())
	dst.DrawTextColored(g.screenW-len(moves)-1, 0, moves, platformcore.ColorGray)

	l := d.Layout()
	x := 1
	for _, f := range []struct {
		label string
		face  core.Face
	}{
		{"TOP", l.Top},
		{"FRONT", l.Front},
		{"RIGHT", l.Right},
	} {
		text := fmt.Sprintf("%s %d", f.label, int(f.face)+1)
		dst.DrawTextColored(x, 1, text, faceColors[int(f.face)%core.FaceCount])
		x += len(text) + 2
	}
}

// renderOverlays draws pause, clear, win and failure banners.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	switch {
	case g.err != nil:
		g.renderBanner(dst, "LEVEL LOAD FAILED", "Press Q to quit", platformcore.ColorBrightRed)
	case g.won:
		g.renderBanner(dst, "ALL LEVELS CLEARED", "Press Q to quit", platformcore.ColorBrightGreen)
	case g.cleared:
		g.renderBanner(dst, "LEVEL CLEAR", "", platformcore.ColorBrightGreen)
	case g.paused:
		g.renderBanner(dst, "PAUSED", "Press P to resume", platformcore.ColorBrightYellow)
	}
}

// renderBanner draws a boxed message over the middle of the world view.
func (g *Game) renderBanner(dst *platformcore.Screen, title, hint string, c platformcore.Color) {
	w := platformcore.Max(len(title), len(hint)) + 4
	h := 3
	if hint != "" {
		h = 4
	}
	y := g.screenH/2 - 1
	box := platformcore.NewRect((g.screenW-w)/2, y, w, h)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(y+1, title, c)
	if hint != "" {
		dst.DrawTextCentered(y+2, hint, platformcore.ColorGray)
	}
}
