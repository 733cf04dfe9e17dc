// Package gui provides the Ebiten window host for isodice. It draws the world
// with recolored cube sprites in painter's order, culled by the camera.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/isodice/internal/config"
	platformcore "github.com/vovakirdan/isodice/internal/core"
	"github.com/vovakirdan/isodice/internal/games/isodice"
	"github.com/vovakirdan/isodice/internal/games/isodice/core"
)

const (
	glyphW          = 6  // Debug font cell width
	glyphH          = 16 // Debug font line height
	statusHoldTicks = 45
)

var (
	background  = color.RGBA{R: 24, G: 22, B: 34, A: 255}
	bannerShade = color.RGBA{A: 160}
	flashColor  = color.RGBA{R: 224, G: 82, B: 99, A: 90}
)

// Host adapts an isodice session to ebiten.Game.
type Host struct {
	game    *isodice.Game
	window  config.WindowConfig
	sprites *Sprites
	frame   platformcore.InputFrame
	log     *log.Logger

	status      string
	statusTicks int
	flashTicks  int // Red flash after a rejected roll
}

// NewHost creates a window host. The session must already be reset.
func NewHost(game *isodice.Game, window config.WindowConfig, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.SetViewport(float64(window.Width), float64(window.Height))
	return &Host{
		game:    game,
		window:  window,
		sprites: NewSprites(),
		frame:   platformcore.NewInputFrame(),
		log:     logger,
	}
}

// Update advances the session by one tick.
func (h *Host) Update() error {
	readInput(&h.frame)
	if h.frame.Has(platformcore.ActionQuit) {
		return ebiten.Termination
	}

	res := h.game.Step(h.frame)
	h.noteCues(res.Cues)
	return nil
}

func (h *Host) noteCues(cues []string) {
	if h.flashTicks > 0 {
		h.flashTicks--
	}
	if h.statusTicks > 0 {
		h.statusTicks--
	}

	for _, c := range cues {
		switch c {
		case string(core.CueInvalid):
			h.flashTicks = 6
			h.setStatus("CAN'T ROLL THERE")
		case string(core.CueWin):
			h.setStatus("LEVEL CLEAR!")
		case string(core.CueReset):
			h.setStatus("LEVEL RESET")
		}
	}
}

func (h *Host) setStatus(s string) {
	h.status = s
	h.statusTicks = statusHoldTicks
	h.log.Debug("status", "text", s)
}

// Draw renders the world back to front, then captions and the HUD.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	world := h.game.World()
	cam := h.game.Camera()

	for _, e := range world.Elements() {
		if !world.InView(cam, e) {
			continue
		}

		switch e.Kind {
		case core.KindBlock:
			if img := h.sprites.Tile(e.Block); img != nil {
				h.drawSprite(screen, img, core.ProjectF(e.Block.Pos.Float()))
			}
		case core.KindDie:
			h.drawSprite(screen, h.sprites.Die(e.Die), core.ProjectF(e.Die.Position().Float()))
		case core.KindParticle:
			p := core.ProjectF(e.Particle.Pos)
			x, y := h.toScreen(p)
			ebitenutil.DebugPrintAt(screen, e.Particle.Text, x+core.XOffset-glyphW/2, y)
		}
	}

	h.drawTexts(screen)
	h.drawHUD(screen)
	h.drawOverlay(screen)
}

// toScreen converts a projected position to window pixels.
func (h *Host) toScreen(p core.FVec2) (int, int) {
	cam := h.game.Camera()
	return int(math.Floor(p.X - cam.X)), int(math.Floor(p.Y - cam.Y))
}

func (h *Host) drawSprite(screen, img *ebiten.Image, p core.FVec2) {
	cam := h.game.Camera()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Floor(p.X-cam.X), math.Floor(p.Y-cam.Y))
	screen.DrawImage(img, op)
}

// drawTexts draws level captions. Screen captions are pinned to the window.
func (h *Host) drawTexts(screen *ebiten.Image) {
	for _, t := range h.game.Texts() {
		if t.Screen {
			ebitenutil.DebugPrintAt(screen, t.Text(), int(t.Pos[0]), int(t.Pos[1]))
			continue
		}
		x, y := h.toScreen(core.FVec2{X: t.Pos[0], Y: t.Pos[1]})
		ebitenutil.DebugPrintAt(screen, t.Text(), x, y)
	}
}

func (h *Host) drawHUD(screen *ebiten.Image) {
	index, name := h.game.Level()
	state := h.game.State()
	hud := fmt.Sprintf("%d/%d %s  MOVES %d", index+1, h.game.LevelCount(), name, state.Moves)
	ebitenutil.DebugPrintAt(screen, hud, 2, h.window.Height-glyphH)

	if h.statusTicks > 0 {
		x := h.window.Width - len(h.status)*glyphW - 2
		ebitenutil.DebugPrintAt(screen, h.status, x, h.window.Height-glyphH)
	}
}

func (h *Host) drawOverlay(screen *ebiten.Image) {
	if h.flashTicks > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(h.window.Width), float32(h.window.Height), flashColor, false)
	}

	var banner string
	snap := h.game.Snapshot()
	switch snap.State {
	case isodice.StateFailed:
		banner = "LEVEL LOAD FAILED"
	case isodice.StateWin:
		banner = "ALL LEVELS CLEARED"
	case isodice.StateLevelCleared:
		banner = "LEVEL CLEAR"
	case isodice.StatePaused:
		banner = "PAUSED"
	default:
		return
	}

	y := h.window.Height/2 - glyphH/2
	vector.DrawFilledRect(screen, 0, float32(y-2), float32(h.window.Width), glyphH+4, bannerShade, false)
	ebitenutil.DebugPrintAt(screen, banner, (h.window.Width-len(banner)*glyphW)/2, y)
}

// Layout keeps a fixed logical resolution; Ebiten scales it to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.window.Width, h.window.Height
}

// Run opens the window and plays the session until it is closed.
func Run(game *isodice.Game, window config.WindowConfig, tickRate int, logger *log.Logger) error {
	err := game.Reset(platformcore.RuntimeConfig{
		ScreenW:  window.Width,
		ScreenH:  window.Height,
		TickRate: tickRate,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(window.Width*window.Scale, window.Height*window.Scale)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetTPS(tickRate)

	// RunGame returns nil when Update ends it with ebiten.Termination
	return ebiten.RunGame(NewHost(game, window, logger))
}
