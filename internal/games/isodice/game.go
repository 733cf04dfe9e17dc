// Package isodice provides the rolling-die puzzle session: level progression,
// resets, captions and terminal rendering around the core simulation.
package isodice

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/isodice/internal/core"
	"github.com/vovakirdan/isodice/internal/games/isodice/core"
	"github.com/vovakirdan/isodice/internal/games/isodice/levels"
)

// DefaultClearDelayTicks is the pause between reaching the goal and loading the next level.
const DefaultClearDelayTicks = 30

// Options configures a session.
type Options struct {
	Loader          *levels.Loader // Built-in campaign when nil
	StartLevel      int            // 0-indexed
	ToggleTicks     int
	ParticleTicks   int
	ClearDelayTicks int
	TypeDelayTicks  int // Overrides the delay of typed captions when positive
	Logger          *log.Logger
}

var _ platformcore.Game = (*Game)(nil)

// Game is one play session over a level campaign.
type Game struct {
	opts   Options
	log    *log.Logger
	loader *levels.Loader

	world  *core.World
	camera *core.Camera
	cues   core.CueLog
	texts  []*Typer

	level     int
	levelName string
	tick      uint64
	falls     int
	resets    int

	// Screen dimensions
	screenW int
	screenH int

	cleared    bool
	clearTicks int
	won        bool
	paused     bool
	tooSmall   bool
	err        error // Failure to load the next level
}

// New creates a session. The campaign is not loaded until Reset.
func New(opts Options) *Game {
	if opts.ClearDelayTicks <= 0 {
		opts.ClearDelayTicks = DefaultClearDelayTicks
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts:   opts,
		log:    logger,
		loader: opts.Loader,
		world: core.NewWorld(core.Options{
			ToggleTicks:   opts.ToggleTicks,
			ParticleTicks: opts.ParticleTicks,
		}),
		camera: core.NewCamera(0, 0),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "isodice"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Isodice"
}

// Reset starts the campaign over at the configured start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) error {
	if g.loader == nil {
		loader, err := levels.Default()
		if err != nil {
			return err
		}
		g.loader = loader
	}

	g.tick = 0
	g.falls = 0
	g.resets = 0
	g.won = false
	g.paused = false
	g.err = nil
	g.cues.Drain()

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	start := g.opts.StartLevel
	if start < 0 || start >= g.loader.Count() {
		start = 0
	}
	return g.Load(start)
}

// Resize adapts the session to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
	g.SetViewport(float64(w)*core.XOffset/cellsPerStep, float64(h-hudHeight)*core.YOffset)
}

// SetViewport sets the camera size in projected pixels.
func (g *Game) SetViewport(w, h float64) {
	g.camera.Resize(w, h)
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Load replaces the world with the level at index.
func (g *Game) Load(index int) error {
	lvl, err := g.loader.Load(index)
	if err != nil {
		g.log.Error("level load failed", "index", index, "error", err)
		return err
	}

	g.world.Build(lvl.Raster, lvl.Layout)
	g.level = index
	g.levelName = lvl.Name
	g.cleared = false
	g.clearTicks = 0

	g.texts = make([]*Typer, 0, len(lvl.Texts))
	for _, t := range lvl.Texts {
		g.texts = append(g.texts, NewTyper(t, g.opts.TypeDelayTicks))
	}

	g.camera.CenterOn(g.world.Die())
	g.log.Info("level loaded", "index", index, "name", lvl.Name,
		"size", fmt.Sprintf("%dx%d", lvl.Raster.Width, lvl.Raster.Height), "layout", lvl.Layout)
	return nil
}

// ResetLevel reloads the current level and emits CueReset.
func (g *Game) ResetLevel() error {
	if err := g.Load(g.level); err != nil {
		return err
	}
	g.resets++
	g.cues.Emit(core.CueReset)
	return nil
}

// Step advances the session by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall || g.err != nil {
		return g.result()
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.won {
		return g.result()
	}

	d := g.world.Die()
	if d == nil {
		panic("isodice: Step before a level was loaded")
	}

	if in.Has(platformcore.ActionRestart) {
		if err := g.ResetLevel(); err != nil {
			g.err = err
			return g.result()
		}
		d = g.world.Die()
	} else if !g.cleared {
		g.handleMove(d, in)
	}

	g.world.Update(&g.cues)

	if !g.cleared && d.Update(g.world, &g.cues) {
		g.falls++
		g.log.Debug("die fell", "level", g.level, "at", d.Footprint())
		if err := g.Load(g.level); err != nil {
			g.err = err
			return g.result()
		}
		d = g.world.Die()
	}

	g.camera.Follow(d)

	for _, t := range g.texts {
		t.Update(&g.cues)
	}

	if g.cleared {
		g.clearTicks++
		if g.clearTicks >= g.opts.ClearDelayTicks {
			g.advance()
		}
	}

	return g.result()
}

// handleMove applies at most one roll per tick.
func (g *Game) handleMove(d *core.Die, in platformcore.InputFrame) {
	var res core.MoveResult
	switch {
	case in.Has(platformcore.ActionRight):
		res = d.MoveRight(g.world, &g.cues)
	case in.Has(platformcore.ActionLeft):
		res = d.MoveLeft(g.world, &g.cues)
	case in.Has(platformcore.ActionFront):
		res = d.MoveFront(g.world, &g.cues)
	case in.Has(platformcore.ActionBack):
		res = d.MoveBack(g.world, &g.cues)
	default:
		return
	}

	if res.Goal {
		g.cleared = true
		g.clearTicks = 0
		g.cues.Emit(core.CueWin)
		g.log.Info("level cleared", "index", g.level, "moves", d.Moves())
	}
}

// advance loads the next level, or ends the campaign after the last one.
func (g *Game) advance() {
	g.cleared = false
	g.clearTicks = 0

	if g.level >= g.loader.Count()-1 {
		g.won = true
		g.log.Info("campaign complete", "levels", g.loader.Count(), "falls", g.falls, "resets", g.resets)
		return
	}

	if err := g.Load(g.level + 1); err != nil {
		g.err = err
	}
}

func (g *Game) result() platformcore.StepResult {
	drained := g.cues.Drain()
	cues := make([]string, len(drained))
	for i, c := range drained {
		cues[i] = string(c)
	}
	return platformcore.StepResult{State: g.State(), Cues: cues}
}

// DrainCues returns the cues emitted outside Step, such as by ResetLevel, and clears them.
func (g *Game) DrainCues() []core.Cue {
	return g.cues.Drain()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	moves := 0
	if d := g.world.Die(); d != nil {
		moves = d.Moves()
	}
	return platformcore.GameState{
		Level:    g.level,
		Moves:    moves,
		GameOver: g.won || g.err != nil,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.cleared,
	}
}

// Err returns the load failure that stopped the session, if any.
func (g *Game) Err() error {
	return g.err
}

// World returns the live world.
func (g *Game) World() *core.World {
	return g.world
}

// Camera returns the session camera.
func (g *Game) Camera() *core.Camera {
	return g.camera
}

// Texts returns the captions of the current level.
func (g *Game) Texts() []*Typer {
	return g.texts
}

// Level returns the current level index and name.
func (g *Game) Level() (int, string) {
	return g.level, g.levelName
}

// LevelCount returns the number of levels in the campaign.
func (g *Game) LevelCount() int {
	if g.loader == nil {
		return 0
	}
	return g.loader.Count()
}
