package isodice

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	platformcore "github.com/vovakirdan/isodice/internal/core"
	"github.com/vovakirdan/isodice/internal/games/isodice/core"
	"github.com/vovakirdan/isodice/internal/games/isodice/levels"
	"github.com/vovakirdan/isodice/internal/games/isodice/levels/formats"
)

type fixture struct {
	row    string // Single-row level: s start, f floor, g goal, t timed, . empty
	layout string // Manifest die_layout
	texts  string // Optional manifest texts array
}

var fixtureColors = map[rune]color.NRGBA{
	'f': core.ColorFloor,
	'g': core.ColorGoal,
	's': core.ColorStart,
	't': core.ColorTimed,
	'b': core.ColorBlock,
}

// leapThenStep reaches the goal of "s.fg" with two right rolls.
const leapThenStep = "[0, 5, 1, 4, 2, 3]"

func newTestLoader(t *testing.T, levelsIn ...fixture) *levels.Loader {
	t.Helper()
	fsys := fstest.MapFS{}
	var entries []string

	for i, f := range levelsIn {
		img := image.NewNRGBA(image.Rect(0, 0, len(f.row), 1))
		for x, ch := range f.row {
			if c, ok := fixtureColors[ch]; ok {
				img.SetNRGBA(x, 0, c)
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encoding fixture: %v", err)
		}
		name := fmt.Sprintf("%d.png", i)
		fsys[name] = &fstest.MapFile{Data: buf.Bytes()}

		entry := fmt.Sprintf(`{"name": "L%d", "image": %q, "die_layout": %s`, i, name, f.layout)
		if f.texts != "" {
			entry += `, "texts": ` + f.texts
		}
		entries = append(entries, entry+"}")
	}
	fsys[formats.ManifestName] = &fstest.MapFile{Data: []byte("[" + strings.Join(entries, ",") + "]")}

	loader, err := levels.NewLoader(fsys)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	return loader
}

func newTestGame(t *testing.T, opts Options, levelsIn ...fixture) *Game {
	t.Helper()
	opts.Loader = newTestLoader(t, levelsIn...)
	g := New(opts)
	if err := g.Reset(platformcore.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

func input(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countCues(cues []string, c core.Cue) int {
	n := 0
	for _, got := range cues {
		if got == string(c) {
			n++
		}
	}
	return n
}

func TestTwoRightMovesClearLevel(t *testing.T) {
	g := newTestGame(t, Options{ClearDelayTicks: 5},
		fixture{row: "s.fg", layout: leapThenStep},
		fixture{row: "sfg", layout: leapThenStep},
	)
	home := g.World().Die().Home()
	start := g.World().Die().Configured()

	var cues []string
	cues = append(cues, g.Step(input(platformcore.ActionRight)).Cues...)
	res := g.Step(input(platformcore.ActionRight))
	cues = append(cues, res.Cues...)

	if got := countCues(cues, core.CueStep); got != 2 {
		t.Errorf("step cues = %d, want 2", got)
	}
	if got := countCues(cues, core.CueWin); got != 1 {
		t.Errorf("win cues = %d, want 1", got)
	}
	if got := countCues(cues, core.CueInvalid); got != 0 {
		t.Errorf("invalid cues = %d, want 0", got)
	}

	d := g.World().Die()
	if want := home.Add(core.V(3, 0, 0)); d.Position() != want {
		t.Errorf("die at %v, want %v", d.Position(), want)
	}
	if want := start.RollRight().RollRight(); d.Layout() != want {
		t.Errorf("layout = %v, want %v", d.Layout(), want)
	}
	if !res.State.Paused {
		t.Error("expected the session to hold during the clear delay")
	}
	if g.Snapshot().State != StateLevelCleared {
		t.Errorf("state = %s, want %s", g.Snapshot().State, StateLevelCleared)
	}

	// Input is ignored while the level is cleared.
	g.Step(input(platformcore.ActionLeft))
	if d.Position() != home.Add(core.V(3, 0, 0)) {
		t.Error("die moved during the clear delay")
	}

	for i := 0; i < 4; i++ {
		g.Step(input())
	}
	if g.State().Level != 1 {
		t.Fatalf("level = %d after the clear delay, want 1", g.State().Level)
	}
	if g.State().Moves != 0 {
		t.Errorf("moves = %d on a fresh level, want 0", g.State().Moves)
	}
}

func TestLastLevelWinsCampaign(t *testing.T) {
	g := newTestGame(t, Options{ClearDelayTicks: 2},
		fixture{row: "s.fg", layout: leapThenStep},
	)

	g.Step(input(platformcore.ActionRight))
	g.Step(input(platformcore.ActionRight))
	if g.State().Won {
		t.Fatal("won before the clear delay")
	}
	g.Step(input())

	st := g.State()
	if !st.Won || !st.GameOver {
		t.Errorf("state = %+v, want won and game over", st)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("snapshot state = %s, want %s", g.Snapshot().State, StateWin)
	}

	// Further input does nothing.
	res := g.Step(input(platformcore.ActionRestart))
	if len(res.Cues) != 0 {
		t.Errorf("cues after win = %v, want none", res.Cues)
	}
}

func TestRestartRestoresLevel(t *testing.T) {
	g := newTestGame(t, Options{},
		fixture{row: "s.fg", layout: leapThenStep},
	)
	d := g.World().Die()
	home, start := d.Home(), d.Configured()

	g.Step(input(platformcore.ActionRight))
	if g.World().Die().Position() == home {
		t.Fatal("die did not move")
	}

	res := g.Step(input(platformcore.ActionRestart))

	d = g.World().Die()
	if d.Position() != home {
		t.Errorf("die at %v, want %v", d.Position(), home)
	}
	if d.Layout() != start {
		t.Errorf("layout = %v, want %v", d.Layout(), start)
	}
	if countCues(res.Cues, core.CueReset) != 1 {
		t.Errorf("cues = %v, want one reset", res.Cues)
	}
	if g.Snapshot().Resets != 1 {
		t.Errorf("resets = %d, want 1", g.Snapshot().Resets)
	}
	if len(g.World().Particles()) != 0 {
		t.Error("particles survived the reset")
	}
}

func TestRejectedMoveEmitsOneInvalid(t *testing.T) {
	g := newTestGame(t, Options{},
		fixture{row: "sbfg", layout: leapThenStep},
	)
	before := g.World().Die().Layout()

	res := g.Step(input(platformcore.ActionRight))

	if countCues(res.Cues, core.CueInvalid) != 1 || len(res.Cues) != 1 {
		t.Errorf("cues = %v, want [invalid]", res.Cues)
	}
	if g.World().Die().Layout() != before {
		t.Error("layout changed on a rejected move")
	}
}

func TestFallingResetsLevel(t *testing.T) {
	g := newTestGame(t, Options{ToggleTicks: 10},
		fixture{row: "stg", layout: "[5, 0, 0, 0, 0, 0]"},
	)
	home := g.World().Die().Home()

	var cues []string
	cues = append(cues, g.Step(input(platformcore.ActionRight)).Cues...)
	for i := 0; i < 8; i++ {
		cues = append(cues, g.Step(input()).Cues...)
	}
	if g.Snapshot().Falls != 0 {
		t.Fatal("die fell before the tile vanished")
	}

	// Tenth world update: the tile flips and the die falls in the same tick.
	cues = append(cues, g.Step(input()).Cues...)

	snap := g.Snapshot()
	if snap.Falls != 1 {
		t.Fatalf("falls = %d, want 1", snap.Falls)
	}
	if snap.Die != home {
		t.Errorf("die at %v after falling, want %v", snap.Die, home)
	}
	if snap.Voids != 0 {
		t.Errorf("voids = %d after reload, want 0", snap.Voids)
	}
	if countCues(cues, core.CueBlip) != 1 {
		t.Errorf("blip cues = %d, want 1", countCues(cues, core.CueBlip))
	}
	if countCues(cues, core.CueInvalid) != 1 {
		t.Errorf("invalid cues = %d, want 1", countCues(cues, core.CueInvalid))
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, Options{},
		fixture{row: "s.fg", layout: leapThenStep},
	)
	home := g.World().Die().Home()

	g.Step(input(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.Step(input(platformcore.ActionRight))
	if g.World().Die().Position() != home {
		t.Error("die moved while paused")
	}

	g.Step(input(platformcore.ActionPause))
	g.Step(input(platformcore.ActionRight))
	if g.World().Die().Position() == home {
		t.Error("die did not move after unpausing")
	}
}

func TestCameraFollowsDie(t *testing.T) {
	g := newTestGame(t, Options{},
		fixture{row: "s.f...g", layout: leapThenStep},
	)
	cam := g.Camera()
	before := cam.Center()

	g.Step(input(platformcore.ActionRight))

	target := core.Target(g.World().Die())
	after := cam.Center()
	if after.X <= before.X || after.X >= target.X {
		t.Errorf("center x moved from %v to %v, want a partial step toward %v", before.X, after.X, target.X)
	}
}

func TestResetStartLevel(t *testing.T) {
	loader := newTestLoader(t,
		fixture{row: "sg", layout: leapThenStep},
		fixture{row: "sfg", layout: leapThenStep},
	)

	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"first", 0, 0},
		{"second", 1, 1},
		{"out of range", 7, 0},
		{"negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(Options{Loader: loader, StartLevel: tt.start})
			if err := g.Reset(platformcore.DefaultConfig()); err != nil {
				t.Fatalf("Reset failed: %v", err)
			}
			if g.State().Level != tt.want {
				t.Errorf("level = %d, want %d", g.State().Level, tt.want)
			}
		})
	}
}

func TestResetPropagatesLoadError(t *testing.T) {
	loader, err := levels.NewLoader(fstest.MapFS{
		formats.ManifestName: {Data: []byte(`[{"name": "x", "image": "gone.png", "die_layout": [0,1,2,3,4,5]}]`)},
	})
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}

	g := New(Options{Loader: loader})
	if err := g.Reset(platformcore.DefaultConfig()); !errors.Is(err, core.ErrLevelLoad) {
		t.Errorf("Reset error = %v, want ErrLevelLoad", err)
	}
}

func TestDefaultCampaignLoads(t *testing.T) {
	g := New(Options{})
	if err := g.Reset(platformcore.DefaultConfig()); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if g.LevelCount() == 0 {
		t.Fatal("expected built-in levels")
	}
	if g.World().Die() == nil {
		t.Fatal("expected a die after reset")
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	g := New(Options{Loader: newTestLoader(t, fixture{row: "sg", layout: leapThenStep})})
	if err := g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 5}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	home := g.World().Die().Home()
	g.Step(input(platformcore.ActionRight))

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}
	if g.World().Die().Position() != home {
		t.Error("die moved on a too small screen")
	}

	scr := platformcore.NewScreen(20, 5)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected the too small message")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, Options{},
		fixture{
			row:    "s.fg",
			layout: leapThenStep,
			texts:  `[{"text": "HELLO", "pos": [1, 3], "follow_camera": true}]`,
		},
	)
	scr := platformcore.NewScreen(60, 20)

	g.Render(scr)

	if !strings.Contains(scr.Row(0), "LEVEL 1/1") {
		t.Errorf("HUD row = %q, want level info", scr.Row(0))
	}
	if !strings.Contains(scr.Row(1), "TOP 1") {
		t.Errorf("faces row = %q, want top face", scr.Row(1))
	}
	if !strings.Contains(scr.Row(5), "HELLO") {
		t.Errorf("caption row = %q, want caption", scr.Row(5))
	}
	out := scr.String()
	for _, want := range []string{"■1", "░░", "▓▓"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.Step(input(platformcore.ActionPause))
	g.Render(scr)
	out = scr.String()
	if !strings.Contains(out, "PAUSED") || !strings.Contains(out, "Press P to resume") {
		t.Errorf("expected pause banner:\n%s", out)
	}
	if !strings.ContainsRune(out, '┌') || !strings.ContainsRune(out, '┘') {
		t.Errorf("expected a boxed banner:\n%s", out)
	}
}

func TestTyper(t *testing.T) {
	log := &core.CueLog{}
	ty := NewTyper(formats.Text{Text: "AB C", Delay: 3}, 0)

	if ty.Text() != "" {
		t.Fatalf("typed text starts as %q, want empty", ty.Text())
	}

	// First character on update delay+1, then one every delay updates.
	revealed := map[int]string{4: "A", 7: "AB", 10: "AB ", 13: "AB C"}
	for tick := 1; tick <= 15; tick++ {
		ty.Update(log)
		if want, ok := revealed[tick]; ok && ty.Text() != want {
			t.Errorf("tick %d: text = %q, want %q", tick, ty.Text(), want)
		}
	}

	if !ty.Finished() {
		t.Error("typer not finished")
	}
	if log.Count(core.CueType) != 3 {
		t.Errorf("type cues = %d, want 3 (spaces are silent)", log.Count(core.CueType))
	}
}

func TestTyperStaticAndOverride(t *testing.T) {
	static := NewTyper(formats.Text{Text: "HI"}, 5)
	if static.Text() != "HI" || !static.Finished() {
		t.Errorf("static text = %q, want full text", static.Text())
	}

	fast := NewTyper(formats.Text{Text: "HI", Delay: 10}, 1)
	fast.Update(core.Discard)
	fast.Update(core.Discard)
	if fast.Text() != "H" {
		t.Errorf("override text after 2 ticks = %q, want %q", fast.Text(), "H")
	}
}
