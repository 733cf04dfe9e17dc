package isodice

import (
	"github.com/vovakirdan/isodice/internal/games/isodice/core"
	"github.com/vovakirdan/isodice/internal/games/isodice/levels/formats"
)

// Typer reveals a level caption one character at a time.
type Typer struct {
	full   []rune
	shown  int
	delay  int
	ticks  int
	Pos    [2]float64
	Screen bool // Pinned to the screen rather than the level
}

// NewTyper creates a typer for a level text. A positive override replaces
// the delay of typed texts; untyped texts show in full immediately.
func NewTyper(t formats.Text, override int) *Typer {
	ty := &Typer{
		full:   []rune(t.Text),
		delay:  t.Delay,
		Pos:    t.Pos,
		Screen: t.FollowCamera,
	}
	if !t.Typed() {
		ty.shown = len(ty.full)
		return ty
	}
	if override > 0 {
		ty.delay = override
	}
	return ty
}

// Update advances the typer by one tick. Revealing a non-space character
// emits CueType.
func (t *Typer) Update(sink core.Sink) {
	if t.Finished() {
		return
	}
	if t.ticks >= t.delay {
		r := t.full[t.shown]
		t.shown++
		t.ticks = 0
		if r != ' ' {
			sink.Emit(core.CueType)
		}
	}
	t.ticks++
}

// Text returns the revealed part of the caption.
func (t *Typer) Text() string {
	return string(t.full[:t.shown])
}

// Finished reports whether the whole caption is revealed.
func (t *Typer) Finished() bool {
	return t.shown >= len(t.full)
}
