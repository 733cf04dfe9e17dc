package core

import (
	"fmt"
	"image"
	"strconv"

	platformcore "github.com/vovakirdan/isodice/internal/core"
)

// FootprintOffset maps the die's position to the cell it stands on.
var FootprintOffset = Vec3{X: -1, Y: 0, Z: -1}

// Rejection tells why a roll did not happen.
type Rejection uint8

const (
	RejectNone    Rejection = iota
	RejectBlocked           // A blocking tile lies on the path
	RejectNoFloor           // The destination is empty or void
)

// String returns the rejection reason.
func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectBlocked:
		return "blocked"
	case RejectNoFloor:
		return "no floor"
	default:
		return "unknown"
	}
}

// MoveResult reports the outcome of a move attempt.
type MoveResult struct {
	Moved    bool
	Distance int       // Cells travelled (or attempted)
	Goal     bool      // The die landed on the goal tile
	Reason   Rejection // Why the move failed; RejectNone on success
}

// Die is the player entity: a grid position plus a face layout.
type Die struct {
	pos        Vec3
	layout     Layout
	home       Vec3   // Spawn position captured at load
	configured Layout // Level layout captured at load

	template *image.RGBA
	texture  *image.RGBA
	moves    int
}

func newDie(pos Vec3, template *image.RGBA) *Die {
	d := &Die{pos: pos, home: pos, template: template}
	d.refreshTexture()
	return d
}

// Position returns the die's grid position.
func (d *Die) Position() Vec3 {
	return d.pos
}

// Home returns the spawn position captured when the level was loaded.
func (d *Die) Home() Vec3 {
	return d.home
}

// Layout returns the current face layout.
func (d *Die) Layout() Layout {
	return d.layout
}

// Configured returns the layout the level started with.
func (d *Die) Configured() Layout {
	return d.configured
}

// Texture returns the face texture matching the current layout.
func (d *Die) Texture() *image.RGBA {
	return d.texture
}

// Moves returns the number of successful moves since the last load or reset.
func (d *Die) Moves() int {
	return d.moves
}

// Footprint returns the cell the die stands on.
func (d *Die) Footprint() Vec3 {
	return d.pos.Add(FootprintOffset)
}

// Configure sets the level layout: both the current layout and the one
// restored by Reset.
func (d *Die) Configure(l Layout) {
	d.configured = l
	d.SetLayout(l)
}

// SetLayout replaces the current layout and recomputes the texture.
func (d *Die) SetLayout(l Layout) {
	d.layout = l
	d.refreshTexture()
}

// Reset puts the die back at its spawn position with the configured layout.
func (d *Die) Reset() {
	d.pos = d.home
	d.moves = 0
	d.SetLayout(d.configured)
}

func (d *Die) refreshTexture() {
	d.texture = FaceTexture(d.layout, d.template)
}

// MoveRight rolls the die toward +X.
func (d *Die) MoveRight(w *World, sink Sink) MoveResult {
	return d.Roll(w, sink, DirRight)
}

// MoveLeft rolls the die toward -X.
func (d *Die) MoveLeft(w *World, sink Sink) MoveResult {
	return d.Roll(w, sink, DirLeft)
}

// MoveFront rolls the die toward +Y.
func (d *Die) MoveFront(w *World, sink Sink) MoveResult {
	return d.Roll(w, sink, DirFront)
}

// MoveBack rolls the die toward -Y.
func (d *Die) MoveBack(w *World, sink Sink) MoveResult {
	return d.Roll(w, sink, DirBack)
}

// Roll tips the die in dir. The new bottom face sets the distance; if the
// move is rejected the inverse roll restores the previous layout.
func (d *Die) Roll(w *World, sink Sink, dir Dir) MoveResult {
	before := d.layout
	d.layout = d.layout.Roll(dir)
	mustKeepPairs(before, d.layout)
	dist := d.layout.Distance()

	var res MoveResult
	switch dir {
	case DirRight:
		res = d.MoveX(w, sink, dist)
	case DirLeft:
		res = d.MoveX(w, sink, -dist)
	case DirFront:
		res = d.MoveY(w, sink, dist)
	case DirBack:
		res = d.MoveY(w, sink, -dist)
	}

	if !res.Moved {
		d.layout = d.layout.Roll(dir.Opposite())
		mustKeepPairs(before, d.layout)
	}
	return res
}

// mustKeepPairs panics when a roll changed which faces oppose each other.
func mustKeepPairs(before, after Layout) {
	if before.PairSet() != after.PairSet() {
		panic(fmt.Sprintf("die layout lost its opposite pairs: %v -> %v", before, after))
	}
}

// MoveX moves the die delta cells along X without rolling.
func (d *Die) MoveX(w *World, sink Sink, delta int) MoveResult {
	return d.move(w, sink, Vec3{X: platformcore.Sign(delta)}, platformcore.Abs(delta))
}

// MoveY moves the die delta cells along Y without rolling.
func (d *Die) MoveY(w *World, sink Sink, delta int) MoveResult {
	return d.move(w, sink, Vec3{Y: platformcore.Sign(delta)}, platformcore.Abs(delta))
}

// move validates the whole path before touching any state. Every cell from
// one step out up to the destination must be free of blocking tiles, and
// the destination must hold something other than void.
func (d *Die) move(w *World, sink Sink, unit Vec3, dist int) MoveResult {
	from := d.Footprint()

	for i := 1; i <= dist; i++ {
		if b := w.BlockAt(from.Add(scale(unit, i))); b != nil && b.Type == TileBlock {
			sink.Emit(CueInvalid)
			return MoveResult{Distance: dist, Reason: RejectBlocked}
		}
	}

	delta := scale(unit, dist)
	dest := w.BlockAt(from.Add(delta))
	if dest == nil || dest.Void() {
		sink.Emit(CueInvalid)
		return MoveResult{Distance: dist, Reason: RejectNoFloor}
	}

	res := MoveResult{Moved: true, Distance: dist}
	switch dest.Type {
	case TileTimed:
		dest.Step()
	case TileGoal:
		res.Goal = true
	}

	d.pos = d.pos.Add(delta)
	d.moves++
	d.refreshTexture()
	sink.Emit(CueStep)
	w.Spawn(NewParticle(d.pos.Float(), particleDrift, w.ParticleTicks(), strconv.Itoa(dist)))
	return res
}

// Update checks the cell under the die. It emits CueInvalid and reports true
// when the die stands on void (a timed tile gave way beneath it); the caller
// resets the level.
func (d *Die) Update(w *World, sink Sink) bool {
	b := w.BlockAt(d.Footprint())
	if b == nil || !b.Void() {
		return false
	}
	sink.Emit(CueInvalid)
	return true
}

func scale(v Vec3, n int) Vec3 {
	return Vec3{X: v.X * n, Y: v.Y * n, Z: v.Z * n}
}
