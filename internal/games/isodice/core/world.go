package core

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
)

// ElementKind discriminates the variants of Element.
type ElementKind uint8

const (
	KindBlock ElementKind = iota
	KindDie
	KindParticle
)

// String returns the kind name.
func (k ElementKind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindDie:
		return "die"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Element is one entry of the world's draw order. Exactly the field matching
// Kind is set.
type Element struct {
	Kind     ElementKind
	Block    *Block
	Die      *Die
	Particle *Particle
}

// Position returns the element's world position.
func (e Element) Position() FVec3 {
	switch e.Kind {
	case KindBlock:
		return e.Block.Pos.Float()
	case KindDie:
		return e.Die.Position().Float()
	case KindParticle:
		return e.Particle.Pos
	default:
		panic(fmt.Sprintf("world: element of unknown kind %d", e.Kind))
	}
}

// Options tunes a world.
type Options struct {
	ToggleTicks   int         // Timed tile threshold
	ParticleTicks int         // Lifetime of roll-distance labels
	Template      *image.RGBA // Face texture template; DefaultTemplate() when nil
}

func (o Options) withDefaults() Options {
	if o.ToggleTicks <= 0 {
		o.ToggleTicks = DefaultToggleTicks
	}
	if o.ParticleTicks <= 0 {
		o.ParticleTicks = DefaultParticleTicks
	}
	if o.Template == nil {
		o.Template = DefaultTemplate()
	}
	return o
}

// World holds every placed element of the loaded level.
// A load replaces all contents; pointers into a previous level are invalid afterwards.
type World struct {
	opts Options

	width    int
	height   int
	blocks   []*Block
	index    map[Vec3]*Block
	die      *Die
	elements []Element // Draw order, insertion order until the first sort
}

// NewWorld creates an empty world.
func NewWorld(opts Options) *World {
	return &World{
		opts:  opts.withDefaults(),
		index: make(map[Vec3]*Block),
	}
}

// Load decodes a PNG level and rebuilds the world from it.
func (w *World) Load(r io.Reader, layout Layout) error {
	img, err := png.Decode(r)
	if err != nil {
		return fmt.Errorf("%w: decoding image: %w", ErrLevelLoad, err)
	}
	return w.LoadImage(img, layout)
}

// LoadImage rebuilds the world from a decoded level image. The die spawns
// above the start tile with the given layout as its configured layout.
// On error the previous contents are kept.
func (w *World) LoadImage(img image.Image, layout Layout) error {
	r, err := DecodeRaster(img)
	if err != nil {
		return err
	}
	w.Build(r, layout)
	return nil
}

// Build replaces the world contents with a decoded raster. It panics unless
// the raster holds exactly one start tile, which DecodeRaster guarantees.
func (w *World) Build(r Raster, layout Layout) {
	w.width = r.Width
	w.height = r.Height
	w.blocks = make([]*Block, 0, len(r.Tiles))
	w.index = make(map[Vec3]*Block, len(r.Tiles))
	w.elements = make([]Element, 0, len(r.Tiles)+1)
	w.die = nil

	for _, t := range r.Tiles {
		b := NewBlock(t.Pos, t.Type, w.opts.ToggleTicks)
		w.blocks = append(w.blocks, b)
		w.index[b.Pos] = b
		w.elements = append(w.elements, Element{Kind: KindBlock, Block: b})

		if t.Type == TileStart {
			if w.die != nil {
				panic("world: raster has more than one start tile")
			}
			w.die = newDie(r.DieSpawn(), w.opts.Template)
			w.elements = append(w.elements, Element{Kind: KindDie, Die: w.die})
		}
	}

	if w.die == nil {
		panic("world: raster has no start tile")
	}
	w.die.Configure(layout)
}

// Die returns the level's die, or nil before the first load.
func (w *World) Die() *Die {
	return w.die
}

// Size returns the level raster dimensions.
func (w *World) Size() (int, int) {
	return w.width, w.height
}

// Blocks returns the placed blocks in load order.
func (w *World) Blocks() []*Block {
	return w.blocks
}

// BlockAt returns the block at pos, or nil if the cell is empty.
func (w *World) BlockAt(pos Vec3) *Block {
	return w.index[pos]
}

// Elements returns the world in painter's order as of the last Update.
func (w *World) Elements() []Element {
	return w.elements
}

// Particles returns the live particles.
func (w *World) Particles() []*Particle {
	var out []*Particle
	for _, e := range w.elements {
		if e.Kind == KindParticle {
			out = append(out, e.Particle)
		}
	}
	return out
}

// Spawn adds a particle to the world.
func (w *World) Spawn(p *Particle) {
	w.elements = append(w.elements, Element{Kind: KindParticle, Particle: p})
}

// ParticleTicks returns the configured label lifetime.
func (w *World) ParticleTicks() int {
	return w.opts.ParticleTicks
}

// Update advances the world by one tick: painter's sort, timed tiles, then particles.
func (w *World) Update(sink Sink) {
	w.Sort()

	for _, b := range w.blocks {
		if b.tick() {
			sink.Emit(CueBlip)
		}
	}

	alive := w.elements[:0]
	for _, e := range w.elements {
		if e.Kind == KindParticle && !e.Particle.age() {
			continue
		}
		alive = append(alive, e)
	}
	// Drop references held by the truncated tail.
	for i := len(alive); i < len(w.elements); i++ {
		w.elements[i] = Element{}
	}
	w.elements = alive
}

// Sort orders elements back to front by DepthKey. Ties keep their current order.
func (w *World) Sort() {
	sort.SliceStable(w.elements, func(i, j int) bool {
		return DepthKey(w.elements[i].Position()) < DepthKey(w.elements[j].Position())
	})
}

// InView reports whether the element should be drawn for this camera.
// Only the draw pass uses it; simulation never filters by view.
func (w *World) InView(cam *Camera, e Element) bool {
	return cam.InViewF(e.Position())
}
