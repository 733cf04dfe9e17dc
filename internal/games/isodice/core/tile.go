package core

// TileType is the type ID of a placed block.
type TileType uint8

const (
	TileFloor TileType = iota // Walkable type A
	TileBlock                 // Blocking type B; stops any roll crossing it
	TileGoal                  // Reaching it clears the level
	TileStart                 // Walkable; the die spawns above it
	TileTimed                 // Timed tile, active (walkable) state
	TileVoid                  // Nothing to stand on
)

// String returns the tile type name.
func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileBlock:
		return "block"
	case TileGoal:
		return "goal"
	case TileStart:
		return "start"
	case TileTimed:
		return "timed"
	case TileVoid:
		return "void"
	default:
		return "unknown"
	}
}

// DefaultToggleTicks is the timed tile threshold used when none is configured.
const DefaultToggleTicks = 60

// Toggle is the timer state of a timed tile.
// While active and stepped on, Ticks counts down to zero; while void it
// counts back up to Threshold.
type Toggle struct {
	Threshold int
	Ticks     int
	SteppedOn bool
}

// Block is a placed tile.
type Block struct {
	Pos    Vec3
	Type   TileType
	Toggle *Toggle // Non-nil for timed tiles only
}

// NewBlock creates a block. Timed tiles get a toggle primed at threshold.
func NewBlock(pos Vec3, t TileType, threshold int) *Block {
	b := &Block{Pos: pos, Type: t}
	if t == TileTimed {
		if threshold <= 0 {
			threshold = DefaultToggleTicks
		}
		b.Toggle = &Toggle{Threshold: threshold, Ticks: threshold}
	}
	return b
}

// Timed reports whether the block toggles between active and void.
func (b *Block) Timed() bool {
	return b.Toggle != nil
}

// Void reports whether nothing can stand on the block.
func (b *Block) Void() bool {
	return b.Type == TileVoid
}

// Step marks an active timed tile as occupied, starting its countdown.
// It reports whether the tile was marked.
func (b *Block) Step() bool {
	if !b.Timed() || b.Type != TileTimed {
		return false
	}
	b.Toggle.SteppedOn = true
	return true
}

// tick advances a timed tile by one simulation tick and reports whether it flipped.
func (b *Block) tick() bool {
	t := b.Toggle
	if t == nil {
		return false
	}

	switch b.Type {
	case TileTimed:
		if !t.SteppedOn {
			return false
		}
		t.Ticks--
		if t.Ticks <= 0 {
			t.Ticks = 0
			t.SteppedOn = false
			b.Type = TileVoid
			return true
		}
	case TileVoid:
		t.Ticks++
		if t.Ticks >= t.Threshold {
			t.Ticks = t.Threshold
			b.Type = TileTimed
			return true
		}
	}
	return false
}
