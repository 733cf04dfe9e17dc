package isodice

import "github.com/vovakirdan/isodice/internal/games/isodice/core"

// GameStateType represents the current session state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateWin          GameStateType = "win"
	StateFailed       GameStateType = "failed"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int // 1-indexed for display
	LevelName string
	Die       core.Vec3
	Layout    core.Layout
	Moves     int
	Falls     int
	Resets    int
	Particles int
	Voids     int // Timed tiles currently void
	State     GameStateType
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.err != nil:
		state = StateFailed
	case g.won:
		state = StateWin
	case g.cleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:      g.tick,
		Level:     g.level + 1,
		LevelName: g.levelName,
		Falls:     g.falls,
		Resets:    g.resets,
		Particles: len(g.world.Particles()),
		State:     state,
	}
	if d := g.world.Die(); d != nil {
		s.Die = d.Position()
		s.Layout = d.Layout()
		s.Moves = d.Moves()
	}
	for _, b := range g.world.Blocks() {
		if b.Timed() && b.Void() {
			s.Voids++
		}
	}
	return s
}
