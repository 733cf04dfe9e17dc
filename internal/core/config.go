package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (or logical pixels for the window host)
	ScreenH  int // Screen height in characters (or logical pixels for the window host)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level    int  // Current level index (0-based)
	Moves    int  // Successful moves on the current level
	GameOver bool // Whether the game has ended
	Won      bool // Whether every level has been cleared
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the feedback cues of this tick.
type StepResult struct {
	State GameState
	Cues  []string
}
