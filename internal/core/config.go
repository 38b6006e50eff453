package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the HUD-level summary of a game, returned after every tick.
type GameState struct {
	Mode     string // Current mode name
	Score    int
	Lives    int
	Level    int
	GameOver bool // Session ended (game over, initials or high scores after a run)
	Paused   bool
	Typing   bool // Letters are text input, not commands
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
