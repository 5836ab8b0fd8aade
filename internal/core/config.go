package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Outer-loop frames per second (input polling rate)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is returned by Game.State() to communicate status to the
// platform. GameOver and Won are mutually exclusive terminal states:
// GameOver means the player died or the formation reached the bottom,
// Won means the formation was cleared.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool
	Paused   bool
}

// Terminal reports whether the game has reached either terminal state.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
