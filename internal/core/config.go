package core

// RuntimeConfig is handed to a game on Reset.
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

// GameState is the platform-visible summary of a running game.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // Terminal success state (mission completed)
	Paused   bool
}

// Over reports whether the session reached any terminal state.
func (s GameState) Over() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
