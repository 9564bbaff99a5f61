package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int           // Terminal width in characters
	ScreenH   int           // Terminal height in characters
	TickDelay time.Duration // Time between two simulation steps
	Seed      int64         // RNG seed for level generation
	Level     int           // Selected difficulty level, 1-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickDelay: 100 * time.Millisecond,
		Seed:      0, // 0 means use current time in platform layer
		Level:     1,
	}
}

// GameState is the status of a game as seen by the platform.
type GameState struct {
	Score    int    // Bonuses collected so far
	Total    int    // Bonuses in the level
	GameOver bool   // The run reached a terminal state
	Quit     bool   // The player asked to leave
	Outcome  string // Human-readable state name
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
