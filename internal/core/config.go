package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Fixed delay between simulation ticks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: time.Second / 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick        uint64 // Simulation ticks so far
	Moves       int    // Commands that changed the grid
	Pushes      int    // Stones and boxes pushed
	LocksOpened int    // Locks removed by keys
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
