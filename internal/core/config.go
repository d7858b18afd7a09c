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

// TickMillis returns the simulated milliseconds elapsed after the given number of ticks.
func (c RuntimeConfig) TickMillis(ticks uint64) int64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return int64(ticks) * 1000 / int64(rate)
}

// RunStats carries per-run statistics beyond the score.
type RunStats struct {
	TricksLanded int // Tricks that earned points
	GrindTicks   int // Ticks spent grinding
	Ticks        uint64
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	Started  bool // Whether the first key has been pressed
	Stats    RunStats
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
