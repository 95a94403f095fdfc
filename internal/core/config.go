package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for board generation, 0 = time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform after every step.
type GameState struct {
	Steps    int  // Color-changing selections so far
	Captured int  // Captured cells
	Total    int  // Cells on the board
	Started  bool // Initial cell chosen
	Won      bool // Whole board captured
	Quit     bool // Player asked to leave
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	// Changed is true when the board or counters moved this step.
	Changed bool
}
