package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	MaxTile   int  // Largest tile on the board
	BoardSize int  // Board dimension N
	GameOver  bool // The game has ended (won or lost)
	Won       bool // The game ended in a win
}

// StepResult is returned by Game.Step() after each input event.
type StepResult struct {
	State   GameState
	Changed bool   // The board changed
	Status  string // Short message for the player, empty if none
	Err     error  // Engine error surfaced by this step, if any
}
