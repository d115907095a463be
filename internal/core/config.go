package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Lang     string // Message catalog language ("en", "fr")
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Lang:     "en",
	}
}

// GameState is the platform's view of a running puzzle.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Discs      int  // Disc count of the current game
	Moves      int  // Accepted moves so far
	MinMoves   int  // Optimal move count for Discs
	Won        bool // Whether the puzzle is solved
	Optimal    bool // Won in exactly MinMoves
	AutoSolved bool // The solution was replayed by the solver
	Paused     bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
