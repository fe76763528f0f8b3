package core

// RuntimeConfig contains configuration passed to the engine at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is a summary of the engine state for the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, starts at 1
	Running  bool // Whether a game is in progress (running or paused)
	GameOver bool // Whether the last game has ended
	Paused   bool // Whether the game is paused
}
