package core

// RuntimeConfig contains configuration passed to games at initialization.
// ScreenW/ScreenH describe the frontend surface (terminal cells or window pixels);
// gameplay always runs in the game's own logical units.
type RuntimeConfig struct {
	ScreenW  int // Surface width (cells in the terminal)
	ScreenH  int // Surface height
	TickRate int // Simulation ticks per second (default 60)

	ConfigPath string // Custom game config file, empty for the search path
	Difficulty string // Difficulty preset name, empty for normal
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the fixed frame duration in seconds for this tick rate.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (player side)
	Opponent int  // Opponent score, zero for single-sided games
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a gameplay signal raised during a Step. Games return events
// synchronously; frontends may log them but never feed them back.
type Event interface {
	Kind() string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
