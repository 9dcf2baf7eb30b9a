package core

// RuntimeConfig contains configuration passed to games at initialization.
// The frontend acts as the field geometry provider: ScreenW and ScreenH are
// fixed for a session until the next Reset.
type RuntimeConfig struct {
	ScreenW   int // Field width in world units (cells or pixels)
	ScreenH   int // Field height in world units
	TickRate  int // Simulation ticks per second (default 60)
	HighScore int // Best score already recorded in this process
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether a finished game is waiting for a restart
	Paused   bool // Whether the game is paused
}

// Event describes something notable that happened during a tick.
// Frontends use events for sound and logging; the simulation never reads them.
type Event int

const (
	EventFired Event = iota + 1
	EventAlienDestroyed
	EventShipHit
	EventLevelUp
	EventGameOver
	EventGameStarted
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFired:
		return "Fired"
	case EventAlienDestroyed:
		return "AlienDestroyed"
	case EventShipHit:
		return "ShipHit"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	case EventGameStarted:
		return "GameStarted"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
