package core

import "time"

// RuntimeConfig contains settings the platform passes to a scene at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Clock returns the current wall-clock time. Nil means time.Now.
	// Spawn timers and pause bookkeeping read it; tests inject a fake.
	Clock func() time.Time
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

// Now returns the configured clock's current time.
func (c RuntimeConfig) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the gameplay status reported to the platform after each tick.
type GameState struct {
	Score    int  // Points collected
	Shield   int  // Remaining shield charges
	Paused   bool // Whether the game is paused
	GameOver bool // Shield depleted; no more input is accepted

	// Finished is set once the game-over cue has played and the platform
	// may present the next scene.
	Finished bool

	// Exited is set when the player leaves a paused game for the menu.
	Exited bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Event is something that happened during a tick that the platform may
// want to react to (sound cues, transitions).
type Event int

const (
	EventNone Event = iota
	EventCollect
	EventHit
	EventGameOver
	EventPaused
	EventResumed
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventCollect:
		return "Collect"
	case EventHit:
		return "Hit"
	case EventGameOver:
		return "GameOver"
	case EventPaused:
		return "Paused"
	case EventResumed:
		return "Resumed"
	default:
		return "None"
	}
}
