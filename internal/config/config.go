// Package config provides YAML-based game configuration loading and
// difficulty tuning for Little Space Explorer.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Asteroid and coin kind names, used as keys in the tuning tables.
const (
	KindAsteroid1 = "asteroid1"
	KindAsteroid2 = "asteroid2"
	KindAsteroid4 = "asteroid4"
	KindCoin1     = "coin1"
	KindCoin2     = "coin2"
	KindCoin3     = "coin3"
	KindCoin4     = "coin4"
)

// AsteroidKinds lists the obstacle kinds in spawn order.
var AsteroidKinds = []string{KindAsteroid1, KindAsteroid2, KindAsteroid4}

// CoinKinds lists the collectible kinds in spawn order.
var CoinKinds = []string{KindCoin1, KindCoin2, KindCoin3, KindCoin4}

// ExplorerConfig contains all configuration for the game.
type ExplorerConfig struct {
	Playfield    PlayfieldConfig `yaml:"playfield"`
	Ship         ShipConfig      `yaml:"ship"`
	Coins        CoinsConfig     `yaml:"coins"`
	Difficulties DifficultyTable `yaml:"difficulties"`
	Timing       TimingConfig    `yaml:"timing"`
	Sound        SoundConfig     `yaml:"sound"`
}

// PlayfieldConfig defines the playfield geometry in cells.
// Row 0 is the top barrier and row Height-1 is the ground.
type PlayfieldConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	SpawnMargin   int     `yaml:"spawn_margin"`   // rows kept free next to the barriers
	CoinReach     int     `yaml:"coin_reach"`     // coins may spawn this close to the top
	DespawnMargin float64 `yaml:"despawn_margin"` // distance past the left edge before removal
	Stars         int     `yaml:"stars"`
	ScrollSpeed   float64 `yaml:"scroll_speed"` // background cells per second
}

// ShipConfig defines the player's spaceship.
type ShipConfig struct {
	X     int     `yaml:"x"`
	Speed float64 `yaml:"speed"` // cells per second while a direction is held
	Hold  float64 `yaml:"hold"`  // seconds a key press keeps the direction held
}

// CoinsConfig defines collectible tuning, shared by all difficulties.
type CoinsConfig struct {
	Travel float64   `yaml:"travel"`
	Kinds  CoinTable `yaml:"kinds"`
}

// CoinTuning is the point value and spawn window of one coin kind.
type CoinTuning struct {
	Value  int         `yaml:"value"`
	Window SpawnWindow `yaml:",inline"`
}

// DifficultyTuning holds the per-difficulty shield and asteroid schedule.
type DifficultyTuning struct {
	Shield    int        `yaml:"shield"`
	Asteroids SpawnTable `yaml:"asteroids"`
}

// SpawnWindow is a spawn interval range in seconds.
// First is the interval used before the first spawn; Travel is the time an
// entity takes to cross the playfield.
type SpawnWindow struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	First  float64 `yaml:"first"`
	Travel float64 `yaml:"travel,omitempty"`
}

// MinDuration returns Min as a duration.
func (w SpawnWindow) MinDuration() time.Duration { return Seconds(w.Min) }

// MaxDuration returns Max as a duration.
func (w SpawnWindow) MaxDuration() time.Duration { return Seconds(w.Max) }

// FirstDuration returns First as a duration.
func (w SpawnWindow) FirstDuration() time.Duration { return Seconds(w.First) }

// TimingConfig holds delays for scene transitions and effects, in seconds.
type TimingConfig struct {
	GameOverDelay float64 `yaml:"game_over_delay"`
	SuccessDelay  float64 `yaml:"success_delay"`
	Blink         float64 `yaml:"blink"`
	FloatText     float64 `yaml:"float_text"`
}

// SoundConfig toggles audio output.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
	Music   bool `yaml:"music"`
}

// For returns the tuning for a difficulty.
func (c ExplorerConfig) For(d Difficulty) (DifficultyTuning, bool) {
	t, ok := c.Difficulties[d]
	return t, ok
}

// CoinTravel returns the travel time for a coin kind, falling back to the
// shared coin travel time.
func (c ExplorerConfig) CoinTravel(kind string) float64 {
	if t := c.Coins.Kinds[kind].Window.Travel; t > 0 {
		return t
	}
	return c.Coins.Travel
}

// Seconds converts fractional seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Difficulty is one of the three selectable difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty parses a difficulty name case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
}

// Label returns the display name.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	}
	return string(d)
}

func (d Difficulty) String() string { return string(d) }
