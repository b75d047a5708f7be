package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that a configuration can drive a game.
func Validate(cfg ExplorerConfig) error {
	p := cfg.Playfield
	if p.Width < 20 || p.Height < 8 {
		return fmt.Errorf("playfield %dx%d is smaller than 20x8: %w", p.Width, p.Height, ErrInvalid)
	}
	if p.SpawnMargin < 0 || p.CoinReach < 0 || p.DespawnMargin < 0 {
		return fmt.Errorf("playfield margins must not be negative: %w", ErrInvalid)
	}
	if 2*p.SpawnMargin >= p.Height-2 {
		return fmt.Errorf("spawn margin %d leaves no room to spawn: %w", p.SpawnMargin, ErrInvalid)
	}
	if cfg.Ship.Speed <= 0 {
		return fmt.Errorf("ship speed must be positive: %w", ErrInvalid)
	}
	if cfg.Ship.X < 0 || cfg.Ship.X >= p.Width {
		return fmt.Errorf("ship x %d is outside the playfield: %w", cfg.Ship.X, ErrInvalid)
	}
	if cfg.Coins.Travel <= 0 {
		return fmt.Errorf("coin travel must be positive: %w", ErrInvalid)
	}

	for _, kind := range CoinKinds {
		coin, ok := cfg.Coins.Kinds[kind]
		if !ok {
			return fmt.Errorf("coin %s missing: %w", kind, ErrInvalid)
		}
		if coin.Value <= 0 {
			return fmt.Errorf("coin %s value must be positive: %w", kind, ErrInvalid)
		}
		if err := validateWindow(coin.Window, false); err != nil {
			return fmt.Errorf("coin %s: %w", kind, err)
		}
	}

	for _, d := range Difficulties() {
		tuning, ok := cfg.For(d)
		if !ok {
			return fmt.Errorf("difficulty %s missing: %w", d, ErrInvalid)
		}
		if tuning.Shield <= 0 {
			return fmt.Errorf("difficulty %s shield must be positive: %w", d, ErrInvalid)
		}
		for _, kind := range AsteroidKinds {
			w, ok := tuning.Asteroids[kind]
			if !ok {
				return fmt.Errorf("difficulty %s: %s missing: %w", d, kind, ErrInvalid)
			}
			if err := validateWindow(w, true); err != nil {
				return fmt.Errorf("difficulty %s: %s: %w", d, kind, err)
			}
		}
	}

	if cfg.Timing.GameOverDelay < 0 || cfg.Timing.SuccessDelay < 0 {
		return fmt.Errorf("timing delays must not be negative: %w", ErrInvalid)
	}
	return nil
}

func validateWindow(w SpawnWindow, needTravel bool) error {
	if w.Min < 0 || w.First < 0 {
		return fmt.Errorf("negative interval: %w", ErrInvalid)
	}
	if w.Max < w.Min {
		return fmt.Errorf("interval [%g, %g] is inverted: %w", w.Min, w.Max, ErrInvalid)
	}
	if w.Max <= 0 {
		return fmt.Errorf("interval max must be positive: %w", ErrInvalid)
	}
	if needTravel && w.Travel <= 0 {
		return fmt.Errorf("travel must be positive: %w", ErrInvalid)
	}
	return nil
}
