package config

import (
	_ "embed"
)

//go:embed defaults/explorer.yaml
var defaultExplorerYAML []byte

// DefaultExplorerConfig returns the built-in game configuration.
func DefaultExplorerConfig() ExplorerConfig {
	return ExplorerConfig{
		Playfield: PlayfieldConfig{
			Width:         72,
			Height:        18,
			SpawnMargin:   2,
			CoinReach:     1,
			DespawnMargin: 4,
			Stars:         24,
			ScrollSpeed:   6,
		},
		Ship: ShipConfig{
			X:     6,
			Speed: 14,
			Hold:  0.35,
		},
		Coins: CoinsConfig{
			Travel: 7,
			Kinds: CoinTable{
				KindCoin1: {Value: 2, Window: SpawnWindow{Min: 2, Max: 3, First: 1}},
				KindCoin2: {Value: 3, Window: SpawnWindow{Min: 3, Max: 4, First: 3}},
				KindCoin3: {Value: 4, Window: SpawnWindow{Min: 10, Max: 15, First: 10}},
				KindCoin4: {Value: 5, Window: SpawnWindow{Min: 15, Max: 20, First: 15}},
			},
		},
		Difficulties: DifficultyTable{
			DifficultyEasy: {
				Shield: 5,
				Asteroids: SpawnTable{
					KindAsteroid1: {Min: 4, Max: 6, First: 4, Travel: 5},
					KindAsteroid2: {Min: 5, Max: 8, First: 5, Travel: 6},
					KindAsteroid4: {Min: 10, Max: 20, First: 10, Travel: 4},
				},
			},
			DifficultyMedium: {
				Shield: 3,
				Asteroids: SpawnTable{
					KindAsteroid1: {Min: 2, Max: 3, First: 2, Travel: 3},
					KindAsteroid2: {Min: 3, Max: 4, First: 3, Travel: 4},
					KindAsteroid4: {Min: 4, Max: 5, First: 4, Travel: 2},
				},
			},
			DifficultyHard: {
				Shield: 3,
				Asteroids: SpawnTable{
					KindAsteroid1: {Min: 1, Max: 2, First: 1, Travel: 2},
					KindAsteroid2: {Min: 2, Max: 3, First: 2, Travel: 3},
					KindAsteroid4: {Min: 3, Max: 4, First: 3, Travel: 1},
				},
			},
		},
		Timing: TimingConfig{
			GameOverDelay: 1.5,
			SuccessDelay:  2,
			Blink:         0.8,
			FloatText:     1,
		},
		Sound: SoundConfig{
			Enabled: true,
			Music:   true,
		},
	}
}
