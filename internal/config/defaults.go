package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
// It mirrors defaults/arena.yaml and backs it up if the embed cannot be parsed.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Board: BoardConfig{
			Width:            15,
			Height:           13,
			BreakableDensity: 0.3,
			PowerUpChance:    0.3,
		},
		Bombs: BombConfig{
			FuseSeconds:      3.0,
			ExplosionSeconds: 0.5,
		},
		Player: PlayerConfig{
			Lives:        3,
			MaxBombs:     1,
			BlastRadius:  1,
			Speed:        3.0,
			HitboxRadius: 0.3,
			RespawnGrace: 1.0,
		},
		PowerUps: PowerUpConfig{
			SpeedStep: 0.5,
			MaxBombs:  8,
			MaxRadius: 8,
			MaxSpeed:  6.0,
			MaxLives:  9,
			Weights: PowerUpWeights{
				Bomb:   3,
				Radius: 3,
				Speed:  2,
				Life:   1,
				Remote: 1,
			},
		},
		Match: MatchConfig{
			RoundsToWin:  3,
			RoundSeconds: 120,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
