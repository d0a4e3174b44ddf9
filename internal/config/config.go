// Package config provides YAML-based arena configuration loading and
// named match presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("invalid arena config")

// ArenaConfig contains every tunable of the arena simulation.
type ArenaConfig struct {
	Board    BoardConfig   `yaml:"board"`
	Bombs    BombConfig    `yaml:"bombs"`
	Player   PlayerConfig  `yaml:"player"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Match    MatchConfig   `yaml:"match"`
}

// BoardConfig defines the grid and its random layout.
type BoardConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	BreakableDensity float64 `yaml:"breakable_density"` // Fraction of free cells filled with breakable walls
	PowerUpChance    float64 `yaml:"powerup_chance"`    // Drop probability per destroyed wall
}

// BombConfig defines bomb and explosion timing in seconds.
type BombConfig struct {
	FuseSeconds      float64 `yaml:"fuse_seconds"`
	ExplosionSeconds float64 `yaml:"explosion_seconds"`
}

// PlayerConfig defines default participant stats.
type PlayerConfig struct {
	Lives        int     `yaml:"lives"`
	MaxBombs     int     `yaml:"max_bombs"`
	BlastRadius  int     `yaml:"blast_radius"`
	Speed        float64 `yaml:"speed"`         // Tiles per second
	HitboxRadius float64 `yaml:"hitbox_radius"` // Half-extent of the square hitbox in tiles
	RespawnGrace float64 `yaml:"respawn_grace"` // Seconds of blast immunity after a hit
}

// PowerUpConfig defines power-up effects, caps and drop weights.
type PowerUpConfig struct {
	SpeedStep float64        `yaml:"speed_step"`
	MaxBombs  int            `yaml:"max_bombs"`
	MaxRadius int            `yaml:"max_radius"`
	MaxSpeed  float64        `yaml:"max_speed"`
	MaxLives  int            `yaml:"max_lives"`
	Weights   PowerUpWeights `yaml:"weights"`
}

// PowerUpWeights are relative drop weights; zero disables a kind.
type PowerUpWeights struct {
	Bomb   int `yaml:"bomb"`
	Radius int `yaml:"radius"`
	Speed  int `yaml:"speed"`
	Life   int `yaml:"life"`
	Remote int `yaml:"remote"`
}

// Total returns the sum of all weights.
func (w PowerUpWeights) Total() int {
	return w.Bomb + w.Radius + w.Speed + w.Life + w.Remote
}

// MatchConfig defines match length.
type MatchConfig struct {
	RoundsToWin  int `yaml:"rounds_to_win"`
	RoundSeconds int `yaml:"round_seconds"`
}

// Validate reports whether the configuration can drive a match.
func (c ArenaConfig) Validate() error {
	switch {
	case c.Board.Width < 5 || c.Board.Height < 5:
		return fmt.Errorf("%w: board must be at least 5x5, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Board.Width%2 == 0 || c.Board.Height%2 == 0:
		return fmt.Errorf("%w: board dimensions must be odd, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Board.BreakableDensity < 0 || c.Board.BreakableDensity > 1:
		return fmt.Errorf("%w: breakable_density %.2f out of [0,1]", ErrInvalid, c.Board.BreakableDensity)
	case c.Board.PowerUpChance < 0 || c.Board.PowerUpChance > 1:
		return fmt.Errorf("%w: powerup_chance %.2f out of [0,1]", ErrInvalid, c.Board.PowerUpChance)
	case c.Bombs.FuseSeconds <= 0 || c.Bombs.ExplosionSeconds <= 0:
		return fmt.Errorf("%w: bomb timings must be positive", ErrInvalid)
	case c.Player.Lives < 1 || c.Player.MaxBombs < 1 || c.Player.BlastRadius < 1:
		return fmt.Errorf("%w: player lives, max_bombs and blast_radius must be >= 1", ErrInvalid)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalid)
	case c.Player.HitboxRadius <= 0 || c.Player.HitboxRadius >= 0.5:
		return fmt.Errorf("%w: hitbox_radius %.2f out of (0,0.5)", ErrInvalid, c.Player.HitboxRadius)
	case c.Player.RespawnGrace < 0:
		return fmt.Errorf("%w: respawn_grace must not be negative", ErrInvalid)
	case c.PowerUps.Weights.Bomb < 0 || c.PowerUps.Weights.Radius < 0 || c.PowerUps.Weights.Speed < 0 ||
		c.PowerUps.Weights.Life < 0 || c.PowerUps.Weights.Remote < 0:
		return fmt.Errorf("%w: powerup weights must not be negative", ErrInvalid)
	case c.Match.RoundsToWin < 1 || c.Match.RoundSeconds < 1:
		return fmt.Errorf("%w: rounds_to_win and round_seconds must be >= 1", ErrInvalid)
	}
	return nil
}
