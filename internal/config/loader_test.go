package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseArena(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultArenaConfig() {
		t.Errorf("embedded YAML and DefaultArenaConfig() differ:\n%+v\n%+v", cfg, DefaultArenaConfig())
	}
}

func TestLoadArenaCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	data := []byte("board:\n  width: 11\n  height: 9\nmatch:\n  rounds_to_win: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena() failed: %v", err)
	}

	if cfg.Board.Width != 11 || cfg.Board.Height != 9 {
		t.Errorf("expected 11x9 board, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Match.RoundsToWin != 2 {
		t.Errorf("expected rounds_to_win 2, got %d", cfg.Match.RoundsToWin)
	}
	// Keys not mentioned keep their defaults
	if cfg.Player.Lives != DefaultArenaConfig().Player.Lives {
		t.Errorf("expected default lives, got %d", cfg.Player.Lives)
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadArenaRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 14\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := LoadArena(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for even width, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArenaConfig)
		valid  bool
	}{
		{"defaults", func(*ArenaConfig) {}, true},
		{"tiny board", func(c *ArenaConfig) { c.Board.Width = 3 }, false},
		{"density above one", func(c *ArenaConfig) { c.Board.BreakableDensity = 1.5 }, false},
		{"zero fuse", func(c *ArenaConfig) { c.Bombs.FuseSeconds = 0 }, false},
		{"no lives", func(c *ArenaConfig) { c.Player.Lives = 0 }, false},
		{"hitbox too wide", func(c *ArenaConfig) { c.Player.HitboxRadius = 0.5 }, false},
		{"negative grace", func(c *ArenaConfig) { c.Player.RespawnGrace = -1 }, false},
		{"no rounds", func(c *ArenaConfig) { c.Match.RoundsToWin = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArenaConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultArenaConfig()
	ApplyPreset(&cfg, PresetQuick)
	if cfg.Match.RoundsToWin != 1 || cfg.Match.RoundSeconds != 60 {
		t.Errorf("quick preset gave %+v", cfg.Match)
	}

	cfg = DefaultArenaConfig()
	ApplyPreset(&cfg, PresetChaos)
	if cfg.Board.PowerUpChance <= DefaultArenaConfig().Board.PowerUpChance {
		t.Error("chaos preset should raise the drop chance")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("chaos preset should stay valid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("marathon")
	if err != nil || p != PresetMarathon {
		t.Errorf("ParsePreset(marathon) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("empty preset should be accepted as none, got %q, %v", p, err)
	}
	if _, err := ParsePreset("hardcore"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
