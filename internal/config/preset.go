package config

import "fmt"

// Preset is a named adjustment of match length and drop rates.
type Preset string

const (
	PresetQuick    Preset = "quick"
	PresetClassic  Preset = "classic"
	PresetMarathon Preset = "marathon"
	PresetChaos    Preset = "chaos"
)

// Presets lists every preset in display order.
func Presets() []Preset {
	return []Preset{PresetQuick, PresetClassic, PresetMarathon, PresetChaos}
}

// Description returns a one-line summary of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetQuick:
		return "First to 1 round, 60s rounds"
	case PresetClassic:
		return "First to 3 rounds, 120s rounds"
	case PresetMarathon:
		return "First to 5 rounds, 180s rounds"
	case PresetChaos:
		return "First to 3 rounds, dense walls and frequent drops"
	default:
		return ""
	}
}

// ParsePreset converts a name to a Preset. Empty input means no preset.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", name)
}

// ApplyPreset modifies the config according to a preset.
func ApplyPreset(cfg *ArenaConfig, preset Preset) {
	switch preset {
	case PresetQuick:
		cfg.Match.RoundsToWin = 1
		cfg.Match.RoundSeconds = 60
	case PresetClassic:
		cfg.Match.RoundsToWin = 3
		cfg.Match.RoundSeconds = 120
	case PresetMarathon:
		cfg.Match.RoundsToWin = 5
		cfg.Match.RoundSeconds = 180
	case PresetChaos:
		cfg.Match.RoundsToWin = 3
		cfg.Match.RoundSeconds = 120
		cfg.Board.BreakableDensity = 0.6
		cfg.Board.PowerUpChance = 0.6
		cfg.Bombs.FuseSeconds = 2.0
	}
}
