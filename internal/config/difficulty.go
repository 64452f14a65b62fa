package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in ascending difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// SpeedForPreset returns the snake speed in cells per second for a preset.
func SpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyHard:
		return 12
	default:
		return 8
	}
}

// ParsePreset converts a flag value into a preset. An empty string means
// "keep the configured speed" and is reported as ok with an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Snake.Speed = SpeedForPreset(preset)
}
