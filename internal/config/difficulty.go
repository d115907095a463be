package config

import "slices"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets lists the presets in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert}

// DiscsForPreset returns the disc count for a difficulty preset, or 0 if the
// preset is unknown.
func DiscsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 7
	case DifficultyExpert:
		return MaxDiscs
	default:
		return 0
	}
}

// PresetNames lists the preset names, for help text and errors.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return names
}

// IsValidPreset reports whether preset names a known difficulty.
func IsValidPreset(preset DifficultyPreset) bool {
	return slices.Contains(Presets, preset)
}

// ApplyHanoiPreset sets the disc count from a difficulty preset.
// Unknown and empty presets leave the config unchanged.
func ApplyHanoiPreset(cfg *HanoiConfig, preset DifficultyPreset) {
	if n := DiscsForPreset(preset); n != 0 {
		cfg.Game.Discs = n
	}
}
