package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyNormal, DifficultyEasy, DifficultyHard}
}

// ParsePreset normalizes a user-supplied preset name.
// Returns false if the name is not recognized.
func ParsePreset(s string) (DifficultyPreset, bool) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", false
	}
	return p, true
}

// Valid returns true for one of the three recognized presets.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyNormal, DifficultyEasy, DifficultyHard:
		return true
	default:
		return false
	}
}

// ApplyPreset sets the difficulty of cfg. An empty preset leaves it unchanged.
func ApplyPreset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
}
