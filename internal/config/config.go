// Package config provides YAML-based configuration loading and difficulty
// presets for the 2048 game.
package config

import "fmt"

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board      BoardConfig      `yaml:"board"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Hard       HardConfig       `yaml:"hard"`
	Debug      DebugConfig      `yaml:"debug"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Size int `yaml:"size"` // N for an N×N board, at least 2
}

// HardConfig tunes the Hard variant.
type HardConfig struct {
	BonusOdds int `yaml:"bonus_odds"` // 1-in-N chance of a second spawn
}

// DebugConfig enables developer-only controls.
type DebugConfig struct {
	Hooks bool `yaml:"hooks"` // force-win / force-lose keys
}

// MinBoardSize is the smallest board the engine accepts.
const MinBoardSize = 2

// Validate checks that the configuration describes a playable game.
func (c T2048Config) Validate() error {
	if c.Board.Size < MinBoardSize {
		return fmt.Errorf("config: board size %d is below %d", c.Board.Size, MinBoardSize)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("config: unknown difficulty %q", c.Difficulty)
	}
	if c.Hard.BonusOdds < 1 {
		return fmt.Errorf("config: hard.bonus_odds %d must be at least 1", c.Hard.BonusOdds)
	}
	return nil
}
