// Package t2048 implements the 2048 sliding-tile puzzle: the board engine
// (State) and the Game adapter that plugs it into the terminal UI.
package t2048

import (
	"fmt"
	"strings"
)

// Difficulty selects the rule variant of a game. It is fixed at creation.
type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

// DefaultBonusOdds is the 1-in-N chance of a second spawn in Hard mode.
const DefaultBonusOdds = 26

// Capabilities describes what a difficulty adds on top of the base rules.
type Capabilities struct {
	ClearBoard   bool // ClearBoard may be called
	BonusSpawn   bool // a second tile may spawn after a move
	SuppressLoss bool // the platform hides the loss screen
}

// Variant is one row of the difficulty table.
type Variant struct {
	Difficulty Difficulty
	Name       string
	Title      string
	GameID     string
	Caps       Capabilities
}

// variants is the capability table for every recognized difficulty.
var variants = []Variant{
	{
		Difficulty: DifficultyNormal,
		Name:       "normal",
		Title:      "2048",
		GameID:     "2048",
	},
	{
		Difficulty: DifficultyEasy,
		Name:       "easy",
		Title:      "2048 (Easy)",
		GameID:     "2048_easy",
		Caps:       Capabilities{ClearBoard: true, SuppressLoss: true},
	},
	{
		Difficulty: DifficultyHard,
		Name:       "hard",
		Title:      "2048 (Hard)",
		GameID:     "2048_hard",
		Caps:       Capabilities{BonusSpawn: true},
	},
}

// Variants returns the difficulty table in menu order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Difficulties returns all recognized difficulties.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(variants))
	for i, v := range variants {
		out[i] = v.Difficulty
	}
	return out
}

// Valid reports whether d is one of the recognized difficulties.
func (d Difficulty) Valid() bool {
	_, ok := d.variant()
	return ok
}

func (d Difficulty) variant() (Variant, bool) {
	switch d {
	case DifficultyNormal, DifficultyEasy, DifficultyHard:
		return variants[d], true
	default:
		return Variant{}, false
	}
}

// Caps returns the capabilities of d. Unknown difficulties have none.
func (d Difficulty) Caps() Capabilities {
	v, _ := d.variant()
	return v.Caps
}

// GameID returns the registry ID for d.
func (d Difficulty) GameID() string {
	v, _ := d.variant()
	return v.GameID
}

// Title returns the display name for d.
func (d Difficulty) Title() string {
	v, _ := d.variant()
	return v.Title
}

func (d Difficulty) String() string {
	if v, ok := d.variant(); ok {
		return v.Name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty maps "normal", "easy" or "hard" (any case) to a
// Difficulty. An empty string means Normal.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, v := range variants {
		if v.Name == name {
			return v.Difficulty, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, s)
}

// DifficultyForGameID returns the difficulty registered under id.
func DifficultyForGameID(id string) (Difficulty, bool) {
	for _, v := range variants {
		if v.GameID == id {
			return v.Difficulty, true
		}
	}
	return DifficultyNormal, false
}
