package t2048

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"Easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", DifficultyNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("ParseDifficulty(%q) error = %v, want ErrInvalidConfiguration", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestDifficultyCapabilities(t *testing.T) {
	tests := []struct {
		d    Difficulty
		caps Capabilities
	}{
		{DifficultyNormal, Capabilities{}},
		{DifficultyEasy, Capabilities{ClearBoard: true, SuppressLoss: true}},
		{DifficultyHard, Capabilities{BonusSpawn: true}},
		{Difficulty(7), Capabilities{}},
	}

	for _, tt := range tests {
		if got := tt.d.Caps(); got != tt.caps {
			t.Errorf("%v.Caps() = %+v, want %+v", tt.d, got, tt.caps)
		}
	}
}

func TestDifficultyGameIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Difficulties() {
		id := d.GameID()
		if id == "" || seen[id] {
			t.Errorf("%v has empty or duplicate game id %q", d, id)
		}
		seen[id] = true

		back, ok := DifficultyForGameID(id)
		if !ok || back != d {
			t.Errorf("DifficultyForGameID(%q) = %v, %v, want %v", id, back, ok, d)
		}
	}

	if _, ok := DifficultyForGameID("snake"); ok {
		t.Error("unknown game id should not map to a difficulty")
	}
	if Difficulty(7).Valid() {
		t.Error("Difficulty(7) should be invalid")
	}
	if Difficulty(7).String() != "Difficulty(7)" {
		t.Errorf("String() = %q", Difficulty(7).String())
	}
}
