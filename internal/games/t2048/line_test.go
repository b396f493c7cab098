package t2048

import (
	"slices"
	"testing"
)

func TestShiftZeroes(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		toward   Toward
		expected []int
	}{
		{"pack to start", []int{1, 2, 0, 3, 0, 2}, TowardStart, []int{1, 2, 3, 2, 0, 0}},
		{"pack to end", []int{1, 2, 3, 2, 0, 0}, TowardEnd, []int{0, 0, 1, 2, 3, 2}},
		{"all zero", []int{0, 0, 0}, TowardStart, []int{0, 0, 0}},
		{"already packed", []int{1, 2, 0, 0}, TowardStart, []int{1, 2, 0, 0}},
		{"already packed end", []int{0, 0, 4, 8}, TowardEnd, []int{0, 0, 4, 8}},
		{"single", []int{0, 0, 0, 2}, TowardStart, []int{2, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := slices.Clone(tt.input)
			ShiftZeroes(line, tt.toward)
			if !slices.Equal(line, tt.expected) {
				t.Errorf("ShiftZeroes(%v) = %v, want %v", tt.input, line, tt.expected)
			}
		})
	}
}

func TestShiftZeroesIdempotent(t *testing.T) {
	lines := [][]int{
		{0, 2, 0, 4, 8},
		{2, 0, 2, 0},
		{0, 0, 0, 0},
		{16, 8, 4, 2},
	}

	for _, toward := range []Toward{TowardStart, TowardEnd} {
		for _, in := range lines {
			once := slices.Clone(in)
			ShiftZeroes(once, toward)
			twice := slices.Clone(once)
			ShiftZeroes(twice, toward)
			if !slices.Equal(once, twice) {
				t.Errorf("ShiftZeroes not idempotent for %v: %v then %v", in, once, twice)
			}
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		toward   Toward
		expected []int
		gained   int
		merges   int
	}{
		{"merge to start", []int{2, 2, 0, 2}, TowardStart, []int{4, 0, 0, 2}, 4, 1},
		{"merge to end", []int{2, 2, 0, 2}, TowardEnd, []int{0, 4, 0, 2}, 4, 1},
		{"not adjacent", []int{2, 0, 0, 2}, TowardStart, []int{2, 0, 0, 2}, 0, 0},
		{"all zero", []int{0, 0, 0, 0}, TowardStart, []int{0, 0, 0, 0}, 0, 0},
		{"pairs merge once", []int{2, 2, 2, 2}, TowardStart, []int{4, 0, 4, 0}, 8, 2},
		{"pairs merge once to end", []int{2, 2, 2, 2}, TowardEnd, []int{0, 4, 0, 4}, 8, 2},
		{"leading pair wins", []int{2, 2, 2}, TowardStart, []int{4, 0, 2}, 4, 1},
		{"leading pair wins to end", []int{2, 2, 2}, TowardEnd, []int{2, 0, 4}, 4, 1},
		{"no cascade", []int{2, 2, 4}, TowardStart, []int{4, 0, 4}, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := slices.Clone(tt.input)
			gained, merges := Combine(line, tt.toward)
			if !slices.Equal(line, tt.expected) {
				t.Errorf("Combine(%v) = %v, want %v", tt.input, line, tt.expected)
			}
			if gained != tt.gained {
				t.Errorf("gained = %d, want %d", gained, tt.gained)
			}
			if merges != tt.merges {
				t.Errorf("merges = %d, want %d", merges, tt.merges)
			}
		})
	}
}

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		toward   Toward
		expected []int
		gained   int
	}{
		{"simple merge", []int{2, 2, 0, 0}, TowardStart, []int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", []int{2, 2, 2, 0}, TowardStart, []int{4, 2, 0, 0}, 4},
		{"double merge", []int{2, 2, 2, 2}, TowardStart, []int{4, 4, 0, 0}, 8},
		{"double merge to end", []int{2, 2, 2, 2}, TowardEnd, []int{0, 0, 4, 4}, 8},
		{"no merge possible", []int{2, 4, 8, 16}, TowardStart, []int{2, 4, 8, 16}, 0},
		{"slide with gap", []int{0, 0, 2, 2}, TowardStart, []int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, TowardStart, []int{4, 0, 0, 0}, 4},
		{"merged tile does not merge again", []int{4, 2, 2, 0}, TowardStart, []int{4, 4, 0, 0}, 4},
		{"slide to end", []int{2, 0, 4, 0}, TowardEnd, []int{0, 0, 2, 4}, 0},
		{"empty row", []int{0, 0, 0, 0}, TowardEnd, []int{0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := slices.Clone(tt.input)
			gained, _ := slideLine(line, tt.toward)
			if !slices.Equal(line, tt.expected) {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, line, tt.expected)
			}
			if gained != tt.gained {
				t.Errorf("gained = %d, want %d", gained, tt.gained)
			}
		})
	}
}
