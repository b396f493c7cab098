package t2048

import (
	"fmt"
	"time"
)

const (
	// DefaultSize is the board dimension used when none is given.
	DefaultSize = 4
	// MinSize is the smallest board on which tiles can merge.
	MinSize = 2
	// WinValue is the tile value that wins the game.
	WinValue = 2048
	// StartValue is the value of the two tiles placed on a fresh board.
	StartValue = 2
)

// spawnValues are drawn uniformly after every move that changes the grid.
var spawnValues = [...]int{2, 4}

// Direction is one of the four move directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MoveResult describes the effect of a single Move.
type MoveResult struct {
	Changed bool   // the grid differs from before the move
	Gained  int    // score added by merges
	Merges  int    // number of merges performed
	Spawned []Cell // cells that received a new tile, in spawn order
}

// State is the game engine: one grid, its score and its rule variant.
// It performs no locking; callers must serialize access.
type State struct {
	size       int
	difficulty Difficulty
	bonusOdds  int
	grid       Grid
	score      int
	rng        Source
}

// Option configures a State at construction.
type Option func(*State)

// WithSource sets the random source used for every spawn.
func WithSource(src Source) Option {
	return func(s *State) {
		s.rng = src
	}
}

// WithSeed seeds the default random source. Without WithSeed or
// WithSource the source is seeded from the current time.
func WithSeed(seed int64) Option {
	return func(s *State) {
		s.rng = NewSource(seed)
	}
}

// WithBonusOdds sets the 1-in-n chance of the Hard mode bonus spawn.
func WithBonusOdds(n int) Option {
	return func(s *State) {
		s.bonusOdds = n
	}
}

// NewState creates a size×size game with two tiles of value 2 placed at
// random. It fails with ErrInvalidConfiguration for a board smaller than
// MinSize or an unknown difficulty.
func NewState(size int, difficulty Difficulty, opts ...Option) (*State, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: board size %d is below %d", ErrInvalidConfiguration, size, MinSize)
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty %d", ErrInvalidConfiguration, int(difficulty))
	}

	s := &State{
		size:       size,
		difficulty: difficulty,
		bonusOdds:  DefaultBonusOdds,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bonusOdds < 1 {
		return nil, fmt.Errorf("%w: bonus odds %d must be at least 1", ErrInvalidConfiguration, s.bonusOdds)
	}
	if s.rng == nil {
		s.rng = NewSource(time.Now().UnixNano())
	}

	if err := s.seedGrid(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedGrid replaces the grid with a fresh one holding two start tiles.
func (s *State) seedGrid() error {
	s.grid = NewGrid(s.size)
	for range 2 {
		if _, err := s.spawnValue(StartValue); err != nil {
			return err
		}
	}
	return nil
}

// spawnValue places value into an empty cell chosen uniformly at random.
func (s *State) spawnValue(value int) (Cell, error) {
	empty := s.grid.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, ErrNoEmptySpace
	}
	cell := empty[s.rng.Intn(len(empty))]
	s.grid[cell.Row][cell.Col] = value
	return cell, nil
}

// Size returns the board dimension.
func (s *State) Size() int {
	return s.size
}

// Difficulty returns the rule variant chosen at creation.
func (s *State) Difficulty() Difficulty {
	return s.difficulty
}

// Score returns the accumulated merge score.
func (s *State) Score() int {
	return s.score
}

// Grid returns a copy of the current grid.
func (s *State) Grid() Grid {
	return s.grid.Clone()
}

// MaxTile returns the largest tile on the board.
func (s *State) MaxTile() int {
	return s.grid.MaxTile()
}

// LoadGrid replaces the board with rows. The shape must match the board
// size and no value may be negative. The score is left untouched.
func (s *State) LoadGrid(rows [][]int) error {
	if len(rows) != s.size {
		return fmt.Errorf("%w: grid has %d rows, want %d", ErrInvalidConfiguration, len(rows), s.size)
	}
	for r, row := range rows {
		if len(row) != s.size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfiguration, r, len(row), s.size)
		}
		for c, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: negative value %d at (%d, %d)", ErrInvalidConfiguration, v, r, c)
			}
		}
	}
	s.grid = Grid(rows).Clone()
	return nil
}

// Move slides every row or column toward dir, merging equal neighbours.
// If the grid changed, a 2 or 4 spawns in a random empty cell (Hard mode
// may add a second tile of the same value). A move that changes nothing
// spawns nothing.
func (s *State) Move(dir Direction) (MoveResult, error) {
	var res MoveResult

	var toward Toward
	switch dir {
	case DirUp, DirLeft:
		toward = TowardStart
	case DirDown, DirRight:
		toward = TowardEnd
	default:
		return res, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	vertical := dir == DirUp || dir == DirDown

	before := s.grid.Clone()
	for i := range s.size {
		var line []int
		if vertical {
			line = s.grid.Column(i)
		} else {
			line = s.grid.Row(i)
		}

		gained, merges := slideLine(line, toward)
		res.Gained += gained
		res.Merges += merges

		if vertical {
			s.grid.SetColumn(i, line)
		} else {
			s.grid.SetRow(i, line)
		}
	}
	s.score += res.Gained

	if s.grid.Equal(before) {
		return res, nil
	}
	res.Changed = true

	spawned, err := s.spawnAfterMove()
	res.Spawned = spawned
	return res, err
}

// spawnAfterMove applies the spawn policy of the current difficulty.
func (s *State) spawnAfterMove() ([]Cell, error) {
	value := spawnValues[s.rng.Intn(len(spawnValues))]

	cell, err := s.spawnValue(value)
	if err != nil {
		return nil, err
	}
	spawned := []Cell{cell}

	if s.difficulty.Caps().BonusSpawn && s.rng.Intn(s.bonusOdds) == 0 && s.grid.HasEmptyCell() {
		bonus, err := s.spawnValue(value)
		if err != nil {
			return spawned, err
		}
		spawned = append(spawned, bonus)
	}
	return spawned, nil
}

// Reset discards the board, places two fresh start tiles and zeroes the
// score. Size and difficulty are kept.
func (s *State) Reset() error {
	if err := s.seedGrid(); err != nil {
		return err
	}
	s.score = 0
	return nil
}

// HasWon reports whether any tile has reached WinValue.
func (s *State) HasWon() bool {
	return s.grid.MaxTile() >= WinValue
}

// HasLost reports whether the board is full and no two neighbouring
// tiles are equal.
func (s *State) HasLost() bool {
	if s.grid.HasEmptyCell() {
		return false
	}
	return !s.grid.hasAdjacentPair()
}

// ForceWin puts WinValue in the top-left cell. Debug hook.
func (s *State) ForceWin() {
	s.grid[0][0] = WinValue
}

// ForceLose fills the board row by row with 1, 2, 3, ... so that no cell
// is empty and no neighbours match. Debug hook.
func (s *State) ForceLose() {
	v := 1
	for r := range s.grid {
		for c := range s.grid[r] {
			s.grid[r][c] = v
			v++
		}
	}
}

// ClearBoard keeps the largest tile and up to two halvings of it, wipes
// everything else and spawns one 2. Only available in Easy mode; other
// difficulties get ErrNotSupported and the board is left as is.
func (s *State) ClearBoard() error {
	if !s.difficulty.Caps().ClearBoard {
		return fmt.Errorf("%w: clear board is only available in %s mode", ErrNotSupported, DifficultyEasy)
	}

	maxVal := s.grid.MaxTile()
	s.grid.Clear()

	value := maxVal
	for i := 0; i < 3 && value >= StartValue; i++ {
		s.grid[i/s.size][i%s.size] = value
		value /= 2
	}

	_, err := s.spawnValue(StartValue)
	return err
}
