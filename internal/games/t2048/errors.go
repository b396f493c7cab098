package t2048

import "errors"

var (
	// ErrInvalidConfiguration is returned when a game is created with a
	// board smaller than 2×2, an unknown difficulty, or a malformed grid.
	ErrInvalidConfiguration = errors.New("t2048: invalid configuration")

	// ErrNoEmptySpace is returned when a tile is spawned on a full grid.
	ErrNoEmptySpace = errors.New("t2048: no empty space")

	// ErrNotSupported is returned when an operation is not available in
	// the current difficulty.
	ErrNotSupported = errors.New("t2048: not supported")

	// ErrInvalidDirection is returned for a direction outside up/down/left/right.
	ErrInvalidDirection = errors.New("t2048: invalid direction")
)
