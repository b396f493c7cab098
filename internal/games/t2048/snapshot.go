package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StateLost        GameStateType = "lost"
	StateStuck       GameStateType = "stuck" // lost in a mode that hides the loss screen
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Moves      int
	Difficulty string
	Size       int
	Score      int
	Board      Grid
	MaxTile    int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Difficulty: g.difficulty.String(), Size: g.BoardSize(), State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.lost && g.difficulty.Caps().SuppressLoss:
		state = StateStuck
	case g.lost:
		state = StateLost
	}

	return Snapshot{
		Moves:      g.moves,
		Difficulty: g.difficulty.String(),
		Size:       g.state.Size(),
		Score:      g.state.Score(),
		Board:      g.state.Grid(),
		MaxTile:    g.state.MaxTile(),
		State:      state,
	}
}
