package t2048

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts a State to the platform: it turns input frames into engine
// calls and keeps the presentation flags (won, lost) that the engine
// itself never stores.
type Game struct {
	difficulty Difficulty
	cfg        config.T2048Config
	state      *State

	moves    int // state-changing moves since the last reset
	lastGain int
	status   string

	// Screen dimensions
	screenW int
	screenH int

	// Presentation flags, refreshed from the engine after every step
	won      bool
	lost     bool
	tooSmall bool
}

// New creates a game of the given difficulty. The board is built on Reset.
func New(difficulty Difficulty, cfg config.T2048Config) *Game {
	return &Game{
		difficulty: difficulty,
		cfg:        cfg,
	}
}

func init() {
	for _, v := range variants {
		d := v.Difficulty
		registry.Register(v.GameID, func(cfg config.T2048Config) registry.Game {
			return New(d, cfg)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.difficulty.GameID()
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.difficulty.Title()
}

// Engine returns the underlying engine, or nil before the first Reset.
func (g *Game) Engine() *State {
	return g.state
}

// Reset starts a new game. The first call builds the engine from the
// configuration and seed; later calls reset the existing engine.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if g.state == nil {
		state, err := NewState(
			g.cfg.Board.Size,
			g.difficulty,
			WithSeed(cfg.Seed),
			WithBonusOdds(g.cfg.Hard.BonusOdds),
		)
		if err != nil {
			return err
		}
		g.state = state
	} else if err := g.state.Reset(); err != nil {
		return err
	}

	g.moves = 0
	g.lastGain = 0
	g.status = ""
	g.refresh()
	g.checkScreenSize()
	return nil
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.screenW < l.minWidth() || g.screenH < l.minHeight()
}

// refresh re-reads the terminal state from the engine.
func (g *Game) refresh() {
	g.won = g.state.HasWon()
	g.lost = g.state.HasLost()
}

// gameOver reports whether moves are blocked until a restart.
func (g *Game) gameOver() bool {
	if g.won {
		return true
	}
	return g.lost && !g.difficulty.Caps().SuppressLoss
}

// Step applies the actions of one input event to the engine.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		if err := g.state.Reset(); err != nil {
			return g.fail(err)
		}
		g.moves = 0
		g.lastGain = 0
		g.status = "New game"
		g.refresh()
		g.checkScreenSize()
		return core.StepResult{State: g.State(), Changed: true, Status: g.status}
	}

	if g.gameOver() {
		return core.StepResult{State: g.State()}
	}

	result := core.StepResult{}
	g.status = ""

	switch {
	case in.Has(core.ActionForceWin) && g.cfg.Debug.Hooks:
		g.state.ForceWin()
		result.Changed = true

	case in.Has(core.ActionForceLose) && g.cfg.Debug.Hooks:
		g.state.ForceLose()
		result.Changed = true

	case in.Has(core.ActionClear):
		err := g.state.ClearBoard()
		if errors.Is(err, ErrNotSupported) {
			g.status = fmt.Sprintf("Clear is only available in %s mode", DifficultyEasy)
			break
		}
		if err != nil {
			return g.fail(err)
		}
		g.status = "Board cleared"
		result.Changed = true

	default:
		dir, ok := directionFor(in)
		if !ok {
			break
		}
		res, err := g.state.Move(dir)
		if err != nil {
			return g.fail(err)
		}
		g.lastGain = res.Gained
		if res.Changed {
			g.moves++
			result.Changed = true
		}
	}

	g.refresh()
	// A wider tile can push the board past the screen edge
	g.checkScreenSize()
	switch {
	case g.won:
		g.status = "You Win!"
	case g.lost && g.difficulty.Caps().SuppressLoss:
		g.status = "No moves left - press C to clear"
	case g.lost:
		g.status = "You Lose!"
	}

	result.State = g.State()
	result.Status = g.status
	return result
}

// fail surfaces an engine error without touching the board.
func (g *Game) fail(err error) core.StepResult {
	g.status = err.Error()
	return core.StepResult{State: g.State(), Status: g.status, Err: err}
}

// directionFor maps the first movement action of a frame to a Direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.state.Score(),
		MaxTile:   g.state.MaxTile(),
		BoardSize: g.state.Size(),
		GameOver:  g.gameOver(),
		Won:       g.won,
	}
}

// BoardSize returns the configured board dimension.
func (g *Game) BoardSize() int {
	if g.state != nil {
		return g.state.Size()
	}
	return g.cfg.Board.Size
}
