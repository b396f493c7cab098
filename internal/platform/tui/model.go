// Package tui provides the Bubble Tea integration for the 2048 game.
// It maps keys to engine input, saves finished games and renders the
// game's screen buffer with lipgloss colors.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// Options configures a game session.
type Options struct {
	Store         *storage.Store // nil plays without scores
	Logger        *log.Logger    // nil discards log output
	Debug         bool           // enable force win/lose keys
	ScreenshotDir string         // default ~/.t2048/screenshots
}

// Model is the Bubble Tea model for a single 2048 session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState
	shotDir    string
	notice     string // one-shot message shown under the board
	quitting   bool
	scoreSaved bool // Whether the current game has been recorded
}

// NewModel creates a model for a game that has already been reset.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		home, _ := os.UserHomeDir()
		shotDir = filepath.Join(home, ".t2048", "screenshots")
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(opts.Debug),
		help:      h,
		gameState: game.State(),
		shotDir:   shotDir,
	}
}

// Init initializes the model. The game needs no commands: every update
// is driven by a key press.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey turns one key press into at most one engine step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.saveScore("quit")
		m.logger.Info("session ended", "game", m.game.ID(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	if frame.Empty() {
		return m, nil
	}

	// A restart discards the board, so record it first
	if frame.Has(core.ActionRestart) {
		m.saveScore("restart")
	}

	m.notice = ""
	result := m.game.Step(frame)
	m.gameState = result.State

	if result.Err != nil {
		m.logger.Error("step failed", "game", m.game.ID(), "error", result.Err)
	}
	if frame.Has(core.ActionRestart) && result.Changed {
		m.scoreSaved = false
		m.logger.Info("game restarted", "game", m.game.ID())
		return m, nil
	}

	m.logger.Debug("step",
		"actions", frameActions(frame),
		"changed", result.Changed,
		"score", result.State.Score,
		"max_tile", result.State.MaxTile,
	)

	if m.gameState.GameOver {
		reason := "lost"
		if m.gameState.Won {
			reason = "won"
		}
		m.saveScore(reason)
	}

	return m, nil
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gameH := max(msg.Height-helpHeight, 1)
	m.screen.Resize(msg.Width, gameH)
	m.game.Resize(msg.Width, gameH)
	m.help.Width = msg.Width
	return m, nil
}

// saveScore records the current game once, if it scored anything.
func (m *Model) saveScore(reason string) {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	m.logger.Info("game finished",
		"game", m.game.ID(),
		"reason", reason,
		"score", m.gameState.Score,
		"max_tile", m.gameState.MaxTile,
	)

	if m.store == nil {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		MaxTile:   m.gameState.MaxTile,
		BoardSize: m.gameState.BoardSize,
		Won:       m.gameState.Won,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		m.notice = "Score not saved"
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.notice = "Saved " + filename
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.notice != "" {
		m.screen.DrawTextColor(0, m.screen.Height()-1, m.notice, core.ColorGray)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys))
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// frameActions lists the actions set in a frame for logging.
func frameActions(f core.InputFrame) []string {
	var names []string
	for a, on := range f.Actions {
		if on {
			names = append(names, a.String())
		}
	}
	return names
}

// Run resets the game and starts the Bubble Tea program.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameCfg := cfg
	gameCfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	if err := game.Reset(gameCfg); err != nil {
		return fmt.Errorf("cannot start %s: %w", game.ID(), err)
	}

	if opts.Logger != nil {
		opts.Logger.Info("game started", "game", game.ID(), "size", game.State().BoardSize, "seed", cfg.Seed)
	}

	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
