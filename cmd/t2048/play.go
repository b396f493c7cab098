package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the configured difficulty and board size.

Controls:
  Arrows/WASD  - Slide tiles
  R            - Restart
  C            - Clear the board (easy only)
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  normal - Classic rules
  easy   - No game over; C keeps the largest tiles and clears the rest
  hard   - Moves sometimes spawn a second tile

Examples:
  t2048 play
  t2048 play --difficulty easy
  t2048 play --size 6 --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	difficulty, err := t2048.ParseDifficulty(string(cfg.Difficulty))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(difficulty.GameID(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)

	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Debug:  cfg.Debug.Hooks,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
