package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulty and board size, then play",
	Long: `Start in interactive menu mode.

Choose a difficulty with Up/Down and the board size with Left/Right,
then press Enter. After a game you return to the menu.

Controls:
  Up/Down/W/S     - Choose difficulty
  Left/Right/+/-  - Change board size
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  t2048 menu
  t2048 menu --size 5
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	size := gameCfg.Board.Size

	// Menu loop
	for {
		result, err := tui.RunMenu(store, cfg, size, gameCfg.Hard.BonusOdds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes for the next visit
		cfg = result.Config
		size = result.Size

		if result.Quit {
			break
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if result.GameID == "" {
			break
		}

		gameCfg.Board.Size = size
		game, err := registry.Create(result.GameID, gameCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		err = tui.Run(game, cfg, tui.Options{
			Store:  store,
			Logger: logger,
			Debug:  gameCfg.Debug.Hooks,
		})
		if err != nil {
			logger.Error("game failed", "game", result.GameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
