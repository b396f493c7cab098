package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagClearScores bool
	flagAllScores   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a difficulty",
	Long: `Display the top 10 high scores for a difficulty.

The mode is a variant ID from 't2048 modes' or a difficulty name;
it defaults to normal.

Examples:
  t2048 scores
  t2048 scores easy
  t2048 scores 2048_hard --clear
  t2048 scores --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Summarize every mode")
}

// resolveMode accepts either a registered ID or a difficulty name.
func resolveMode(arg string) (string, error) {
	if registry.Exists(arg) {
		return arg, nil
	}
	d, err := t2048.ParseDifficulty(arg)
	if err != nil {
		return "", fmt.Errorf("unknown mode %q", arg)
	}
	return d.GameID(), nil
}

func runScores(_ *cobra.Command, args []string) {
	if flagAllScores {
		runScoresSummary()
		return
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	gameID, err := resolveMode(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 't2048 modes' to see available modes.")
		os.Exit(1)
	}
	difficulty, _ := t2048.DifficultyForGameID(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", difficulty.Title())
		return
	}

	scores, err := store.TopScores(gameID, storage.DefaultLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", difficulty.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play --difficulty %s' to set the first high score!\n", difficulty)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Max Tile", "Size", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "--------", "----", "------", "----")

	for i, entry := range scores {
		result := "-"
		if entry.Won {
			result = "won"
		}
		size := fmt.Sprintf("%dx%d", entry.BoardSize, entry.BoardSize)
		fmt.Printf("  %-4d  %-8d  %-8d  %-5s  %-6s  %s\n",
			i+1, entry.Score, entry.MaxTile, size, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("Best: %d   Games: %d   Wins: %d   Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.BestTile)
	}
}

// runScoresSummary prints one line of stats per mode.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("  %-12s  %-6s  %-5s  %-8s  %-9s  %s\n", "Mode", "Games", "Wins", "Best", "Best tile", "Last played")
	fmt.Printf("  %-12s  %-6s  %-5s  %-8s  %-9s  %s\n", "----", "-----", "----", "----", "---------", "-----------")

	for _, v := range t2048.Variants() {
		stats, ok := all[v.GameID]
		if !ok {
			fmt.Printf("  %-12s  %-6d  %-5s  %-8s  %-9s  %s\n", v.Title, 0, "-", "-", "-", "-")
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-5d  %-8d  %-9d  %s\n", v.Title, stats.GamesCount, stats.Wins,
			stats.HighScore, stats.BestTile, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
