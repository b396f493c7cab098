// t2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	t2048 play               - Play one game
//	t2048 menu               - Pick difficulty and board size interactively
//	t2048 scores [mode]      - Show high scores for a difficulty
//	t2048 modes              - List available difficulties
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible games
//	--db <path>        - Set database path (default: ~/.t2048/scores.db)
//	--config <path>    - Load configuration from a YAML file
//	--log-file <path>  - Write logs to a file, "-" for stderr
//	--verbose          - Log every move
//	--debug            - Enable the force win/lose keys
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagVerbose bool
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is a terminal version of the 2048 sliding-tile puzzle.

Slide the board in one of four directions. Equal neighbours merge
into their sum; reach a 2048 tile to win.

Available commands:
  play     - Play a game directly
  menu     - Interactive difficulty and size picker
  scores   - View high scores
  modes    - List difficulties
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --difficulty hard --size 5
  t2048 menu
  t2048 scores 2048_easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.t2048/t2048.log", `Log file path ("-" for stderr)`)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every move")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable force win (m) and force lose (l) keys")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger opens the log destination named by --log-file. The returned
// function closes the log file, if any.
func newLogger() (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	cleanup := func() {}

	if flagLogFile != "-" {
		f, err := openLogFile(expandHome(flagLogFile))
		if err != nil {
			// The TUI owns the terminal, so logs are dropped instead
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			w = io.Discard
		} else {
			w = f
			cleanup = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
