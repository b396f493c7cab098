package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSize       int
	flagDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

Search order: --config, ~/.t2048/configs/t2048.yaml,
./configs/t2048.yaml, built-in defaults. Flags override file values.

Examples:
  t2048 config
  t2048 config --size 6 > ~/.t2048/configs/t2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addGameFlags(configCmd)
}

// addGameFlags registers the flags that override the loaded configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagSize, "size", 0, "Board size N for an NxN board (0 = from config)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: normal, easy, hard")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

// loadConfig loads the configuration file and applies flag overrides.
func loadConfig() (config.T2048Config, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return config.T2048Config{}, err
	}

	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return config.T2048Config{}, fmt.Errorf("unknown difficulty %q (want one of %v)", flagDifficulty, config.Presets())
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagDebug {
		cfg.Debug.Hooks = true
	}

	if err := cfg.Validate(); err != nil {
		return config.T2048Config{}, err
	}
	return cfg, nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games are playable without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}
