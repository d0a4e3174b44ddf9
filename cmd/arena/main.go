// arena is a two-player bomberman duel for the terminal.
//
// Usage:
//
//	arena play               - Play a match (two keyboard players or vs cpu)
//	arena serve              - Start SSH server for remote play against the cpu
//	arena scores             - Show the leaderboard and recent matches
//	arena list               - List controllers and rule presets
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set history database path (default: ~/.arena/history.db)
//	--config <path>     - Load arena rules from a YAML file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomb-arena/internal/config"

	// Import controllers to register them
	_ "github.com/vovakirdan/bomb-arena/internal/bot"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Bomb Arena - a two-player bomb duel in your terminal",
	Long: `Bomb Arena is a terminal bomberman duel. Two players share a grid
of walls, drop bombs, chain explosions and collect power-ups until one
of them wins enough rounds.

Available commands:
  play     - Play a match locally
  serve    - Start SSH server for remote play
  scores   - View the leaderboard and match history
  list     - Show controllers and rule presets

Examples:
  arena play
  arena play --p2 cpu --preset quick
  arena serve --ssh :2222
  arena scores --recent 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/history.db", "Path to history database (empty disables history)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger creates the application logger writing to w at --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadArenaConfig loads the rule set and applies a named preset on top.
func loadArenaConfig(presetName string) (config.ArenaConfig, error) {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return config.ArenaConfig{}, err
	}
	preset, err := config.ParsePreset(presetName)
	if err != nil {
		return config.ArenaConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.ArenaConfig{}, err
	}
	return cfg, nil
}
