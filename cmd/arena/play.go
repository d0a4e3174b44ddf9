package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bomb-arena/internal/core"
	"github.com/vovakirdan/bomb-arena/internal/platform/tui"
	"github.com/vovakirdan/bomb-arena/internal/registry"
	"github.com/vovakirdan/bomb-arena/internal/storage"
)

var (
	flagP1      string
	flagP2      string
	flagName1   string
	flagName2   string
	flagPreset  string
	flagRounds  int
	flagTime    int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a local match. Both players share the keyboard unless one
side is driven by the cpu controller.

Controls:
  W/A/S/D, Space, E      - Player 1 move, bomb, remote detonate
  Arrows, Enter, \       - Player 2 move, bomb, remote detonate
  P/Esc                  - Pause
  N                      - Start / next round / new game
  H                      - Match history (outside of play)
  Q/Ctrl+C               - Quit

Against the cpu, player 1 may use either key set.

Examples:
  arena play
  arena play --p2 cpu --name1 alice
  arena play --preset marathon
  arena play --rounds 2 --time 90 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagP1, "p1", "human", "Controller for player 1")
	playCmd.Flags().StringVar(&flagP2, "p2", "human", "Controller for player 2")
	playCmd.Flags().StringVar(&flagName1, "name1", "", "Display name of player 1")
	playCmd.Flags().StringVar(&flagName2, "name2", "", "Display name of player 2")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Rule preset: quick, classic, marathon, chaos")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 0, "Rounds needed to win (0 = config)")
	playCmd.Flags().IntVar(&flagTime, "time", 0, "Round time limit in seconds (0 = config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	for _, id := range []string{flagP1, flagP2} {
		if !registry.Exists(id) {
			return fmt.Errorf("unknown controller %q (run 'arena list')", id)
		}
	}

	arenaCfg, err := loadArenaConfig(flagPreset)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "arena")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			// Continue without storage - the match still works
			store = nil
		} else {
			defer store.Close()
		}
	}

	names := [2]string{flagName1, flagName2}
	for i, id := range []string{flagP1, flagP2} {
		if names[i] == "" && id != "human" {
			names[i] = "CPU"
		}
	}

	return tui.Run(tui.Options{
		Arena: arenaCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Names:        names,
		Controllers:  [2]string{flagP1, flagP2},
		RoundsToWin:  flagRounds,
		RoundSeconds: flagTime,
		Store:        store,
		Logger:       logger,
	})
}
