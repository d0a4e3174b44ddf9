package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bomb-arena/internal/platform/tui"
	"github.com/vovakirdan/bomb-arena/internal/storage"
)

var (
	flagRecent int
	flagPlayer string
	flagMatch  string
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and match history",
	Long: `Display the top 10 players, recent matches, a single player's record
or the rounds of one match.

Examples:
  arena scores
  arena scores --recent 20
  arena scores --player alice
  arena scores --match 6f1c...
  arena scores --browse`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent matches")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show one player's record")
	scoresCmd.Flags().StringVar(&flagMatch, "match", "", "Show the rounds of one match")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded history")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("history is disabled (empty --db)")
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	case flagMatch != "":
		return printMatch(store, flagMatch)
	case flagPlayer != "":
		return printPlayer(store, flagPlayer)
	case flagRecent > 0:
		return printRecent(store, flagRecent)
	default:
		return printLeaderboard(store)
	}
}

func printLeaderboard(store *storage.Store) error {
	players, err := store.Leaderboard(10)
	if err != nil {
		return fmt.Errorf("retrieving leaderboard: %w", err)
	}

	fmt.Println("Leaderboard")
	fmt.Println()
	if len(players) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arena play' to put the first name on the board!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %4s  %4s  %4s  %6s\n", "Rank", "Player", "W", "L", "D", "Rounds")
	fmt.Printf("  %-4s  %-16s  %4s  %4s  %4s  %6s\n", "----", "------", "-", "-", "-", "------")
	for i, p := range players {
		fmt.Printf("  %-4d  %-16s  %4d  %4d  %4d  %6d\n", i+1, p.Name, p.Wins, p.Losses, p.Draws, p.RoundsWon)
	}
	return nil
}

func printRecent(store *storage.Store, limit int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return fmt.Errorf("retrieving matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-28s  %-5s  %-12s  %s\n", "Date", "Players", "Score", "Winner", "Match")
	for _, m := range matches {
		fmt.Printf("  %-16s  %-28s  %-5s  %-12s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Player1+" v "+m.Player2,
			fmt.Sprintf("%d-%d", m.Score1, m.Score2),
			outcome(m),
			m.MatchID,
		)
	}
	return nil
}

func printPlayer(store *storage.Store, name string) error {
	rec, err := store.PlayerRecord(name)
	if err != nil {
		return fmt.Errorf("retrieving record: %w", err)
	}
	fmt.Printf("%s: %d matches, %d wins, %d losses, %d draws, %d rounds won\n",
		rec.Name, rec.Matches, rec.Wins, rec.Losses, rec.Draws, rec.RoundsWon)
	return nil
}

func printMatch(store *storage.Store, id string) error {
	m, err := store.MatchByID(id)
	if err != nil {
		return fmt.Errorf("retrieving match: %w", err)
	}
	if m == nil {
		return fmt.Errorf("no match with id %q", id)
	}
	rounds, err := store.MatchRounds(id)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Printf("%s v %s  %d-%d  (%s, %.0fs)\n\n", m.Player1, m.Player2, m.Score1, m.Score2, outcome(*m), m.Duration)
	fmt.Printf("  %-5s  %-12s  %-5s  %-7s  %-7s  %-9s\n", "Round", "Winner", "Lives", "Bombs", "Hits", "Power-ups")
	for _, r := range rounds {
		winner := r.Winner
		if winner == "" {
			winner = "draw"
		}
		if r.TimedOut {
			winner += " (time)"
		}
		d := r.Detail
		fmt.Printf("  %-5d  %-12s  %-5s  %-7s  %-7s  %-9s\n",
			r.Round,
			winner,
			fmt.Sprintf("%d-%d", r.Lives1, r.Lives2),
			fmt.Sprintf("%d-%d", d.Bombs[0], d.Bombs[1]),
			fmt.Sprintf("%d-%d", d.Hits[0], d.Hits[1]),
			fmt.Sprintf("%d-%d", d.PowerUps[0], d.PowerUps[1]),
		)
	}
	return nil
}

func outcome(m storage.MatchResult) string {
	switch {
	case !m.Completed:
		return "abandoned"
	case m.Winner == "":
		return "draw"
	default:
		return m.Winner
	}
}
