package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-boulder/internal/platform/tui"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryClear string
)

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show recorded sessions",
	Long: `Display recent sessions, for one level or for all of them, followed by
per-level totals.

Examples:
  boulder history
  boulder history 01-classic --limit 20
  boulder history --tui
  boulder history --clear 01-classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history interactively")
	historyCmd.Flags().StringVar(&flagHistoryClear, "clear", "", "Delete all recorded sessions of the given level")
}

func runHistory(_ *cobra.Command, args []string) error {
	store, err := storage.Open(app.cfg.Paths.Database)
	if err != nil {
		return fmt.Errorf("could not open session database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear != "" {
		return clearHistory(os.Stdout, store, flagHistoryClear)
	}

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		var ids []string
		if levelID != "" {
			ids = []string{levelID}
		}
		if err := tui.RunHistory(store, ids, width, height); err != nil {
			return fmt.Errorf("error running history: %w", err)
		}
		return nil
	}

	sessions, err := store.RecentSessions(levelID, flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("could not read sessions: %w", err)
	}

	title := "Recent sessions"
	if levelID != "" {
		title += " - " + levelID
	}
	fmt.Println(title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'boulder play' to record one.")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %6s  %6s  %5s  %7s  %s\n", "Level", "User", "Moves", "Pushes", "Locks", "Ticks", "Date")
	fmt.Printf("  %-16s  %-12s  %6s  %6s  %5s  %7s  %s\n", "-----", "----", "-----", "------", "-----", "-----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-12s  %6d  %6d  %5d  %7d  %s\n",
			s.LevelID, s.User, s.Moves, s.Pushes, s.LocksOpened, s.Ticks,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	totals, err := store.Totals()
	if err != nil {
		return fmt.Errorf("could not read totals: %w", err)
	}

	fmt.Println()
	fmt.Println("Totals")
	fmt.Println()
	fmt.Printf("  %-16s  %8s  %8s  %s\n", "Level", "Sessions", "Moves", "Fewest")
	fmt.Printf("  %-16s  %8s  %8s  %s\n", "-----", "--------", "-----", "------")
	for _, t := range totals {
		if levelID != "" && t.LevelID != levelID {
			continue
		}
		fmt.Printf("  %-16s  %8d  %8d  %d\n", t.LevelID, t.Sessions, t.Moves, t.FewestMoves)
	}
	return nil
}

// clearHistory deletes the recorded sessions of one level and reports how many went.
func clearHistory(w io.Writer, store *storage.Store, levelID string) error {
	n, err := store.ClearSessions(levelID)
	if err != nil {
		return fmt.Errorf("could not clear sessions: %w", err)
	}
	fmt.Fprintf(w, "Cleared %d session(s) for %s\n", n, levelID)
	return nil
}
