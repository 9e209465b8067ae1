package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-odyssey/internal/platform/tui"
	"github.com/vovakirdan/space-odyssey/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent sessions and totals",
	Long: `Browse the session journal: when you played, through which frontend,
how many asteroids you destroyed and how often the ship was lost.

In a terminal the journal opens as an interactive table; use tab to
filter by frontend. When output is piped, or with --plain, a text table
is printed instead.

Examples:
  odyssey stats
  odyssey stats --plain --limit 5
  odyssey stats --db ./server.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Sessions to print with --plain")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagPlain && termErr == nil {
		if err := tui.RunStats(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	if err := printStats(store, flagLimit); err != nil {
		store.Close()
		fail("%v", err)
	}
}

func printStats(store *storage.Store, limit int) error {
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}
	totals, err := store.SessionTotals()
	if err != nil {
		return err
	}

	fmt.Println("Flight Log")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'odyssey play' to start one!")
		return nil
	}

	header := []string{"Started", "Via", "Player", "Time", "Kills", "Deaths", "Shots"}
	fmt.Printf("  %-12s  %-6s  %-10s  %-7s  %-5s  %-6s  %s\n", toAny(header)...)
	fmt.Printf("  %-12s  %-6s  %-10s  %-7s  %-5s  %-6s  %s\n", toAny(dashes(header))...)
	for _, s := range sessions {
		fmt.Printf("  %-12s  %-6s  %-10s  %-7s  %-5s  %-6s  %s\n", toAny(tui.SessionRow(s))...)
	}

	fmt.Println()
	fmt.Printf("Totals over %d finished sessions: %d destroyed, %d deaths, %d shots (accuracy %s)\n",
		totals.Sessions, totals.Destroyed, totals.Deaths, totals.Shots,
		tui.Accuracy(totals.Destroyed, totals.Shots))
	return nil
}

func dashes(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.Repeat("-", len(c))
	}
	return out
}

func toAny(cols []string) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
