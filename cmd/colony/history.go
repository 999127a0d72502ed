package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colony/internal/platform/tui"
	"github.com/vovakirdan/colony/internal/registry"
	"github.com/vovakirdan/colony/internal/storage"
)

var (
	flagPlain   bool
	flagPreset  string
	flagLimit   int
	flagClear   bool
	flagSummary bool
	flagID      int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sessions",
	Long: `Browse recorded sessions. Sessions with at least one placement
attempt are saved when you quit or return to the menu.

Examples:
  colony history                  # Interactive table
  colony history --plain          # Print a text table
  colony history --plain --preset small --limit 5
  colony history --summary        # Per-preset totals
  colony history --id 12          # One session in detail
  colony history --clear --preset wide`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table instead of the interactive view")
	historyCmd.Flags().StringVar(&flagPreset, "preset", "", "Only show sessions for this preset")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of sessions to print")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded sessions (all, or --preset only)")
	historyCmd.Flags().BoolVar(&flagSummary, "summary", false, "Print per-preset totals")
	historyCmd.Flags().Int64Var(&flagID, "id", 0, "Print one session by ID")
}

func runHistory(_ *cobra.Command, _ []string) {
	if flagPreset != "" && !registry.Exists(flagPreset) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", flagPreset)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearSessions(flagPreset); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")

	case flagID != 0:
		printSession(store, flagID)

	case flagSummary:
		printSummary(store)

	case flagPlain:
		printSessions(store)

	default:
		w, h := terminalSize()
		if _, err := tui.RunHistory(store, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printSessions(store *storage.Store) {
	sessions, err := store.RecentSessions(flagPreset, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'colony play' to start one!")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-6s  %-8s  %-6s  %-8s  %s\n", "#", "Preset", "Placed", "Occupied", "Missed", "Time", "Date")
	fmt.Printf("  %-5s  %-8s  %-6s  %-8s  %-6s  %-8s  %s\n", "-", "------", "------", "--------", "------", "----", "----")

	for _, s := range sessions {
		date := "-"
		if !s.CreatedAt.IsZero() {
			date = s.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-5d  %-8s  %-6d  %-8d  %-6d  %-8s  %s\n",
			s.ID, s.Preset, s.Placed, s.Rejected, s.OutOfBounds,
			s.Duration.Round(time.Second), date)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		st, statErr := store.Stats(flagPreset)
		if statErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", statErr)
			os.Exit(1)
		}
		all = map[string]*storage.PresetStats{flagPreset: st}
	}

	if len(all) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-8s  %-8s  %-6s  %-8s  %-6s  %-4s  %-8s  %s\n", "Preset", "Sessions", "Placed", "Occupied", "Missed", "Best", "Time", "Last played")
	fmt.Printf("  %-8s  %-8s  %-6s  %-8s  %-6s  %-4s  %-8s  %s\n", "------", "--------", "------", "--------", "------", "----", "----", "-----------")
	for _, id := range ids {
		st := all[id]
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-8s  %-8d  %-6d  %-8d  %-6d  %-4d  %-8s  %s\n",
			id, st.Sessions, st.Placed, st.Rejected, st.OutOfBounds, st.MostPlaced,
			st.TotalTime.Round(time.Second), last)
	}
}

func printSession(store *storage.Store, id int64) {
	s, err := store.SessionByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving session: %v\n", err)
		os.Exit(1)
	}
	if s == nil {
		fmt.Fprintf(os.Stderr, "Error: no session with ID %d\n", id)
		os.Exit(1)
	}

	fmt.Printf("Session #%d\n", s.ID)
	fmt.Println()
	fmt.Printf("  Preset:    %s\n", s.Preset)
	fmt.Printf("  Seed:      %d\n", s.Seed)
	fmt.Printf("  Placed:    %d\n", s.Placed)
	fmt.Printf("  Occupied:  %d\n", s.Rejected)
	fmt.Printf("  Missed:    %d\n", s.OutOfBounds)
	fmt.Printf("  Time:      %s\n", s.Duration.Round(time.Second))
	if !s.CreatedAt.IsZero() {
		fmt.Printf("  Date:      %s\n", s.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Printf("Replay the same map with: colony play %s --seed %d\n", s.Preset, s.Seed)
}
