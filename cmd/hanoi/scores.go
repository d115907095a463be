package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagScoreDiscs  int
	flagScorePlayer string
	flagScoreAll    bool
	flagScoreClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best results",
	Long: `Display the best results for a variant, fewest moves first.
Without a variant, a summary of every variant is shown.

Examples:
  hanoi scores
  hanoi scores hanoi
  hanoi scores hanoi --discs 5
  hanoi scores --player alice
  hanoi scores hanoi --all
  hanoi scores hanoi_loose --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreDiscs, "discs", 0, "Only show games with this many discs")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Show one player's recent games")
	scoresCmd.Flags().BoolVar(&flagScoreAll, "all", false, "List every recorded game of the variant, newest first")
	scoresCmd.Flags().BoolVar(&flagScoreClear, "clear", false, "Delete every recorded game of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoreClear:
		err = clearResults(os.Stdout, store, args)
	case flagScorePlayer != "":
		err = printHistory(store, flagScorePlayer)
	case flagScoreAll && len(args) == 1:
		err = printAll(os.Stdout, store, args[0])
	case len(args) == 1:
		err = printTop(store, args[0])
	default:
		err = printSummary(store)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
}

func printTop(store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'hanoi list')", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	results, err := store.TopResults(gameID, flagScoreDiscs, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Results - %s\n", game.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hanoi play' to set the first record!")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-12s  %s\n", "Rank", "Discs", "Moves", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-8s  %-12s  %s\n", i+1, r.Discs, movesLabel(r), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagScoreDiscs > 0 {
		if best, ok, err := store.BestMoves(gameID, flagScoreDiscs); err == nil && ok {
			fmt.Println()
			fmt.Printf("Best with %d discs: %d moves\n", flagScoreDiscs, best)
		}
	}
	return nil
}

// clearResults deletes one variant's results.
func clearResults(w io.Writer, store *storage.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("--clear needs a variant (run 'hanoi list')")
	}
	if !registry.Exists(args[0]) {
		return fmt.Errorf("unknown variant %q (run 'hanoi list')", args[0])
	}
	if err := store.ClearResults(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all results for %s.\n", args[0])
	return nil
}

// printAll lists every game of a variant, auto-solved ones included.
func printAll(w io.Writer, store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'hanoi list')", gameID)
	}
	results, err := store.AllResults(gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "All games - %s\n\n", gameID)
	if len(results) == 0 {
		fmt.Fprintln(w, "No results recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-5s  %-8s  %-12s  %s\n", "Discs", "Moves", "Player", "Date")
	fmt.Fprintf(w, "  %-5s  %-8s  %-12s  %s\n", "-----", "-----", "------", "----")
	for _, r := range results {
		moves := movesLabel(r)
		if r.AutoSolved {
			moves = "auto"
		}
		fmt.Fprintf(w, "  %-5d  %-8s  %-12s  %s\n", r.Discs, moves, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printHistory(store *storage.Store, player string) error {
	results, err := store.PlayerHistory(player, 20)
	if err != nil {
		return err
	}

	fmt.Printf("Recent games - %s\n", player)
	fmt.Println()
	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-5s  %-8s  %s\n", "Variant", "Discs", "Moves", "Date")
	fmt.Printf("  %-12s  %-5s  %-8s  %s\n", "-------", "-----", "-----", "----")
	for _, r := range results {
		moves := movesLabel(r)
		if r.AutoSolved {
			moves = "auto"
		}
		fmt.Printf("  %-12s  %-5d  %-8s  %s\n", r.GameID, r.Discs, moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("Results summary")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-6s  %-7s  %-8s  %-9s  %s\n", "Variant", "Games", "Solved", "Optimal", "Avg moves", "Last played")
	fmt.Printf("  %-12s  %-6s  %-7s  %-8s  %-9s  %s\n", "-------", "-----", "------", "-------", "---------", "-----------")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-12s  %-6d  %-7d  %-8d  %-9.1f  %s\n",
			id, st.GamesCount, st.SolvedCount, st.OptimalCount, st.AvgMoves, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// movesLabel stars optimal games.
func movesLabel(r storage.Result) string {
	if r.Optimal {
		return fmt.Sprintf("%d *", r.Moves)
	}
	return fmt.Sprintf("%d", r.Moves)
}
