package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

var (
	flagFrom     string
	flagTo       string
	flagWatch    bool
	flagInterval time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve <discs>",
	Short: "Print or watch the optimal solution",
	Long: `Print the optimal move sequence for a tower of the given size, or
animate it with --watch.

Examples:
  hanoi solve 3
  hanoi solve 4 --from B --to A
  hanoi solve 5 --watch --interval 200ms`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagFrom, "from", "A", "Tower the discs start on (A, B, C)")
	solveCmd.Flags().StringVar(&flagTo, "to", "C", "Tower the discs finish on (A, B, C)")
	solveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Animate the solution in the terminal")
	solveCmd.Flags().DurationVar(&flagInterval, "interval", 400*time.Millisecond, "Delay between moves with --watch")
}

func runSolve(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid disc count %q", args[0])
	}
	from, err := core.ParsePeg(flagFrom)
	if err != nil {
		return err
	}
	to, err := core.ParsePeg(flagTo)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("--from and --to must differ")
	}

	s, err := core.NewWithOptions(core.Options{Source: from, Target: to, Rule: core.WinDestination, Discs: n})
	if err != nil {
		return err
	}
	if err := s.Initialize(n); err != nil {
		return err
	}

	if !flagWatch {
		printSolution(os.Stdout, n, from, to)
		return nil
	}
	return watchSolution(s)
}

func printSolution(w io.Writer, n int, from, to core.PegID) {
	fmt.Fprintf(w, "Optimal solution for %d discs, %s to %s (%d moves):\n\n", n, from, to, core.MinMoves(n))
	i := 0
	for m := range core.Sequence(n, from, to, core.Spare(from, to)) {
		i++
		fmt.Fprintf(w, "  %4d. %s\n", i, m)
	}
}

// watchSolution replays the solution on s, redrawing after every move until
// it finishes or the user interrupts.
func watchSolution(s *core.State) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	moves, err := s.StartAutoSolve()
	if err != nil {
		return err
	}
	pb := hanoi.NewPlayback(1)
	pb.Start(s, moves)

	out := termenv.NewOutput(os.Stdout)
	draw := func(last string) {
		out.ClearScreen()
		fmt.Fprint(out, drawTowers(s, last))
	}
	draw("")

	logger.Debug("watching solution", "discs", s.DiscCount(), "moves", len(moves), "interval", flagInterval)
	err = pb.Run(ctx, s, flagInterval, func(m core.Move) {
		draw(m.String())
	})
	if err != nil {
		fmt.Fprintln(out)
		logger.Info("solution interrupted", "applied", pb.Applied(), "total", pb.Total())
		return nil
	}

	info := s.CheckWin()
	fmt.Fprintf(out, "\nSolved in %d moves (minimum %d).\n", info.MoveCount, info.MinMoves)
	return nil
}

var (
	solveTitleStyle = lipgloss.NewStyle().Bold(true)
	solveDimStyle   = lipgloss.NewStyle().Faint(true)
)

// drawTowers renders the three towers side by side, largest disc at the base.
func drawTowers(s *core.State, last string) string {
	n := s.DiscCount()
	colW := 2*n + 3

	var b strings.Builder
	b.WriteString(solveTitleStyle.Render(fmt.Sprintf("Tower of Hanoi - %d discs", n)))
	b.WriteString("\n\n")

	pegs := s.Pegs()
	for row := n - 1; row >= 0; row-- {
		for _, peg := range pegs {
			cell := "|"
			if row < len(peg) {
				cell = strings.Repeat("=", 2*int(peg[row])+1)
			}
			b.WriteString(center(cell, colW))
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("-", colW*core.PegCount))
	b.WriteString("\n")
	for p := range core.PegCount {
		b.WriteString(center(core.PegID(p).String(), colW))
	}
	b.WriteString("\n\n")

	status := fmt.Sprintf("Moves: %d / %d", s.MoveCount(), s.MinMoves())
	if last != "" {
		status += "   last: " + last
	}
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(solveDimStyle.Render("Ctrl+C to stop"))
	b.WriteString("\n")
	return b.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
