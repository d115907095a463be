// hanoi is the Tower of Hanoi puzzle for the terminal.
//
// Usage:
//
//	hanoi play              - Play interactively (menu picks variant and discs)
//	hanoi play --discs 5    - Start a 5-disc game right away
//	hanoi solve <n>         - Print or animate the optimal solution
//	hanoi list              - List puzzle variants
//	hanoi scores [variant]  - Show best results
//	hanoi serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.hanoi/results.db)
//	--lang <code>       - Message language: en, fr
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/i18n"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLang     string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Tower of Hanoi - move the tower in your terminal",
	Long: `Tower of Hanoi moves a stack of discs from one tower to another,
one disc at a time, never placing a larger disc on a smaller one.

Available commands:
  play     - Play the puzzle
  solve    - Print or watch the optimal solution
  list     - Show the puzzle variants
  scores   - View best results
  serve    - Start SSH server for remote play

Examples:
  hanoi play
  hanoi play --discs 5
  hanoi solve 4 --watch
  hanoi serve --ssh :2222
  hanoi scores hanoi --discs 5`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		if !i18n.Supported(flagLang) {
			return fmt.Errorf("unsupported --lang %q (available: %s)", flagLang, strings.Join(i18n.Languages(), ", "))
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "hanoi",
			Level:           level,
		})
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hanoi/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "en", "Message language ("+strings.Join(i18n.Languages(), ", ")+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
