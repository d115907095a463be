package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDiscs      int
	flagLoose      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start the puzzle. Without --discs a menu picks the variant and the
number of discs; after a game you return to the menu.

Controls:
  1/2/3        - Pick up or drop a disc on a tower
  Left/Right   - Move the cursor, Enter/Space acts on it
  A            - Watch the optimal solution
  R            - Restart with the same number of discs
  X            - Back to the pre-game board
  +/-          - More or fewer discs before the start
  P            - Pause
  B/Esc        - Back to the menu once solved
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 3 discs
  normal - 5 discs
  hard   - 7 discs
  expert - 8 discs

Examples:
  hanoi play
  hanoi play --discs 5
  hanoi play --difficulty hard
  hanoi play --loose
  hanoi play --config ./my-hanoi.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+strings.Join(config.PresetNames(), ", "))
	playCmd.Flags().IntVar(&flagDiscs, "discs", 0, fmt.Sprintf("Number of discs (%d-%d), skips the menu", config.MinDiscs, config.MaxDiscs))
	playCmd.Flags().BoolVar(&flagLoose, "loose", false, "Any tower other than the start one wins")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagDiscs != 0 && (flagDiscs < config.MinDiscs || flagDiscs > config.MaxDiscs) {
		fmt.Fprintf(os.Stderr, "Error: --discs must be between %d and %d\n", config.MinDiscs, config.MaxDiscs)
		os.Exit(1)
	}
	preset := config.DifficultyPreset(flagDifficulty)
	if flagDifficulty != "" && !config.IsValidPreset(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (choose %s)\n", flagDifficulty, strings.Join(config.PresetNames(), ", "))
		os.Exit(1)
	}

	hanoi.SetConfigPath(flagConfig)
	hanoi.SetDifficultyPreset(preset)

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := playLoop(store, runtimeConfig(), menuDiscs(preset))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLoop alternates between the menu, the scoreboard and games until the
// player quits. --discs and --loose skip the first menu.
func playLoop(store *storage.Store, cfg core.RuntimeConfig, discs int) error {
	player := playerName()
	direct := flagDiscs > 0 || flagLoose

	for {
		gameID := string(hanoi.VariantClassic)
		if flagLoose {
			gameID = string(hanoi.VariantLoose)
		}
		start := flagDiscs

		if !direct {
			menuResult, err := tui.RunMenu(store, cfg, discs)
			if err != nil {
				return err
			}
			cfg = menuResult.Config

			if menuResult.Quit {
				return nil
			}

			if menuResult.WantsScoreboard {
				goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, menuResult.Discs)
				if sbErr != nil {
					return sbErr
				}
				if goBack {
					continue
				}
				return nil
			}

			if menuResult.GameID == "" {
				return nil
			}
			gameID = menuResult.GameID
			discs = menuResult.Discs
			start = discs
		}
		direct = false

		hanoi.SetStartDiscs(start)
		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("cannot create game: %w", err)
		}

		logger.Debug("starting game", "variant", gameID, "discs", start)
		backToMenu, err := tui.Run(game, store, cfg, player)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Lang:     flagLang,
	}
}

// menuDiscs picks the disc count the menu opens at.
func menuDiscs(preset config.DifficultyPreset) int {
	if flagDiscs > 0 {
		return flagDiscs
	}
	if n := config.DiscsForPreset(preset); n > 0 {
		return n
	}
	cfg, err := config.LoadHanoi(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultHanoiConfig()
	}
	return cfg.Game.Discs
}

func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
