package hanoi

import (
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateSetup       GameStateType = "setup"
	StatePlaying     GameStateType = "playing"
	StateAutoSolving GameStateType = "auto_solving"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64                     `yaml:"tick"`
	Variant    string                     `yaml:"variant"`
	Pegs       [core.PegCount][]core.Disc `yaml:"pegs,flow"`
	Discs      int                        `yaml:"discs"`
	Moves      int                        `yaml:"moves"`
	MinMoves   int                        `yaml:"min_moves"`
	Cursor     core.PegID                 `yaml:"cursor"`
	Selected   int                        `yaml:"selected"` // held peg index, -1 when nothing is held
	Pending    int                        `yaml:"pending"`  // playback moves not yet applied
	Generation uint64                     `yaml:"generation"`
	State      GameStateType              `yaml:"state"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.state.Phase() == core.PhaseNotStarted:
		state = StateSetup
	case g.playback.Active():
		state = StateAutoSolving
	case g.state.Phase() == core.PhaseWon:
		state = StateWin
	}

	selected := -1
	if peg, _, ok := g.state.Selection(); ok {
		selected = int(peg)
	}

	return Snapshot{
		Tick:       g.tick,
		Variant:    string(g.variant),
		Pegs:       g.state.Pegs(),
		Discs:      g.state.DiscCount(),
		Moves:      g.state.MoveCount(),
		MinMoves:   g.state.MinMoves(),
		Cursor:     g.cursor,
		Selected:   selected,
		Pending:    g.playback.Remaining(),
		Generation: g.state.Generation(),
		State:      state,
	}
}

// SnapshotYAML encodes the current snapshot for screenshots.
func (g *Game) SnapshotYAML() ([]byte, error) {
	return yaml.Marshal(g.Snapshot())
}
