// Package hanoi provides the Tower of Hanoi puzzle for the platform.
// The rules live in the core subpackage; this package maps platform actions
// onto them, paces auto-solve playback and draws the board.
package hanoi

import (
	"errors"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	platformcore "github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
	"github.com/vovakirdan/tui-hanoi/internal/i18n"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
)

// Variant selects the win rule a registered game plays with.
type Variant string

const (
	VariantClassic Variant = "hanoi"       // whole tower on the destination peg
	VariantLoose   Variant = "hanoi_loose" // whole tower on any peg but the source
)

// messageSeconds is how long a rule-violation notice stays up.
const messageSeconds = 2

// Game implements the Tower of Hanoi puzzle.
type Game struct {
	variant  Variant
	cfg      config.HanoiConfig
	tr       *i18n.Translator
	state    *core.State
	playback *Playback

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Status
	tick         uint64
	cursor       core.PegID
	paused       bool
	tooSmall     bool
	autoSolved   bool
	message      string
	messageTicks int

	discs   int // per-instance start disc count, overrides startDiscs
	palette [core.MaxDiscs]platformcore.Color
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startDiscs       int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset that picks the disc count.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartDiscs sets the disc count for the next games and starts them
// immediately. 0 means show the pre-game board with the configured count.
func SetStartDiscs(n int) {
	startDiscs = n
}

// New creates a classic Hanoi game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewLoose creates a Hanoi game won by stacking on any non-source peg.
func NewLoose() *Game {
	return &Game{variant: VariantLoose}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantLoose), func() registry.Game {
		return NewLoose()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantLoose {
		return "Tower of Hanoi (Any Peg)"
	}
	return "Tower of Hanoi"
}

// Reset loads configuration and sets up a fresh board.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	hc, err := config.LoadHanoi(configPath)
	if err != nil {
		hc = config.DefaultHanoiConfig()
	}
	config.ApplyHanoiPreset(&hc, difficultyPreset)
	g.cfg = hc

	g.tr = i18n.New(cfg.Lang)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.paused = false
	g.autoSolved = false
	g.clearMessage()
	g.loadPalette()

	g.state = g.newState()
	g.cursor = g.state.Source()
	g.playback = NewPlayback(IntervalTicks(hc.Interval(), g.tickRate))

	if n := g.startCount(); n > 0 {
		if err := g.state.Initialize(n); err != nil {
			g.state.Reset()
		}
	}

	g.checkScreenSize()
}

// SetDiscs sets the disc count this instance starts with on its next Reset.
// 0 falls back to the package-level setting.
func (g *Game) SetDiscs(n int) {
	g.discs = n
}

func (g *Game) startCount() int {
	if g.discs > 0 {
		return g.discs
	}
	return startDiscs
}

// Resize adapts to a new screen size without touching the puzzle.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// newState builds the core state from the loaded config. Values that do
// not parse fall back to the classic A to C setup.
func (g *Game) newState() *core.State {
	opts := core.DefaultOptions()
	if p, err := core.ParsePeg(g.cfg.Game.Source); err == nil {
		opts.Source = p
	}
	if p, err := core.ParsePeg(g.cfg.Game.Target); err == nil {
		opts.Target = p
	}
	if r, err := core.ParseWinRule(g.cfg.Game.WinRule); err == nil {
		opts.Rule = r
	}
	if g.variant == VariantLoose {
		opts.Rule = core.WinAnyOther
	}
	opts.Discs = platformcore.Clamp(g.cfg.Game.Discs, core.MinDiscs, core.MaxDiscs)

	s, err := core.NewWithOptions(opts)
	if err != nil {
		return core.New()
	}
	return s
}

func (g *Game) loadPalette() {
	for i := range g.palette {
		g.palette[i] = platformcore.ColorWhite
		if i < len(g.cfg.Display.DiscColors) {
			if c, ok := platformcore.ParseColor(g.cfg.Display.DiscColors[i]); ok {
				g.palette[i] = c
			}
		}
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.state.Phase() != core.PhaseNotStarted {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Restart and reset work in every phase and stop any playback.
	switch {
	case in.Has(platformcore.ActionReset):
		g.reset()
		return platformcore.StepResult{State: g.State()}
	case in.Has(platformcore.ActionRestart) && g.state.Phase() != core.PhaseNotStarted:
		g.start()
		return platformcore.StepResult{State: g.State()}
	}

	switch g.state.Phase() {
	case core.PhaseNotStarted:
		g.stepSetup(in)
	case core.PhaseInProgress:
		g.stepPlay(in)
	case core.PhaseAutoSolving:
		g.playback.Tick(g.state)
	case core.PhaseWon:
		if in.Has(platformcore.ActionSolve) {
			g.autoSolve()
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// stepSetup handles the pre-game board: disc count and start.
func (g *Game) stepSetup(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionMoreDiscs):
		_ = g.state.SetDiscCount(g.state.DiscCount() + 1)
	case in.Has(platformcore.ActionFewerDiscs):
		_ = g.state.SetDiscCount(g.state.DiscCount() - 1)
	case in.Has(platformcore.ActionConfirm):
		g.start()
	case in.Has(platformcore.ActionSolve):
		g.autoSolve()
	}
}

// stepPlay handles manual play.
func (g *Game) stepPlay(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionSolve) {
		g.autoSolve()
		return
	}

	if in.Has(platformcore.ActionLeft) {
		g.cursor = (g.cursor + core.PegCount - 1) % core.PegCount
	}
	if in.Has(platformcore.ActionRight) {
		g.cursor = (g.cursor + 1) % core.PegCount
	}
	if in.Has(platformcore.ActionBack) {
		g.state.Deselect()
		return
	}

	// Every peg key of the tick counts, in the order it was typed.
	for _, a := range in.Pegs {
		i, _ := a.Peg()
		g.cursor = core.PegID(i)
		g.actOn(g.cursor)
		if g.state.Phase() != core.PhaseInProgress {
			return
		}
	}
	if len(in.Pegs) > 0 {
		return
	}
	if in.Has(platformcore.ActionConfirm) {
		g.actOn(g.cursor)
	}
}

// actOn picks up from peg when nothing is held, otherwise tries to drop
// the held disc there.
func (g *Game) actOn(peg core.PegID) {
	if _, _, held := g.state.Selection(); !held {
		_ = g.state.SelectDisc(peg)
		return
	}

	res := g.state.AttemptMove(peg)
	var violation *core.RuleViolation
	if errors.As(res.Reason, &violation) {
		g.showMessage(g.tr.Get("RULE_VIOLATION"))
		return
	}
	if res.Accepted {
		g.clearMessage()
	}
}

func (g *Game) start() {
	g.playback.Cancel()
	g.autoSolved = false
	g.clearMessage()
	if err := g.state.Initialize(g.state.DiscCount()); err != nil {
		g.state.Reset()
	}
	g.cursor = g.state.Source()
}

func (g *Game) reset() {
	g.playback.Cancel()
	g.autoSolved = false
	g.clearMessage()
	g.state.Reset()
	g.cursor = g.state.Source()
}

func (g *Game) autoSolve() {
	if g.state.Phase() == core.PhaseNotStarted {
		if err := g.state.Initialize(g.state.DiscCount()); err != nil {
			return
		}
	}
	moves, err := g.state.StartAutoSolve()
	if err != nil {
		return
	}
	g.autoSolved = true
	g.clearMessage()
	g.playback.Start(g.state, moves)
}

func (g *Game) showMessage(msg string) {
	g.message = msg
	g.messageTicks = messageSeconds * g.tickRate
}

func (g *Game) clearMessage() {
	g.message = ""
	g.messageTicks = 0
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	win := g.state.Win()
	won := g.state.Phase() == core.PhaseWon
	return platformcore.GameState{
		Discs:      g.state.DiscCount(),
		Moves:      g.state.MoveCount(),
		MinMoves:   g.state.MinMoves(),
		Won:        won,
		Optimal:    won && win.Optimal,
		AutoSolved: won && g.autoSolved,
		Paused:     g.paused,
	}
}
