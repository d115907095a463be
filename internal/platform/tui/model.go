package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// Model is the Bubble Tea model for running a game.
// It is used directly for local play and embedded in SSH sessions.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	player      string
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	renderer    *ScreenRenderer
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current win has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case results are not recorded.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		renderer:   defaultScreenRenderer,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to the menu once the puzzle is solved or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.Won || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.Won {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record each win once; a restart clears the flag
	switch {
	case m.gameState.Won && !m.resultSaved:
		m.saveResult()
		m.resultSaved = true
	case !m.gameState.Won:
		m.resultSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveResult() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		GameID:     m.game.ID(),
		Player:     m.player,
		Discs:      m.gameState.Discs,
		Moves:      m.gameState.Moves,
		MinMoves:   m.gameState.MinMoves,
		Optimal:    m.gameState.Optimal,
		AutoSolved: m.gameState.AutoSolved,
	})
}

// saveScreenshot saves the current screen to ~/.hanoi/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.writeScreenshot(filepath.Join(home, ".hanoi", "screenshots"), time.Now())
}

// writeScreenshot writes the screen text to dir, plus a YAML state dump for
// games that provide one. It returns the path of the text file.
func (m *Model) writeScreenshot(dir string, now time.Time) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), now.Format("20060102_150405")))
	path := base + ".txt"
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}

	if snap, ok := m.game.(registry.Snapshotter); ok {
		data, err := snap.SnapshotYAML()
		if err != nil {
			return path, fmt.Errorf("cannot encode snapshot: %w", err)
		}
		if err := os.WriteFile(base+".yaml", data, 0o600); err != nil {
			return path, fmt.Errorf("cannot write snapshot: %w", err)
		}
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
