// Package tui provides the Bubble Tea integration for Flood It.
// It handles the terminal UI loop, input mapping, menus and the
// persistence hooks around a game.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit"
	"github.com/vovakirdan/floodit/internal/storage"
)

// Model is the Bubble Tea model for playing Flood It.
type Model struct {
	game       *floodit.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       PlayKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a Bubble Tea model for a game that was already dealt or
// resumed. store may be nil, in which case nothing is persisted.
func NewModel(game *floodit.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultPlayKeyMap(game.Board().Colors),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	m.game.Resize(cfg.ScreenW, m.boardHeight())
	m.loadBest()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil
	}

	return m, nil
}

// handleKey maps a key to an input frame and steps the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if result.Changed {
		snap := m.game.Snapshot()
		m.logger.Debug("step",
			"key", msg.String(),
			"phase", snap.Phase,
			"steps", snap.Steps,
			"captured", snap.Captured,
			"rule", fmt.Sprintf("%s/%s", snap.Topology, snap.Adjacency),
		)
	}

	if m.gameState.Quit {
		m.persist()
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.Won && !m.game.Recorded() {
		m.recordResult()
	}

	return m, nil
}

// recordResult stores a finished game and empties the save slot.
func (m *Model) recordResult() {
	m.game.MarkRecorded()
	board := m.game.Board()
	m.logger.Info("board flooded", "steps", m.gameState.Steps, "size", board.Size, "colors", board.Colors)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(storage.Result{
		Preset:    m.game.Preset(),
		Size:      board.Size,
		Colors:    board.Colors,
		Topology:  board.Topology,
		Adjacency: board.Adjacency,
		Steps:     m.gameState.Steps,
	}); err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
	if err := m.store.DeleteSavedGame(); err != nil {
		m.logger.Warn("could not clear saved game", "error", err)
	}
	m.loadBest()
}

// persist saves an unfinished game on quit. A board whose win is already
// stored is not saved again, even after undoing past the win.
func (m *Model) persist() {
	if m.store == nil || m.gameState.Won || m.game.Recorded() {
		return
	}
	if err := m.store.SaveGame(m.game.Preset(), m.game.FloodState()); err != nil {
		m.logger.Warn("could not save game", "error", err)
		return
	}
	m.logger.Info("game saved", "steps", m.gameState.Steps, "captured", m.gameState.Captured)
}

// loadBest shows the best recorded step count for the board in the HUD.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	board := m.game.Board()
	best, err := m.store.BestSteps(board.Size, board.Colors)
	if err != nil {
		m.logger.Warn("could not load best steps", "error", err)
		return
	}
	m.game.SetBest(best)
}

// boardHeight is the screen height left for the game above the help bar.
func (m Model) boardHeight() int {
	h := m.config.ScreenH - lipgloss.Height(m.help.View(m.keys))
	return core.Max(h, 1)
}

// relayout resizes the screen buffer after a window or help change.
func (m *Model) relayout() {
	h := m.boardHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".floodit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the last step.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game *floodit.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
