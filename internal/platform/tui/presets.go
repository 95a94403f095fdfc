package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/core"
)

// PresetModel lets users choose a difficulty preset before a game.
type PresetModel struct {
	items    []config.Preset
	cursor   int
	width    int
	height   int
	selected *config.Preset
	quitting bool
}

// NewPresetModel lists the presets of cfg followed by a custom entry that
// uses the configured board.
func NewPresetModel(cfg config.FloodConfig, width, height int) PresetModel {
	items := make([]config.Preset, 0, len(cfg.Presets)+1)
	items = append(items, cfg.Presets...)
	items = append(items, config.Preset{
		Name:        config.PresetCustom,
		Description: "Board from config and flags",
		Size:        cfg.Board.Size,
		Colors:      cfg.Board.Colors,
		Topology:    cfg.Board.Topology,
		Adjacency:   cfg.Board.Adjacency,
	})

	return PresetModel{
		items:  items,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PresetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m PresetModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("F L O O D   I T", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-9s %2dx%-2d %d colors  %s/%s",
			cursor, p.Name, p.Size, p.Size, p.Colors, p.Topology, p.Adjacency)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if desc := m.items[m.cursor].Description; desc != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(centerText(desc, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Enter: Select  |  Esc/Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m PresetModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// RunPresetSelector shows the preset menu and returns the choice.
// A nil preset means the user left without choosing.
func RunPresetSelector(cfg config.FloodConfig, rc core.RuntimeConfig) (*config.Preset, error) {
	model := NewPresetModel(cfg, rc.ScreenW, rc.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PresetModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
