package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floodit/internal/core"
)

// PlayKeyMap defines the key bindings of the game screen.
// It doubles as the help.KeyMap rendered under the board.
type PlayKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Colors    key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Reset     key.Binding
	Torus     key.Binding
	Diagonal  key.Binding
	Help      key.Binding
	Quit      key.Binding
	colorKeys []string
}

// DefaultPlayKeyMap returns the bindings for a palette of colors colors.
func DefaultPlayKeyMap(colors int) PlayKeyMap {
	colors = core.Clamp(colors, 1, core.PaletteSize)
	digits := make([]string, colors)
	for i := range digits {
		digits[i] = strconv.Itoa(i + 1)
	}

	return PlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick dot/color"),
		),
		Colors: key.NewBinding(
			key.WithKeys(digits...),
			key.WithHelp("1-"+digits[len(digits)-1], "color"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("r", "ctrl+y"),
			key.WithHelp("r", "redo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new board"),
		),
		Torus: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "plane/torus"),
		),
		Diagonal: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "diagonal"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "save & quit"),
		),
		colorKeys: digits,
	}
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Colors, k.Undo, k.Redo, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Colors},
		{k.Undo, k.Redo, k.Reset},
		{k.Torus, k.Diagonal, k.Help, k.Quit},
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k PlayKeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Up):
		frame.Set(core.ActionUp)
	case key.Matches(msg, k.Down):
		frame.Set(core.ActionDown)
	case key.Matches(msg, k.Left):
		frame.Set(core.ActionLeft)
	case key.Matches(msg, k.Right):
		frame.Set(core.ActionRight)
	case key.Matches(msg, k.Confirm):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, k.Undo):
		frame.Set(core.ActionUndo)
	case key.Matches(msg, k.Redo):
		frame.Set(core.ActionRedo)
	case key.Matches(msg, k.Reset):
		frame.Set(core.ActionReset)
	case key.Matches(msg, k.Torus):
		frame.Set(core.ActionToggleTopology)
	case key.Matches(msg, k.Diagonal):
		frame.Set(core.ActionToggleAdjacency)
	case key.Matches(msg, k.Colors):
		for i, d := range k.colorKeys {
			if msg.String() == d {
				frame.SetColor(i)
				break
			}
		}
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc", "b":
		return MenuActionBack
	}

	return MenuActionNone
}
