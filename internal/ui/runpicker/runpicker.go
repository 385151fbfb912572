// Package runpicker provides a popup for switching the watched run directory.
package runpicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgrellier/lumen/internal/ui"
	"github.com/mgrellier/lumen/internal/ui/popup"
	"github.com/mgrellier/lumen/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is the run directory input popup.
type Model struct {
	ui.Base
	input textinput.Model
}

// New creates the popup with the current run directory prefilled.
func New(current string) *Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/run"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 48
	ti.SetValue(current)
	return &Model{input: ti}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true})
			}

		case "enter":
			path := strings.TrimSpace(m.input.Value())
			return m, func() tea.Msg {
				return ActionMsg(Result{Path: path})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	title := titleStyle().Render("Open run directory")
	hint := hintStyle().Render("Enter: open, Esc: cancel")

	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
