// Package ckpanel renders the checkpoint list panel.
package ckpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/run"
	"github.com/mgrellier/lumen/internal/ui"
	"github.com/mgrellier/lumen/internal/ui/list"
)

// Model is the checkpoint panel state.
type Model struct {
	list list.Model[run.Checkpoint]
}

// New creates an empty checkpoint panel.
func New() Model {
	return Model{list: list.New[run.Checkpoint](ui.ScrollMargin)}
}

// SetCheckpoints replaces the listed checkpoints.
func (m *Model) SetCheckpoints(cks []run.Checkpoint) {
	m.list.SetItems(cks)
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// SetFocused sets whether the panel receives navigation keys.
func (m *Model) SetFocused(focused bool) {
	m.list.SetFocused(focused)
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.list.IsFocused()
}

// Selected returns the checkpoint under the cursor.
func (m Model) Selected() (run.Checkpoint, bool) {
	return m.list.Selected()
}

// Update handles navigation and emits an Open action on enter.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	result := m.list.Update(msg)
	if result.Action == list.ActionEnter {
		if ck, ok := m.list.Selected(); ok {
			return func() tea.Msg { return ActionMsg(Open{Checkpoint: ck}) }
		}
	}
	return nil
}
