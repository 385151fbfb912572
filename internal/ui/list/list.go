// Package list is a generic scrollable list component.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/ui"
	"github.com/mgrellier/lumen/internal/ui/cursor"
)

// Action says what Update did with the message.
type Action int

const (
	ActionNone  Action = iota
	ActionEnter        // enter pressed on an item
)

// Result reports the outcome of an Update to the parent.
type Result struct {
	Action Action
	Index  int // item the action applies to, -1 if none
}

// Model holds the items and cursor of a scrollable list. It consumes
// navigation input; the parent renders the rows VisibleRange selects.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
}

// New returns an empty list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{
		cursor: cursor.New(margin),
	}
}

// SetItems replaces the items and pulls the cursor back into bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false when the list is
// empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 || m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// VisibleRange returns the [start, end) row window for rendering, given
// the panel overhead to subtract from the component height.
func (m Model[T]) VisibleRange(overhead int) (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.ListHeight(overhead))
}

// Update consumes navigation keys and reports what happened. Unfocused
// lists ignore input.
func (m *Model[T]) Update(msg tea.Msg) Result {
	if !m.IsFocused() {
		return Result{Index: -1}
	}

	listLen := len(m.items)
	height := m.ListHeight(ui.PanelOverhead)

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.cursor.HandleKey(msg.String(), listLen, height) {
			return Result{Index: -1}
		}
		if msg.String() == "enter" && listLen > 0 {
			return Result{Action: ActionEnter, Index: m.cursor.Pos()}
		}
	}

	return Result{Index: -1}
}
