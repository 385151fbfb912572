package ckpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mgrellier/lumen/internal/icons"
	"github.com/mgrellier/lumen/internal/ui"
	"github.com/mgrellier/lumen/internal/ui/render"
	"github.com/mgrellier/lumen/internal/ui/styles"
)

// View renders the checkpoint panel.
func (m Model) View() string {
	if m.list.Width() == 0 || m.list.Height() == 0 {
		return ""
	}

	innerWidth := m.list.Width() - ui.BorderSize
	listHeight := m.list.ListHeight(ui.PanelOverhead)

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	rows := m.renderRows(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + rows

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	st := styles.T().S()
	text := fmt.Sprintf("%sCheckpoints (%d)", icons.Checkpoint(), m.list.Len())
	return st.Title.Render(render.TruncateAndPad(text, innerWidth))
}

func (m Model) renderRows(innerWidth, listHeight int) string {
	if listHeight < 1 {
		return ""
	}

	st := styles.T().S()
	items := m.list.Items()

	if len(items) == 0 {
		lines := make([]string, 0, listHeight)
		lines = append(lines, st.Muted.Render(render.TruncateAndPad("no checkpoints yet", innerWidth)))
		for range listHeight - 1 {
			lines = append(lines, render.EmptyLine(innerWidth))
		}
		return strings.Join(lines, "\n")
	}

	start, end := m.list.VisibleRange(ui.PanelOverhead)

	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := start + i
		if idx >= end {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}

		ck := items[idx]
		meta := humanize.Bytes(uint64(ck.Size)) + " · " + humanize.Time(ck.ModTime)

		nameWidth := innerWidth - lipgloss.Width(meta) - 3
		var line string
		if nameWidth < 8 {
			line = render.TruncateAndPad(" "+ck.Name, innerWidth)
		} else {
			name := render.TruncateEllipsis(ck.Name, nameWidth)
			line = render.Row(" "+name, meta+" ", innerWidth)
		}

		if idx == m.list.SelectedIndex() && m.IsFocused() {
			lines = append(lines, st.Cursor.Render(line))
		} else {
			lines = append(lines, st.Base.Render(line))
		}
	}

	return strings.Join(lines, "\n")
}
