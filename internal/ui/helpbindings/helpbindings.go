// Package helpbindings renders the scrollable key binding reference popup.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgrellier/lumen/internal/keymap"
	"github.com/mgrellier/lumen/internal/ui"
	"github.com/mgrellier/lumen/internal/ui/popup"
)

var _ popup.Popup = (*Model)(nil)

// categoryOrder fixes the display order of binding groups regardless of
// how SetContexts is called.
var categoryOrder = []string{
	"global",
	"modal",
	"stats",
}

var categoryLabels = map[string]string{
	"global": "Global",
	"modal":  "Fault Modal",
	"stats":  "Fault Stats",
}

var (
	helpTitleStyle  = lipgloss.NewStyle().Bold(true)
	helpKeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	helpDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the help popup state: the bindings to show and how far the
// reader has scrolled.
type Model struct {
	ui.Base
	bindings []keymap.Binding
	scroll   int
}

func New() Model {
	return Model{}
}

// SetContexts selects which binding groups to display and rewinds the
// scroll position.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scroll = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scroll < m.maxScroll() {
			m.scroll++
		}
	case "k", "up":
		if m.scroll > 0 {
			m.scroll--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	rows := m.rows()

	// Width comes from every row, not only the visible ones, so the popup
	// does not change size while scrolling.
	maxWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row); w > maxWidth {
			maxWidth = w
		}
	}

	visible := m.viewportRows()
	if visible <= 0 {
		visible = len(rows)
	}
	start := min(m.scroll, len(rows))
	end := min(start+visible, len(rows))

	window := slices.Clone(rows[start:end])
	for i, row := range window {
		if w := lipgloss.Width(row); w < maxWidth {
			window[i] = row + strings.Repeat(" ", maxWidth-w)
		}
	}

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(window, "\n"))
	b.WriteString("\n\n")
	b.WriteString(helpDimStyle.Render(m.footer()))
	return b.String()
}

// rows lays the bindings out as styled lines, one group at a time with a
// header and rule above each.
func (m Model) rows() []string {
	maxKeyWidth := 0
	for _, b := range m.bindings {
		if l := len(strings.Join(b.Keys, ", ")); l > maxKeyWidth {
			maxKeyWidth = l
		}
	}

	var rows []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				rows = append(rows, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			rows = append(rows,
				helpHeaderStyle.Render(label),
				helpDimStyle.Render(strings.Repeat("─", maxKeyWidth+15)),
			)
			context = b.Context
		}

		keys := strings.Join(b.Keys, ", ")
		padded := keys + strings.Repeat(" ", maxKeyWidth-len(keys))
		rows = append(rows, helpKeyStyle.Render(padded)+"  "+helpDescStyle.Render(b.Description))
	}
	return rows
}

func (m Model) footer() string {
	if len(m.rows()) <= m.viewportRows() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// viewportRows is the rows left for bindings after the popup chrome:
// title, footer, borders and margins.
func (m Model) viewportRows() int {
	return max(m.Height()-10, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.rows())-m.viewportRows(), 0)
}
