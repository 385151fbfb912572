// internal/app/view.go
package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mgrellier/lumen/internal/run"
	"github.com/mgrellier/lumen/internal/ui/headerbar"
	"github.com/mgrellier/lumen/internal/ui/layout"
	"github.com/mgrellier/lumen/internal/ui/overlay"
	"github.com/mgrellier/lumen/internal/ui/styles"
	"github.com/mgrellier/lumen/internal/ui/trainpanel"
)

// FooterHeight is the key hint line at the bottom of the screen.
const FooterHeight = 1

// View renders the application UI.
func (m Model) View() string {
	// No size yet means the first WindowSizeMsg has not arrived.
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var snap run.Snapshot
	if m.Monitor != nil {
		snap = m.Monitor.Progress()
	}

	header := headerbar.Render(headerbar.Status{
		RunName:   m.runName(),
		Iteration: snap.Iteration,
		Total:     snap.TotalIterations,
		Faults:    m.Overlay.ActiveToasts(),
	}, m.Width)

	narrow := layout.IsNarrowMode(m.Width)
	content := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: FooterHeight,
	})
	train := trainpanel.Render(snap,
		layout.TrainPanelWidth(m.Width, narrow, true),
		layout.TrainPanelHeight(content, trainpanel.Height, narrow, true),
	)

	var view string
	if narrow {
		view = train + "\n" + m.CkPanel.View()
	} else {
		view = lipgloss.JoinHorizontal(lipgloss.Top, train, m.CkPanel.View())
	}

	view = header + "\n" + view + "\n" + m.renderFooter()

	// Overlay the popup, then pin the canvas to terminal height
	view = m.Popups.RenderOverlay(view)
	view = enforceHeight(view, m.Height)

	// Fault overlay composes last so toasts and the critical modal are
	// never hidden behind anything else.
	if m.overlayLayer != "" {
		view = overlay.Compose(view, m.overlayLayer, m.Width, m.Height)
	}

	return view
}

func (m Model) runName() string {
	if m.RunDir == "" {
		return ""
	}
	return filepath.Base(m.RunDir)
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	hint := "? help · s stats · o open run · q quit"
	if lipgloss.Width(hint) > m.Width {
		hint = ansi.Truncate(hint, m.Width, "")
	}
	return s.Subtle.Render(hint)
}

// enforceHeight pads or truncates the view to exactly height lines. A
// trailing newline in the input does not count as an extra line.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}
