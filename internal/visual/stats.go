package visual

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgrellier/lumen/internal/ui/popup"
	"github.com/mgrellier/lumen/internal/ui/render"
	"github.com/mgrellier/lumen/internal/ui/styles"
)

const statsInnerWidth = 30

// renderStats draws the fault statistics panel.
// Caller holds the overlay mutex.
func (o *Overlay) renderStats(width, height int) string {
	s := styles.T().S()

	row := func(label string, count int, st lipgloss.Style) string {
		return render.Row(s.Muted.Render(label), st.Render(strconv.Itoa(count)), statsInnerWidth)
	}

	lines := []string{
		row("Errors", o.errors, s.Error),
		row("Warnings", o.warnings, s.Warning),
		row("Info", o.infos, s.Base),
		"",
		row("Active toasts", len(o.toasts), s.Base),
		row("Replaced criticals", o.replacedCriticals, s.Base),
	}

	if lt := o.journalTotals; lt != nil {
		lines = append(lines,
			"",
			row("All-time errors", lt.Errors, s.Muted),
			row("All-time warnings", lt.Warnings, s.Muted),
			row("All-time info", lt.Infos, s.Muted),
		)
	}

	d := popup.New()
	d.Title = "Fault Statistics"
	d.Content = strings.Join(lines, "\n")
	d.Footer = "x clear all · esc close"
	return d.Render(width, height)
}
