package visual

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/ui/popup"
	"github.com/mgrellier/lumen/internal/ui/styles"
)

// renderModal draws the blocking critical-fault dialog centered on screen.
func renderModal(e fault.Event, width, height int) string {
	d := popup.New()
	d.Style.BorderColor = severityColor(fault.SeverityCritical)
	d.Style.TitleStyle = styles.T().S().Critical

	d.Title = severityIcon(e.Severity) + "Critical Fault"
	d.Content = fmt.Sprintf("%s\n\n%s · %s · %s",
		e.Message,
		e.Category,
		e.Origin.Short(),
		humanize.Time(e.Time),
	)
	d.Footer = "enter continue · c copy details · l view logs"
	d.Width = modalWidth(width)

	return d.Render(width, height)
}

func modalWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 0 // auto-fit on tiny terminals
	}
	return w
}

// details formats an event for the clipboard.
func details(e fault.Event) string {
	return fmt.Sprintf("[%s] %s\n%s\norigin: %s\ntime: %s\n",
		e.Severity, e.Category, e.Message,
		e.Origin.Short(), e.Time.Format(time.RFC3339))
}
