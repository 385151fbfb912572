package visual

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/icons"
)

// Severity accent colors for toast borders, icons and category labels.
var severityColors = map[fault.Severity]lipgloss.Color{
	fault.SeverityCritical: lipgloss.Color("#ff3232"),
	fault.SeverityError:    lipgloss.Color("#dc5050"),
	fault.SeverityWarn:     lipgloss.Color("#dcb432"),
	fault.SeverityInfo:     lipgloss.Color("#64b4dc"),
	fault.SeverityDebug:    lipgloss.Color("#9696dc"),
	fault.SeverityTrace:    lipgloss.Color("#b4b4b4"),
}

func severityColor(s fault.Severity) lipgloss.Color {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[fault.SeverityTrace]
}

func severityIcon(s fault.Severity) string {
	switch {
	case s >= fault.SeverityCritical:
		return icons.Critical()
	case s >= fault.SeverityError:
		return icons.Error()
	case s == fault.SeverityWarn:
		return icons.Warning()
	case s == fault.SeverityInfo:
		return icons.Info()
	case s == fault.SeverityDebug:
		return icons.Debug()
	default:
		return icons.Trace()
	}
}
