package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the application palette plus the styles derived from it.
type Theme struct {
	// Accent pair, also the ends of the header gradient.
	Primary   lipgloss.Color // cyan - focus, active states
	Secondary lipgloss.Color // amber

	// Text, brightest to dimmest.
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color // panel background, also the fade target
	BgCursor lipgloss.Color // selection highlight

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Severity colors shared by panels and toasts.
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Critical lipgloss.Color // brighter than Error; reserved for the modal

	styles *Styles
}

// Styles are the ready-made lipgloss styles built from the palette.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style // bold base
	Accent   lipgloss.Style // highlighted values: iteration counter, selection
	Cursor   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Critical lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#56b6c2"),
	Secondary: lipgloss.Color("#e3b341"),

	FgBase:   lipgloss.Color("#cdd3da"),
	FgMuted:  lipgloss.Color("#848e9c"),
	FgSubtle: lipgloss.Color("#4f5866"),

	BgBase:   lipgloss.Color("#14161a"),
	BgCursor: lipgloss.Color("#262b33"),

	Border:      lipgloss.Color("#3a414c"),
	BorderFocus: lipgloss.Color("#56b6c2"),

	Success:  lipgloss.Color("#42b883"),
	Error:    lipgloss.Color("#dc5050"),
	Warning:  lipgloss.Color("#dcb432"),
	Critical: lipgloss.Color("#ff3232"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles for this theme, built on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
		Critical: lipgloss.NewStyle().Foreground(t.Critical).Bold(true),
	}
}
