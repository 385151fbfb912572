// Package popup renders centered dialog boxes for modal content.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mgrellier/lumen/internal/ui/styles"
)

// Style carries the border and text styling a dialog frame uses.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the themed popup style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Border,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a centered popup with a title, body, and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = fit the content
	Style   Style
}

// New returns a dialog with the default style.
func New() *Dialog {
	return &Dialog{Style: DefaultStyle()}
}

// Render draws the dialog sized and centered for the given terminal.
func (p *Dialog) Render(termWidth, termHeight int) string {
	innerWidth := p.Width
	if innerWidth == 0 {
		// Fit the widest of body, title and footer, plus breathing room.
		innerWidth = max(lipgloss.Width(p.Content), lipgloss.Width(p.Title), lipgloss.Width(p.Footer)) + 2
	}
	innerWidth = min(innerWidth, termWidth-4)

	var lines []string
	if p.Title != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, p.Style.TitleStyle.Render(p.Title)), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		if lipgloss.Width(line) > innerWidth {
			line = ansi.Truncate(line, innerWidth, "...")
		}
		lines = append(lines, line)
	}
	if p.Footer != "" {
		lines = append(lines, "", lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, p.Style.FooterStyle.Render(p.Footer)))
	}

	box := frame(p.Style).Width(innerWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, box)
}

// Frame wraps pre-rendered content in the default border and centers it.
// Popup models that draw their own interior go through here.
func Frame(content string, termWidth, termHeight int) string {
	box := frame(DefaultStyle()).Render(content)
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, box)
}

func frame(style Style) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		Padding(0, 1)
}
