// Package headerbar renders the single-line bar at the top of the screen.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mgrellier/lumen/internal/ui/styles"
)

// Height is what the layout reserves for the bar.
const Height = 1

// Status carries the live run information shown on the right side.
type Status struct {
	RunName   string
	Iteration int
	Total     int
	Faults    int // active toast count, shown only when non-zero
}

// Render lays the bar out for the given width: the app name on the
// left, run status on the right, dropped piecewise as the bar narrows.
func Render(st Status, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	s := t.S()
	separator := s.Subtle.Render(" │ ")

	title := styles.ApplyBoldGradient("lumen", t.Primary, t.Secondary)

	left := title
	if st.RunName != "" {
		left += separator + s.Base.Render(st.RunName)
	} else {
		left += separator + s.Muted.Render("no run")
	}

	var rightParts []string
	if st.Total > 0 {
		iter := humanize.Comma(int64(st.Iteration)) + " / " + humanize.Comma(int64(st.Total))
		rightParts = append(rightParts, s.Accent.Render(iter)+s.Muted.Render(" iter"))
	} else if st.Iteration > 0 {
		rightParts = append(rightParts, s.Accent.Render(humanize.Comma(int64(st.Iteration)))+s.Muted.Render(" iter"))
	}
	if st.Faults > 0 {
		rightParts = append(rightParts, s.Warning.Render(humanize.Comma(int64(st.Faults))+" faults"))
	}
	right := strings.Join(rightParts, separator)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Drop the status side on narrow terminals.
		right = ""
		gap = width - lipgloss.Width(left)
		if gap < 0 {
			gap = 0
		}
	}

	return left + strings.Repeat(" ", gap) + right
}
