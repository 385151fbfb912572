package visual

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/ui/render"
	"github.com/mgrellier/lumen/internal/ui/styles"
)

const (
	// Fade timings in seconds. A toast fades in over the first
	// fadeInDuration of its life and out over the final fadeOutDuration.
	fadeInDuration  = 0.3
	fadeOutDuration = 0.5

	toastWidth   = 44
	toastHeight  = 5 // 3 content lines + border
	toastSpacing = 1
	toastMarginX = 2
	toastMarginY = 1
)

// toast is a single transient notification with a remaining lifetime.
type toast struct {
	message  string
	category string
	origin   string
	severity fault.Severity
	lifetime float64 // seconds remaining
	initial  float64 // lifetime at creation
}

func newToast(e fault.Event, lifetime float64) toast {
	return toast{
		message:  e.Message,
		category: e.Category,
		origin:   e.Origin.Short(),
		severity: e.Severity,
		lifetime: lifetime,
		initial:  lifetime,
	}
}

// alpha returns the current opacity in [0, 1].
// Fade-out takes precedence when the configured lifetime is shorter
// than the sum of both fade windows.
func (t toast) alpha() float64 {
	if t.lifetime < fadeOutDuration {
		return t.lifetime / fadeOutDuration
	}
	if age := t.initial - t.lifetime; age < fadeInDuration {
		return age / fadeInDuration
	}
	return 1
}

// render draws a single toast box at the given opacity.
func (t toast) render() string {
	a := t.alpha()
	accent := styles.Fade(severityColor(t.severity), a)
	theme := styles.T()

	inner := toastWidth - 4 // border + padding

	title := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Render(render.TruncateEllipsis(severityIcon(t.severity)+t.category, inner))
	body := lipgloss.NewStyle().
		Foreground(styles.Fade(theme.FgBase, a)).
		Render(render.TruncateEllipsis(t.message, inner))
	source := lipgloss.NewStyle().
		Foreground(styles.Fade(theme.FgSubtle, a)).
		Render(render.TruncateEllipsis(t.origin, inner))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(toastWidth - 2).
		Render(title + "\n" + body + "\n" + source)
}

// placeToasts draws the toast stack into the canvas, anchored at the
// configured corner. Top corners stack downward, bottom corners upward.
// Boxes that do not fully fit are skipped.
func (o *Overlay) placeToasts(canvas []string, width, height int) {
	x := toastMarginX
	if o.corner == CornerTopRight || o.corner == CornerBottomRight {
		x = width - toastWidth - toastMarginX
		if x < 0 {
			x = 0
		}
	}
	top := o.corner == CornerTopRight || o.corner == CornerTopLeft

	for i := range o.toasts {
		offset := i * (toastHeight + toastSpacing)
		y := toastMarginY + offset
		if !top {
			y = height - toastMarginY - toastHeight - offset
		}
		if y < 0 || y+toastHeight > height {
			break
		}

		box := o.toasts[i].render()
		for j, line := range strings.Split(box, "\n") {
			row := y + j
			if row >= 0 && row < len(canvas) {
				canvas[row] = strings.Repeat(" ", x) + line
			}
		}
	}
}
