// Package trainpanel renders the training progress panel.
package trainpanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mgrellier/lumen/internal/icons"
	"github.com/mgrellier/lumen/internal/run"
	"github.com/mgrellier/lumen/internal/ui"
	"github.com/mgrellier/lumen/internal/ui/render"
	"github.com/mgrellier/lumen/internal/ui/styles"
)

// Height is the compact height of the panel including borders.
// Taller panels spend the extra rows on a loss history chart.
const Height = 7

// stalledAfter is how long without a sample before the run is flagged.
const stalledAfter = 15 * time.Second

var (
	filledBlock = "▓"
	emptyBlock  = "░"

	sparkBlocks = []rune("▁▂▃▄▅▆▇█")
)

// Render returns the training panel at the given total size.
// Heights below the compact height are rendered at the compact height.
func Render(s run.Snapshot, width, height int) string {
	if width < 20 {
		return ""
	}
	if height < Height {
		height = Height
	}

	innerWidth := width - ui.BorderSize
	bodyRows := height - ui.BorderSize - 2

	header := renderHeader(s, innerWidth)
	separator := render.Separator(innerWidth)

	var lines []string
	if s.Iteration == 0 && s.UpdatedAt.IsZero() {
		st := styles.T().S()
		lines = append(lines, st.Muted.Render(render.TruncateAndPad("waiting for metrics...", innerWidth)))
	} else {
		chartRows := bodyRows - 3
		lines = append(lines, renderBar(s, innerWidth))
		if chartRows >= 2 {
			lines = append(lines, renderLossRange(s, innerWidth))
			lines = append(lines, lossChart(s.Losses, innerWidth, chartRows)...)
		} else {
			lines = append(lines, renderLoss(s, innerWidth))
		}
		lines = append(lines, renderCounts(s, innerWidth))
	}
	for len(lines) < bodyRows {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	content := header + "\n" + separator + "\n" + strings.Join(lines, "\n")

	return styles.PanelStyle(false).
		Width(innerWidth).
		Render(content)
}

func renderHeader(s run.Snapshot, innerWidth int) string {
	st := styles.T().S()

	left := st.Title.Render(icons.Run() + "Training")

	var right string
	switch {
	case !s.UpdatedAt.IsZero() && time.Since(s.UpdatedAt) > stalledAfter:
		right = st.Warning.Render("stalled " + humanize.Time(s.UpdatedAt))
	case s.TotalIterations > 0:
		right = st.Accent.Render(fmt.Sprintf("%d%%", int(s.Ratio()*100)))
	}

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return render.TruncateAndPad(icons.Run()+"Training", innerWidth)
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderBar(s run.Snapshot, innerWidth int) string {
	st := styles.T().S()

	iter := humanize.Comma(int64(s.Iteration))
	if s.TotalIterations > 0 {
		iter += " / " + humanize.Comma(int64(s.TotalIterations))
	}
	label := st.Base.Render("iter ") + st.Accent.Render(iter)
	labelWidth := lipgloss.Width(label)

	barWidth := innerWidth - labelWidth - 2
	if barWidth < ui.MinProgressBarWidth {
		return render.TruncateAndPad("iter "+iter, innerWidth)
	}

	filled := int(float64(barWidth) * s.Ratio())
	if filled > barWidth {
		filled = barWidth
	}
	bar := st.Accent.Render(strings.Repeat(filledBlock, filled)) +
		st.Subtle.Render(strings.Repeat(emptyBlock, barWidth-filled))

	return label + "  " + bar
}

func renderLoss(s run.Snapshot, innerWidth int) string {
	st := styles.T().S()

	label := st.Base.Render("loss ") + st.Accent.Render(fmt.Sprintf("%.5f", s.Loss))
	labelWidth := lipgloss.Width(label)

	sparkWidth := innerWidth - labelWidth - 2
	if sparkWidth < ui.MinProgressBarWidth {
		return render.TruncateAndPad(fmt.Sprintf("loss %.5f", s.Loss), innerWidth)
	}

	spark := st.Success.Render(sparkline(s.Losses, sparkWidth))
	pad := sparkWidth - lipgloss.Width(spark)
	if pad < 0 {
		pad = 0
	}

	return label + "  " + strings.Repeat(" ", pad) + spark
}

// renderLossRange is the loss row used when a chart is shown below it.
func renderLossRange(s run.Snapshot, innerWidth int) string {
	st := styles.T().S()

	label := st.Base.Render("loss ") + st.Accent.Render(fmt.Sprintf("%.5f", s.Loss))

	var right string
	if lo, hi, ok := lossRange(s.Losses); ok {
		right = st.Muted.Render(fmt.Sprintf("min %.5f  max %.5f", lo, hi))
	}

	gap := innerWidth - lipgloss.Width(label) - lipgloss.Width(right)
	if gap < 1 {
		return label
	}
	return label + strings.Repeat(" ", gap) + right
}

func renderCounts(s run.Snapshot, innerWidth int) string {
	st := styles.T().S()

	left := st.Base.Render("splats ") + st.Accent.Render(humanize.Comma(int64(s.SplatCount)))

	var right string
	if !s.UpdatedAt.IsZero() {
		right = st.Muted.Render("updated " + humanize.Time(s.UpdatedAt))
	}

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// sparkline maps the most recent values onto block characters,
// normalized to the visible min/max.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi, _ := lossRange(values)

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// lossChart renders the most recent values as a column chart, one column
// per value, newest at the right edge. Rows are returned top to bottom.
func lossChart(values []float64, width, rows int) []string {
	out := make([]string, rows)
	if len(values) == 0 || width <= 0 {
		for i := range out {
			out[i] = render.EmptyLine(width)
		}
		return out
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi, _ := lossRange(values)

	// Eighth-block resolution: each row holds 8 fill levels.
	// The minimum value keeps one level so its column stays visible.
	maxLevel := rows * len(sparkBlocks)
	levels := make([]int, len(values))
	for i, v := range values {
		levels[i] = 1
		if hi > lo {
			levels[i] = 1 + int((v-lo)/(hi-lo)*float64(maxLevel-1))
		}
	}

	st := styles.T().S()
	leftPad := strings.Repeat(" ", width-len(values))
	for r := range rows {
		base := (rows - 1 - r) * len(sparkBlocks)
		var b strings.Builder
		b.WriteString(leftPad)
		for _, lv := range levels {
			fill := lv - base
			switch {
			case fill <= 0:
				b.WriteRune(' ')
			case fill >= len(sparkBlocks):
				b.WriteRune(sparkBlocks[len(sparkBlocks)-1])
			default:
				b.WriteRune(sparkBlocks[fill-1])
			}
		}
		out[r] = st.Success.Render(b.String())
	}
	return out
}

func lossRange(values []float64) (lo, hi float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}
