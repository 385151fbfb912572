package visual

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/mgrellier/lumen/internal/fault"
)

func TestToastAlpha(t *testing.T) {
	tests := []struct {
		name     string
		lifetime float64
		initial  float64
		want     float64
	}{
		{"just born", 4.0, 4.0, 0},
		{"mid fade-in", 3.85, 4.0, 0.5},
		{"fully visible", 3.0, 4.0, 1},
		{"fade-in boundary", 3.7, 4.0, 1},
		{"mid fade-out", 0.25, 4.0, 0.5},
		{"fade-out boundary", 0.5, 4.0, 1},
		{"nearly gone", 0.05, 4.0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tst := toast{lifetime: tt.lifetime, initial: tt.initial}
			assert.InDelta(t, tt.want, tst.alpha(), 1e-9)
		})
	}
}

func TestToastAlphaShortLifetime(t *testing.T) {
	// With a lifetime shorter than both fade windows combined,
	// fade-out wins for the overlapping region.
	tst := toast{lifetime: 0.4, initial: 0.6}
	assert.InDelta(t, 0.8, tst.alpha(), 1e-9)
}

func TestToastRenderShape(t *testing.T) {
	tst := newToast(fault.Event{
		Message:  "open metrics.jsonl: no such file or directory",
		Category: fault.CategoryFilesystem,
		Severity: fault.SeverityError,
	}, 4.0)

	lines := strings.Split(tst.render(), "\n")
	assert.Len(t, lines, toastHeight)
	for i, line := range lines {
		assert.Equal(t, toastWidth, lipgloss.Width(line), "line %d width", i)
	}
}

func TestPlaceToastsTopRight(t *testing.T) {
	_, o := newTestPipeline()
	o.toasts = []toast{
		newToast(fault.Event{Message: "a", Severity: fault.SeverityWarn}, 4),
		newToast(fault.Event{Message: "b", Severity: fault.SeverityWarn}, 4),
	}

	canvas := make([]string, 24)
	o.placeToasts(canvas, 80, 24)

	assert.Empty(t, canvas[0], "margin row must stay clear")
	assert.NotEmpty(t, canvas[toastMarginY], "first toast row")
	assert.NotEmpty(t, canvas[toastMarginY+toastHeight+toastSpacing], "second toast row")

	// Anchored to the right edge.
	wantCol := 80 - toastWidth - toastMarginX
	assert.True(t, strings.HasPrefix(canvas[toastMarginY], strings.Repeat(" ", wantCol)))
}

func TestPlaceToastsBottomLeft(t *testing.T) {
	_, o := newTestPipeline()
	o.SetCorner(CornerBottomLeft)
	o.toasts = []toast{
		newToast(fault.Event{Message: "a", Severity: fault.SeverityWarn}, 4),
		newToast(fault.Event{Message: "b", Severity: fault.SeverityWarn}, 4),
	}

	canvas := make([]string, 24)
	o.placeToasts(canvas, 80, 24)

	firstTop := 24 - toastMarginY - toastHeight
	secondTop := firstTop - toastHeight - toastSpacing
	assert.NotEmpty(t, canvas[firstTop], "newest stack slot")
	assert.NotEmpty(t, canvas[secondTop], "second stack slot")
	assert.Empty(t, canvas[23], "margin row must stay clear")
}

func TestPlaceToastsSkipsOverflow(t *testing.T) {
	_, o := newTestPipeline()
	for range 5 {
		o.toasts = append(o.toasts, newToast(fault.Event{Message: "x", Severity: fault.SeverityInfo}, 4))
	}

	// Only one slot fits in a 10-row terminal.
	canvas := make([]string, 10)
	o.placeToasts(canvas, 80, 10)

	drawn := 0
	for _, line := range canvas {
		if line != "" {
			drawn++
		}
	}
	assert.Equal(t, toastHeight, drawn, "exactly one box drawn")
}
