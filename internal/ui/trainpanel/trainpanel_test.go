package trainpanel

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mgrellier/lumen/internal/icons"
	"github.com/mgrellier/lumen/internal/run"
)

// stripANSI removes ANSI escape codes from a string for easier testing.
func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

func init() {
	icons.Init("none")
}

func TestRenderWaiting(t *testing.T) {
	output := Render(run.Snapshot{}, 60, Height)
	stripped := stripANSI(output)

	if !strings.Contains(stripped, "waiting for metrics") {
		t.Errorf("empty snapshot should show waiting state, got: %s", stripped)
	}
	if got := len(strings.Split(output, "\n")); got != Height {
		t.Errorf("panel has %d lines, want %d", got, Height)
	}
}

func TestRenderProgress(t *testing.T) {
	s := run.Snapshot{
		Iteration:       1200,
		TotalIterations: 30000,
		SplatCount:      420000,
		Loss:            0.1843,
		Losses:          []float64{0.3, 0.25, 0.2, 0.1843},
		UpdatedAt:       time.Now(),
	}

	output := Render(s, 70, Height)
	stripped := stripANSI(output)

	for _, want := range []string{"1,200", "30,000", "420,000", "0.18430", "4%", "splats"} {
		if !strings.Contains(stripped, want) {
			t.Errorf("output missing %q, got: %s", want, stripped)
		}
	}
	if !strings.Contains(stripped, filledBlock) {
		t.Error("output missing progress bar fill")
	}
}

func TestRenderStalled(t *testing.T) {
	s := run.Snapshot{
		Iteration: 500,
		UpdatedAt: time.Now().Add(-time.Minute),
	}

	output := stripANSI(Render(s, 60, Height))
	if !strings.Contains(output, "stalled") {
		t.Errorf("old UpdatedAt should flag a stalled run, got: %s", output)
	}
}

func TestRenderNarrowWidth(t *testing.T) {
	if got := Render(run.Snapshot{}, 10, Height); got != "" {
		t.Errorf("Render on narrow width = %q, want empty", got)
	}
}

func TestRenderTallShowsChart(t *testing.T) {
	s := run.Snapshot{
		Iteration:       5000,
		TotalIterations: 30000,
		Loss:            0.12,
		Losses:          []float64{0.9, 0.7, 0.5, 0.3, 0.12},
		UpdatedAt:       time.Now(),
	}

	output := Render(s, 70, 14)
	stripped := stripANSI(output)

	if got := len(strings.Split(output, "\n")); got != 14 {
		t.Errorf("panel has %d lines, want 14", got)
	}
	if !strings.Contains(stripped, "min 0.12000") {
		t.Errorf("tall panel missing loss range, got: %s", stripped)
	}
	if !strings.Contains(stripped, "max 0.90000") {
		t.Errorf("tall panel missing loss range, got: %s", stripped)
	}
	// The max-loss column fills its rows completely.
	if !strings.Contains(stripped, "█") {
		t.Errorf("tall panel missing chart columns, got: %s", stripped)
	}
}

func TestRenderShortHeightClampsToCompact(t *testing.T) {
	output := Render(run.Snapshot{}, 60, 3)
	if got := len(strings.Split(output, "\n")); got != Height {
		t.Errorf("panel has %d lines, want %d", got, Height)
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   string
	}{
		{"empty", nil, 10, ""},
		{"zero width", []float64{1, 2}, 0, ""},
		{"min and max", []float64{0, 1}, 10, "▁█"},
		{"flat line", []float64{0.5, 0.5, 0.5}, 10, "▁▁▁"},
		{"window keeps tail", []float64{0, 0, 0, 1}, 2, "▁█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sparkline(tt.values, tt.width); got != tt.want {
				t.Errorf("sparkline(%v, %d) = %q, want %q", tt.values, tt.width, got, tt.want)
			}
		})
	}
}

func TestLossChart(t *testing.T) {
	rows := lossChart([]float64{0, 1}, 4, 2)

	if len(rows) != 2 {
		t.Fatalf("chart has %d rows, want 2", len(rows))
	}

	top := stripANSI(rows[0])
	bottom := stripANSI(rows[1])

	// Two columns right-aligned in a width of 4.
	if top != "   █" {
		t.Errorf("top row = %q, want %q", top, "   █")
	}
	// The min column keeps a single fill level in the bottom row.
	if bottom != "  ▁█" {
		t.Errorf("bottom row = %q, want %q", bottom, "  ▁█")
	}
}

func TestLossChartEmpty(t *testing.T) {
	rows := lossChart(nil, 6, 3)

	if len(rows) != 3 {
		t.Fatalf("chart has %d rows, want 3", len(rows))
	}
	for i, row := range rows {
		if stripANSI(row) != strings.Repeat(" ", 6) {
			t.Errorf("row %d = %q, want blank", i, row)
		}
	}
}
