// Package overlay composes floating layers over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws layer on top of base. Only visually non-empty layer
// lines replace base content, so blank regions of the layer let the
// view underneath show through. Both strings may carry ANSI styling.
func Compose(base, layer string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(layer, "\n") {
		if i >= len(baseLines) {
			break
		}
		if patched, ok := composeLine(baseLines[i], line, width); ok {
			baseLines[i] = patched
		}
	}
	return strings.Join(baseLines, "\n")
}

// composeLine splices the visible span of overlayLine into baseLine.
// The bool is false when the overlay line has no visible content.
func composeLine(baseLine, overlayLine string, width int) (string, bool) {
	plain := ansi.Strip(overlayLine)
	if strings.TrimSpace(plain) == "" {
		return "", false
	}
	start, end := visibleSpan(plain)
	patch := ansi.Cut(overlayLine, start, end)

	if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}

	// Cutting through a wide rune (a severity icon, say) can leave the
	// prefix or suffix a column short or long; compensate so columns to
	// the right of the patch stay aligned.
	prefix := ansi.Cut(baseLine, 0, start)
	if w := ansi.StringWidth(ansi.Strip(prefix)); w < start {
		prefix += strings.Repeat(" ", start-w)
	}

	result := prefix + patch
	if end < width {
		suffix := ansi.Cut(baseLine, end, width)
		wantWidth := width - end
		switch w := ansi.StringWidth(ansi.Strip(suffix)); {
		case w > wantWidth:
			suffix = " " + ansi.Cut(suffix, w-wantWidth+1, w)
		case w < wantWidth:
			result += strings.Repeat(" ", wantWidth-w)
		}
		result += suffix
	}
	return result, true
}

// visibleSpan returns the display-column range holding non-space
// content in a plain, ANSI-stripped line.
func visibleSpan(plain string) (start, end int) {
	for _, r := range plain {
		if r != ' ' {
			break
		}
		start++
	}
	return start, ansi.StringWidth(strings.TrimRight(plain, " "))
}
