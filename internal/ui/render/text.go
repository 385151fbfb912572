// Package render holds the width-aware string helpers the panels share.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and drops invalid
// UTF-8 bytes. Fault messages and captured trainer output can carry
// arbitrary bytes; rendering them raw would corrupt the terminal.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if r == utf8.RuneError {
			// Invalid bytes decode as RuneError with size 1. A genuine
			// replacement character decodes with size 3 and is kept.
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				continue
			}
		}
		switch {
		case r == ' ':
			b.WriteByte(' ')
		case r == '\t' || !unicode.IsControl(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// needsSanitize reports whether the string contains bytes Sanitize would
// touch, so clean strings skip the rebuild.
func needsSanitize(s string) bool {
	for i := range len(s) {
		switch b := s[i]; {
		case b < 0x20 && b != '\t':
			return true
		case b >= 0x80 && b <= 0x9f:
			return true
		case b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0:
			return true
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth, adding "..." if
// truncated. Wide characters (CJK, emoji) are measured by display width,
// and the input is sanitized first.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis shortens a string using a single character ellipsis,
// for narrow columns where three dots would eat too much of the value.
func TruncateEllipsis(s string, maxWidth int) string {
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills a string with spaces to reach the given display width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads so the
// output is exactly width columns wide.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row lays out left and right aligned content separated by at least one
// space, filling width columns when the parts fit.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the given width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// EmptyLine creates a line of spaces of the given width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", width)
}
