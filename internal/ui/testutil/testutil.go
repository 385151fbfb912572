// Package testutil provides shared helpers for UI component tests.
package testutil

import (
	"regexp"
	"strings"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI style codes so tests can assert on rendered
// text without the lipgloss escape sequences in the way.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// FindLine returns the first line containing substr, or the empty
// string. Assertions on a single line survive layout changes elsewhere
// in the view.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// AssertContains returns an error message if the ANSI-stripped output
// does not contain substr, or "" if it does.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}
