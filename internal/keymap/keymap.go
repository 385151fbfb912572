// Package keymap is the single table of key bindings, shared by input
// dispatch and the help popup.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "modal", "stats"
}

// All contains every key binding, used both for dispatch and for the
// help overlay.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"s"}, ActionToggleStats, "Fault statistics", "global"},
	{[]string{"o"}, ActionOpenRun, "Open run directory", "global"},
	{[]string{"t"}, ActionTestWarning, "Inject test warning", "global"},
	{[]string{"T"}, ActionTestCritical, "Inject test critical", "global"},

	// Critical modal
	{[]string{"enter", "esc"}, ActionDismiss, "Dismiss fault", "modal"},
	{[]string{"c"}, ActionCopyDetails, "Copy details", "modal"},
	{[]string{"l"}, ActionViewLogs, "Show log path", "modal"},

	// Statistics panel
	{[]string{"x"}, ActionClearFaults, "Clear all faults", "stats"},
	{[]string{"esc", "q"}, ActionCloseStats, "Close panel", "stats"},
}

// ByContext selects the bindings that apply in one input context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
