package keymap

// Action names something a key press can do.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionToggleStats Action = "toggle_stats"
	ActionOpenRun     Action = "open_run"

	// Fault injection for pipeline checks
	ActionTestWarning  Action = "test_warning"
	ActionTestCritical Action = "test_critical"

	// Critical modal actions
	ActionDismiss     Action = "dismiss"
	ActionCopyDetails Action = "copy_details"
	ActionViewLogs    Action = "view_logs"

	// Statistics panel actions
	ActionClearFaults Action = "clear_faults"
	ActionCloseStats  Action = "close_stats"
)
