// Package errmsg turns internal errors into the one-line messages shown
// in toasts and the journal. Every message reads "Failed to <op>", so
// the operator sees what was attempted, not a stack of wrapped causes.
package errmsg

import "fmt"

// Op is the verb phrase naming what was being attempted.
type Op string

const (
	// Run operations
	OpRunOpen        Op = "open run directory"
	OpRunWatch       Op = "watch run directory"
	OpMetricsRead    Op = "read metrics stream"
	OpCheckpointList Op = "list checkpoints"

	// Session operations
	OpSessionLoad Op = "load session state"
	OpSessionSave Op = "save session state"

	// Config operations
	OpConfigLoad Op = "load configuration"

	// Fault surface operations
	OpClipboardCopy Op = "copy to clipboard"
	OpJournalWrite  Op = "record fault event"
	OpNotifySend    Op = "send desktop notification"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format renders err for display. A nil err formats to "".
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith quotes the object of the operation, usually a path or
// pattern, after the verb phrase.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
