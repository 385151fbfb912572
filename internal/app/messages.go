// internal/app/messages.go
package app

import (
	"time"

	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/journal"
	"github.com/mgrellier/lumen/internal/run"
)

// TickMsg drives the render clock. The wrapped time is when the tick
// fired and is used to measure the real interval between frames.
type TickMsg time.Time

// MonitorUpdateMsg signals that the run monitor coalesced new data.
type MonitorUpdateMsg struct{}

// StderrMsg carries one line captured from the process stderr stream.
type StderrMsg struct {
	Line string
}

// CriticalMsg carries a critical fault from the publishing goroutine
// into the update loop, where the desktop notification is sent.
type CriticalMsg struct {
	Event fault.Event
}

// RunOpenedMsg reports the outcome of opening a run directory.
type RunOpenedMsg struct {
	Monitor *run.Monitor
	Path    string
	Err     error
}

// TotalsMsg carries lifetime fault totals read from the journal.
type TotalsMsg struct {
	Totals journal.Totals
	Err    error
}
