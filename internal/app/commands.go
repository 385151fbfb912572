// internal/app/commands.go
package app

import (
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/errmsg"
	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/journal"
	"github.com/mgrellier/lumen/internal/run"
	"github.com/mgrellier/lumen/internal/stderr"
)

// TickCmd schedules the next frame at the given rate.
func TickCmd(fps int) tea.Cmd {
	if fps < 1 || fps > 120 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForChannel returns a command that blocks until a value arrives on
// ch, then converts it with onResult. A closed channel yields nil.
func waitForChannel[T any](ch <-chan T, onResult func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return onResult(v)
	}
}

// watchMonitor arms a listener for the next coalesced monitor update.
func watchMonitor(mon *run.Monitor) tea.Cmd {
	if mon == nil {
		return nil
	}
	return waitForChannel(mon.Updates(), func(struct{}) tea.Msg {
		return MonitorUpdateMsg{}
	})
}

// WatchStderr listens for captured native stderr lines.
func WatchStderr() tea.Cmd {
	return waitForChannel(stderr.Messages, func(line string) tea.Msg {
		return StderrMsg{Line: line}
	})
}

// watchCriticals listens for critical events forwarded by the handler
// observer registered in New.
func (m Model) watchCriticals() tea.Cmd {
	return waitForChannel(m.criticals, func(e fault.Event) tea.Msg {
		return CriticalMsg{Event: e}
	})
}

// openRunCmd builds a monitor for dir off the update goroutine.
func openRunCmd(dir string, opts run.Options, h *fault.Handler) tea.Cmd {
	return func() tea.Msg {
		mon, err := run.NewMonitor(dir, opts, h)
		return RunOpenedMsg{Monitor: mon, Path: dir, Err: err}
	}
}

// fetchTotalsCmd reads lifetime fault totals from the journal.
func fetchTotalsCmd(j *journal.Journal) tea.Cmd {
	if j == nil {
		return nil
	}
	return func() tea.Msg {
		t, err := j.Totals()
		return TotalsMsg{Totals: t, Err: err}
	}
}

// copyCheckpointCmd puts the checkpoint's full path on the clipboard.
// The confirmation round-trips through the fault pipeline so it shows
// up as a toast.
func copyCheckpointCmd(dir string, ck run.Checkpoint, h *fault.Handler) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, ck.Name)
		if err := clipboard.WriteAll(path); err != nil {
			h.Report(errmsg.Format(errmsg.OpClipboardCopy, err), fault.SeverityWarn)
			return nil
		}
		h.Report("Checkpoint path copied", fault.SeverityInfo)
		return nil
	}
}
