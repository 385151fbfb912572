// internal/app/update.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/errmsg"
	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/keymap"
	"github.com/mgrellier/lumen/internal/ui/action"
	"github.com/mgrellier/lumen/internal/ui/ckpanel"
	"github.com/mgrellier/lumen/internal/ui/helpbindings"
	"github.com/mgrellier/lumen/internal/ui/runpicker"
	"github.com/mgrellier/lumen/internal/visual"
)

// Update routes every message the program receives: terminal events,
// the render tick, and the watcher messages that re-arm themselves.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case MonitorUpdateMsg:
		m.refreshCheckpoints()
		return m, watchMonitor(m.Monitor)

	case StderrMsg:
		m.Handler.Report(msg.Line, fault.SeverityWarn)
		return m, WatchStderr()

	case CriticalMsg:
		m.sendCriticalNotification(msg.Event)
		return m, m.watchCriticals()

	case RunOpenedMsg:
		return m.handleRunOpened(msg)

	case TotalsMsg:
		return m.handleTotals(msg)

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)
	m.resizePanels()
	return m, nil
}

// handleTick advances the fault overlay by the measured frame interval
// and re-arms the clock. Rendering into overlayLayer here keeps View
// free of mutation.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	if m.Width > 0 {
		m.overlayLayer = m.Overlay.Render(dt, m.Width, m.Height)
	}
	return m, TickCmd(m.Config.RefreshFPS)
}

func (m Model) handleRunOpened(msg RunOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Handler.Report(errmsg.FormatWith(errmsg.OpRunOpen, msg.Path, msg.Err), fault.SeverityError)
		return m, nil
	}
	if m.Monitor != nil {
		if err := m.Monitor.Close(); err != nil {
			m.Handler.Check(err)
		}
	}
	m.Monitor = msg.Monitor
	m.RunDir = msg.Path
	m.refreshCheckpoints()
	m.saveSession()
	m.Handler.Report("Watching "+msg.Path, fault.SeverityInfo)
	return m, watchMonitor(m.Monitor)
}

func (m Model) handleTotals(msg TotalsMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Handler.Check(msg.Err)
		return m, nil
	}
	m.Overlay.SetLifetimeTotals(visual.LifetimeTotals{
		Errors:   msg.Totals.Errors,
		Warnings: msg.Totals.Warnings,
		Infos:    msg.Totals.Infos,
	})
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.Hide()
		return m, nil

	case runpicker.Result:
		m.Popups.Hide()
		if a.Canceled || a.Path == "" {
			return m, nil
		}
		return m, openRunCmd(a.Path, m.monitorOptions(), m.Handler)

	case ckpanel.Open:
		return m, copyCheckpointCmd(m.RunDir, a.Checkpoint, m.Handler)
	}
	return m, nil
}

// handleKeyMsg routes keys by priority: the fault overlay (critical
// modal, statistics panel) first, then the open popup, then global
// bindings, and finally the checkpoint panel.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Overlay.HandleKey(msg); handled {
		return m, cmd
	}
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	switch m.Keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.saveSession()
		return m, tea.Quit

	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp(helpContexts())

	case keymap.ActionToggleStats:
		m.Overlay.ToggleStats()
		m.saveSession()
		if m.Overlay.StatsVisible() {
			return m, fetchTotalsCmd(m.Journal)
		}
		return m, nil

	case keymap.ActionOpenRun:
		return m, m.Popups.ShowRunPicker(m.RunDir)

	case keymap.ActionTestWarning:
		m.Handler.Report("Synthetic warning fault", fault.SeverityWarn)
		return m, nil

	case keymap.ActionTestCritical:
		m.raiseSyntheticCritical()
		return m, nil
	}

	return m, m.CkPanel.Update(msg)
}

// criticalProbe is the value panicked by the critical injection key. A
// distinct type stays out of the string and error classification paths,
// landing in the unclassified branch like a foreign panic value would.
type criticalProbe string

// raiseSyntheticCritical drives a panic through the recovery path so
// the whole pipeline is exercised, not just Report.
func (m Model) raiseSyntheticCritical() {
	fault.WrapFunc(m.Handler, func() error {
		panic(criticalProbe("synthetic critical fault"))
	})()
}
