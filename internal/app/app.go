// internal/app/app.go
package app

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/config"
	"github.com/mgrellier/lumen/internal/errmsg"
	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/journal"
	"github.com/mgrellier/lumen/internal/keymap"
	"github.com/mgrellier/lumen/internal/notify"
	"github.com/mgrellier/lumen/internal/run"
	"github.com/mgrellier/lumen/internal/state"
	"github.com/mgrellier/lumen/internal/ui/ckpanel"
	"github.com/mgrellier/lumen/internal/ui/headerbar"
	"github.com/mgrellier/lumen/internal/ui/layout"
	"github.com/mgrellier/lumen/internal/ui/trainpanel"
	"github.com/mgrellier/lumen/internal/visual"
)

// criticalBuffer bounds the critical forwarding channel. The observer
// drops instead of blocking when the update loop falls behind.
const criticalBuffer = 8

// Deps are the long-lived subsystems constructed in main and shared
// with the application model.
type Deps struct {
	Handler  *fault.Handler
	Overlay  *visual.Overlay
	Journal  *journal.Journal
	StateMgr state.Interface
	Notifier notify.Notifier
}

// Model is the bubbletea root: everything the monitor knows hangs off
// it, so Update stays the only writer.
type Model struct {
	Config   *config.Config
	Handler  *fault.Handler
	Overlay  *visual.Overlay
	Journal  *journal.Journal
	StateMgr state.Interface
	Monitor  *run.Monitor
	Keys     *keymap.Resolver
	CkPanel  ckpanel.Model
	Popups   *popupManager
	RunDir   string
	Width    int
	Height   int

	Notifier       notify.Notifier
	notifyConfig   config.NotificationsConfig
	notifyEnabled  bool
	lastCriticalID uint32

	criticals chan fault.Event

	lastTick     time.Time
	overlayLayer string
}

// New creates the application model from configuration. A run directory
// that cannot be watched is reported through the fault pipeline rather
// than aborting startup; the run picker can open another one.
func New(cfg *config.Config, deps Deps, runDir string) (Model, error) {
	// Start dir: explicit argument > saved session > config > cwd.
	dir := runDir
	var savedStatsVisible bool
	sess, err := deps.StateMgr.GetSession()
	if err != nil {
		deps.Handler.Report(errmsg.Format(errmsg.OpSessionLoad, err), fault.SeverityWarn)
	} else if sess != nil {
		if dir == "" && sess.RunDir != "" {
			if _, statErr := os.Stat(sess.RunDir); statErr == nil {
				dir = sess.RunDir
			}
		}
		savedStatsVisible = sess.StatsVisible
	}
	if dir == "" {
		dir = cfg.DefaultRun
	}
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return Model{}, err
		}
	}

	m := Model{
		Config:        cfg,
		Handler:       deps.Handler,
		Overlay:       deps.Overlay,
		Journal:       deps.Journal,
		StateMgr:      deps.StateMgr,
		Keys:          keymap.NewResolver(keymap.ByContext("global")),
		CkPanel:       ckpanel.New(),
		Popups:        newPopupManager(),
		RunDir:        dir,
		Notifier:      deps.Notifier,
		notifyConfig:  cfg.GetNotifications(),
		notifyEnabled: cfg.NotificationsEnabled(),
		criticals:     make(chan fault.Event, criticalBuffer),
	}

	// Forward criticals into the update loop. Observers must not block,
	// so a full buffer drops; the modal has the event regardless.
	ch := m.criticals
	deps.Handler.AddObserver(func(e fault.Event) {
		if e.Severity != fault.SeverityCritical {
			return
		}
		select {
		case ch <- e:
		default:
		}
	})

	if savedStatsVisible {
		deps.Overlay.ToggleStats()
	}

	mon, err := run.NewMonitor(dir, m.monitorOptions(), deps.Handler)
	if err != nil {
		deps.Handler.Report(errmsg.FormatWith(errmsg.OpRunWatch, dir, err), fault.SeverityError)
	} else {
		m.Monitor = mon
	}

	m.CkPanel.SetFocused(true)
	m.refreshCheckpoints()

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		TickCmd(m.Config.RefreshFPS),
		WatchStderr(),
		m.watchCriticals(),
	}
	if m.Monitor != nil {
		cmds = append(cmds, watchMonitor(m.Monitor))
	}
	if m.Overlay.StatsVisible() {
		cmds = append(cmds, fetchTotalsCmd(m.Journal))
	}
	return tea.Batch(cmds...)
}

func (m Model) monitorOptions() run.Options {
	return run.Options{
		MetricsFile:    m.Config.MetricsFile,
		CheckpointGlob: m.Config.CheckpointGlob,
	}
}

// refreshCheckpoints reloads the checkpoint listing from the run dir.
func (m *Model) refreshCheckpoints() {
	if m.Monitor == nil {
		return
	}
	cks, err := m.Monitor.Checkpoints()
	if err != nil {
		m.Handler.Check(err)
		return
	}
	m.CkPanel.SetCheckpoints(cks)
}

// resizePanels recomputes panel dimensions from the terminal size.
func (m *Model) resizePanels() {
	narrow := layout.IsNarrowMode(m.Width)
	content := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: FooterHeight,
	})
	m.CkPanel.SetSize(
		layout.CheckpointWidth(m.Width, narrow, true),
		layout.CheckpointHeight(content, trainpanel.Height, narrow, true),
	)
}

func (m *Model) saveSession() {
	if m.StateMgr == nil {
		return
	}
	m.StateMgr.SaveSession(state.SessionState{
		RunDir:       m.RunDir,
		StatsVisible: m.Overlay.StatsVisible(),
	})
}

// helpContexts lists the binding groups shown in the help popup.
func helpContexts() []string {
	return []string{"global", "modal", "stats"}
}
