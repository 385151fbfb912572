package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adrg/xdg"
	"go.uber.org/zap"

	"github.com/mgrellier/lumen/internal/app"
	"github.com/mgrellier/lumen/internal/config"
	"github.com/mgrellier/lumen/internal/errmsg"
	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/icons"
	"github.com/mgrellier/lumen/internal/journal"
	"github.com/mgrellier/lumen/internal/notify"
	"github.com/mgrellier/lumen/internal/state"
	"github.com/mgrellier/lumen/internal/stderr"
	"github.com/mgrellier/lumen/internal/visual"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	icons.Init(cfg.Icons)

	logger, logPath, err := openLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	stateMgr, err := state.Open()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	handler := fault.NewHandler()
	fc := cfg.GetFaults()
	handler.SetPanicOnCritical(fc.PanicOnCritical)

	// Journal first in observer order: every fault is on disk even if
	// rendering dies.
	j := journal.New(stateMgr.DB(), logger)
	defer j.Close()
	handler.AddObserver(j.OnEvent)

	overlay := visual.New(handler)
	overlay.SetMaxToasts(fc.MaxToasts)
	overlay.SetToastLifetime(fc.ToastLifetimeSeconds)
	overlay.SetCorner(visual.ParseCorner(fc.PositionCorner))
	overlay.SetEnabled(cfg.FaultsEnabled())
	overlay.SetLogPath(logPath)

	// Native stderr capture: whatever the runtime or linked libraries
	// write to fd 2 comes back as warning faults.
	if err := stderr.Start(); err != nil {
		handler.Check(err)
	}
	defer stderr.Stop()

	var notifier notify.Notifier
	if cfg.NotificationsEnabled() {
		notifier, err = notify.New()
		if err != nil {
			handler.Check(err)
		}
	}

	var runDir string
	if len(os.Args) > 1 {
		runDir = os.Args[1]
	}

	m, err := app.New(cfg, app.Deps{
		Handler:  handler,
		Overlay:  overlay,
		Journal:  j,
		StateMgr: stateMgr,
		Notifier: notifier,
	}, runDir)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// openLogger builds the file logger. Nothing may write to the terminal
// while the TUI owns it, so output goes to the XDG state dir.
func openLogger() (*zap.Logger, string, error) {
	path, err := xdg.StateFile("lumen/lumen.log")
	if err != nil {
		return nil, "", err
	}

	logConfig := zap.NewProductionConfig()
	logConfig.OutputPaths = []string{path}
	logConfig.ErrorOutputPaths = []string{path}
	logger, err := logConfig.Build()
	if err != nil {
		return nil, "", err
	}
	return logger, path, nil
}
