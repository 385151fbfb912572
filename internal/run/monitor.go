package run

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mgrellier/lumen/internal/fault"
)

// pollInterval is the sweep for appends fsnotify did not surface.
const pollInterval = 500 * time.Millisecond

// Options configures a Monitor.
type Options struct {
	MetricsFile    string // metrics stream filename inside the run dir
	CheckpointGlob string // pattern matched against checkpoint filenames
}

// Monitor watches one run directory. Metrics appends update the shared
// Progress; checkpoint churn and fresh samples are coalesced into the
// Updates channel. Every failure goes through the fault handler.
type Monitor struct {
	dir         string
	metricsName string
	ckGlob      string

	handler  *fault.Handler
	progress *Progress
	tailer   *Tailer
	watcher  *fsnotify.Watcher

	updates   chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewMonitor starts watching dir. The directory must exist.
func NewMonitor(dir string, opts Options, h *fault.Handler) (*Monitor, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, errors.New("run path is not a directory: " + dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	m := &Monitor{
		dir:         dir,
		metricsName: opts.MetricsFile,
		ckGlob:      opts.CheckpointGlob,
		handler:     h,
		progress:    &Progress{},
		tailer:      NewTailer(filepath.Join(dir, opts.MetricsFile)),
		watcher:     watcher,
		updates:     make(chan struct{}, 1),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	go m.loop()
	return m, nil
}

// Dir returns the watched run directory.
func (m *Monitor) Dir() string {
	return m.dir
}

// Updates signals that progress or checkpoints changed. Coalesced: a
// pending signal absorbs later ones until received. Closed when the
// monitor shuts down.
func (m *Monitor) Updates() <-chan struct{} {
	return m.updates
}

// Progress returns a snapshot of the training state.
func (m *Monitor) Progress() Snapshot {
	return m.progress.Snapshot()
}

// Checkpoints lists the run's checkpoint files, newest first.
func (m *Monitor) Checkpoints() ([]Checkpoint, error) {
	return ListCheckpoints(m.dir, m.ckGlob)
}

// Close stops the watch loop and releases the watcher. Safe to call
// more than once.
func (m *Monitor) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.stop)
		<-m.done
		err = m.watcher.Close()
	})
	return err
}

func (m *Monitor) loop() {
	defer close(m.done)
	// The loop goroutine is the only sender, so closing here is safe.
	defer close(m.updates)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	// Pick up whatever the trainer wrote before we attached.
	m.pollMetrics()

	for {
		select {
		case <-m.stop:
			return
		case ev, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			m.handleEvent(ev)
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.handler.Check(err)
		case <-ticker.C:
			m.pollMetrics()
		}
	}
}

func (m *Monitor) handleEvent(ev fsnotify.Event) {
	name := filepath.Base(ev.Name)

	if name == m.metricsName {
		if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
			m.pollMetrics()
		}
		return
	}

	if matched, _ := filepath.Match(m.ckGlob, name); matched {
		m.signal()
	}
}

func (m *Monitor) pollMetrics() {
	samples, bad, err := m.tailer.Poll()
	if err != nil {
		// The stream not existing yet is the normal pre-training state.
		if !errors.Is(err, fs.ErrNotExist) {
			m.handler.Check(err)
		}
		return
	}

	for _, e := range bad {
		m.handler.Check(e)
	}
	for _, s := range samples {
		m.progress.Update(s)
	}
	if len(samples) > 0 || len(bad) > 0 {
		m.signal()
	}
}

func (m *Monitor) signal() {
	select {
	case m.updates <- struct{}{}:
	default:
	}
}
