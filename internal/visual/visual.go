// Package visual renders fault events as transient toasts, a blocking
// critical modal and a statistics panel, composed over the base view.
package visual

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/errmsg"
	"github.com/mgrellier/lumen/internal/fault"
	"github.com/mgrellier/lumen/internal/ui/overlay"
)

// Corner selects where toasts stack on screen.
type Corner string

const (
	CornerTopRight    Corner = "top-right"
	CornerTopLeft     Corner = "top-left"
	CornerBottomRight Corner = "bottom-right"
	CornerBottomLeft  Corner = "bottom-left"
)

// ParseCorner maps a config string to a Corner, defaulting to top-right.
func ParseCorner(s string) Corner {
	switch Corner(s) {
	case CornerTopLeft, CornerBottomRight, CornerBottomLeft:
		return Corner(s)
	default:
		return CornerTopRight
	}
}

// Default tuning, overridable via the setters.
const (
	DefaultMaxToasts = 5
	DefaultLifetime  = 4.0
)

// Overlay turns fault events into on-screen state. OnEvent may be called
// from any goroutine; Render and HandleKey run on the UI goroutine. All
// shared state sits behind one mutex.
type Overlay struct {
	mu sync.Mutex

	handler *fault.Handler
	logPath string

	enabled   bool
	maxToasts int
	lifetime  float64
	corner    Corner

	toasts        []toast // head is oldest
	modal         *fault.Event
	showStats     bool
	journalTotals *LifetimeTotals

	errors            int
	warnings          int
	infos             int
	replacedCriticals int
}

// LifetimeTotals are journaled event counts across all sessions, shown in
// the statistics panel when available.
type LifetimeTotals struct {
	Errors   int
	Warnings int
	Infos    int
}

// New creates an overlay subscribed to the handler.
func New(h *fault.Handler) *Overlay {
	o := &Overlay{
		handler:   h,
		enabled:   true,
		maxToasts: DefaultMaxToasts,
		lifetime:  DefaultLifetime,
		corner:    CornerTopRight,
	}
	h.AddObserver(o.OnEvent)
	return o
}

// OnEvent receives a fault event. Critical events claim the single modal
// slot, replacing any pending one; everything else becomes a toast, with
// the oldest evicted once the queue is full.
func (o *Overlay) OnEvent(e fault.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.enabled {
		return
	}

	switch {
	case e.Severity >= fault.SeverityCritical:
		o.errors++
		if o.modal != nil {
			o.replacedCriticals++
		}
		ev := e
		o.modal = &ev
		return
	case e.Severity >= fault.SeverityError:
		o.errors++
	case e.Severity == fault.SeverityWarn:
		o.warnings++
	default:
		o.infos++
	}

	o.toasts = append(o.toasts, newToast(e, o.lifetime))
	for len(o.toasts) > o.maxToasts {
		o.toasts = o.toasts[1:]
	}
}

// Render advances toast lifetimes by dt seconds and returns the overlay
// layer for this frame, ready to be composed over the base view with
// overlay.Compose. Returns "" when there is nothing to draw.
func (o *Overlay) Render(dt float64, width, height int) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.enabled || width <= 0 || height <= 0 {
		return ""
	}

	o.advance(dt)

	if len(o.toasts) == 0 && o.modal == nil && !o.showStats {
		return ""
	}

	canvas := make([]string, height)
	o.placeToasts(canvas, width, height)
	layer := strings.Join(canvas, "\n")

	if o.showStats {
		layer = overlay.Compose(layer, o.renderStats(width, height), width, height)
	}
	if o.modal != nil {
		layer = overlay.Compose(layer, renderModal(*o.modal, width, height), width, height)
	}

	return layer
}

// advance ticks lifetimes down and drops expired toasts.
// Caller holds the mutex.
func (o *Overlay) advance(dt float64) {
	if dt <= 0 || len(o.toasts) == 0 {
		return
	}
	kept := o.toasts[:0]
	for _, t := range o.toasts {
		t.lifetime -= dt
		if t.lifetime > 0 {
			kept = append(kept, t)
		}
	}
	o.toasts = kept
}

// HandleKey routes a key press to the modal or the statistics panel.
// Returns false when neither is open and the key should go elsewhere.
func (o *Overlay) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	o.mu.Lock()

	if o.modal != nil {
		ev := *o.modal
		switch msg.String() {
		case "enter", "esc":
			o.modal = nil
			o.mu.Unlock()
			return true, nil
		case "c":
			o.mu.Unlock()
			return true, o.copyDetailsCmd(ev)
		case "l":
			path := o.logPath
			o.mu.Unlock()
			return true, o.viewLogsCmd(path)
		}
		o.mu.Unlock()
		return true, nil
	}

	if o.showStats {
		switch msg.String() {
		case "x":
			o.toasts = nil
			o.modal = nil
			o.mu.Unlock()
			return true, nil
		case "esc", "q":
			o.showStats = false
			o.mu.Unlock()
			return true, nil
		}
		o.mu.Unlock()
		return true, nil
	}

	o.mu.Unlock()
	return false, nil
}

// copyDetailsCmd writes the event details to the system clipboard.
// Runs outside the overlay lock; the confirmation round-trips through
// the fault pipeline so it shows up as a toast.
func (o *Overlay) copyDetailsCmd(e fault.Event) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(details(e)); err != nil {
			o.handler.Report(errmsg.Format(errmsg.OpClipboardCopy, err), fault.SeverityWarn)
			return nil
		}
		o.handler.Report("fault details copied to clipboard", fault.SeverityInfo)
		return nil
	}
}

func (o *Overlay) viewLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			o.handler.Report("no log file configured", fault.SeverityWarn)
			return nil
		}
		o.handler.Report("log file: "+path, fault.SeverityInfo)
		return nil
	}
}

// Clear empties the toast queue and dismisses any pending modal.
// Counters are lifetime totals and survive a clear.
func (o *Overlay) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.toasts = nil
	o.modal = nil
}

// ToggleStats shows or hides the statistics panel.
func (o *Overlay) ToggleStats() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.showStats = !o.showStats
}

// ModalActive reports whether a critical modal is waiting for dismissal.
func (o *Overlay) ModalActive() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.modal != nil
}

// StatsVisible reports whether the statistics panel is open.
func (o *Overlay) StatsVisible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.showStats
}

// SetMaxToasts caps the queue, evicting oldest toasts if already over.
func (o *Overlay) SetMaxToasts(n int) {
	if n < 1 {
		n = 1
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.maxToasts = n
	for len(o.toasts) > o.maxToasts {
		o.toasts = o.toasts[1:]
	}
}

// SetToastLifetime sets the initial lifetime, in seconds, for new toasts.
func (o *Overlay) SetToastLifetime(seconds float64) {
	if seconds <= 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lifetime = seconds
}

// SetCorner moves the toast stack to another screen corner.
func (o *Overlay) SetCorner(c Corner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.corner = c
}

// SetEnabled toggles the whole overlay. While disabled, events are
// dropped without counting and Render draws nothing.
func (o *Overlay) SetEnabled(enabled bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.enabled = enabled
}

// SetLogPath records the log file surfaced by the modal's view-logs action.
func (o *Overlay) SetLogPath(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.logPath = path
}

// SetLifetimeTotals supplies journaled counts for the statistics panel.
func (o *Overlay) SetLifetimeTotals(t LifetimeTotals) {
	o.mu.Lock()
	defer o.mu.Unlock()
	lt := t
	o.journalTotals = &lt
}

// ErrorCount returns the number of error and critical events seen.
func (o *Overlay) ErrorCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errors
}

// WarningCount returns the number of warn events seen.
func (o *Overlay) WarningCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.warnings
}

// InfoCount returns the number of info and lower events seen.
func (o *Overlay) InfoCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.infos
}

// ReplacedCriticals returns how many pending criticals were overwritten
// before being seen.
func (o *Overlay) ReplacedCriticals() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.replacedCriticals
}

// ActiveToasts returns the number of toasts currently alive.
func (o *Overlay) ActiveToasts() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.toasts)
}
