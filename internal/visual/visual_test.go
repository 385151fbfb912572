package visual

import (
	"io/fs"
	"strings"
	"syscall"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/mgrellier/lumen/internal/fault"
)

func newTestPipeline() (*fault.Handler, *Overlay) {
	h := fault.NewHandler()
	return h, New(h)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestToastQueueEviction(t *testing.T) {
	h, o := newTestPipeline()
	o.SetMaxToasts(2)

	h.Report("A", fault.SeverityWarn)
	h.Report("B", fault.SeverityWarn)
	h.Report("C", fault.SeverityWarn)

	if got := o.ActiveToasts(); got != 2 {
		t.Fatalf("ActiveToasts = %d, want 2", got)
	}
	if o.toasts[0].message != "B" || o.toasts[1].message != "C" {
		t.Errorf("queue = [%s %s], want [B C]", o.toasts[0].message, o.toasts[1].message)
	}
}

func TestCriticalClaimsModalSlot(t *testing.T) {
	h, o := newTestPipeline()

	h.Report("first failure", fault.SeverityCritical)
	h.Report("second failure", fault.SeverityCritical)

	if !o.ModalActive() {
		t.Fatal("expected a pending modal")
	}
	if o.modal.Message != "second failure" {
		t.Errorf("modal holds %q, want the latest critical", o.modal.Message)
	}
	if got := o.ReplacedCriticals(); got != 1 {
		t.Errorf("ReplacedCriticals = %d, want 1", got)
	}
	if got := o.ActiveToasts(); got != 0 {
		t.Errorf("ActiveToasts = %d, criticals must never queue", got)
	}
	if got := o.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount = %d, want 2", got)
	}
}

func TestToastExpiry(t *testing.T) {
	h, o := newTestPipeline()

	h.Report("disk slow", fault.SeverityWarn)

	o.Render(3.95, 80, 24)
	if got := o.ActiveToasts(); got != 1 {
		t.Fatalf("ActiveToasts = %d, want 1 before expiry", got)
	}
	if a := o.toasts[0].alpha(); a >= 1 {
		t.Errorf("alpha = %v, want < 1 while fading out", a)
	}

	o.Render(0.2, 80, 24)
	if got := o.ActiveToasts(); got != 0 {
		t.Fatalf("ActiveToasts = %d, want 0 after expiry", got)
	}

	// An expired toast must not reappear on later frames.
	o.Render(0.016, 80, 24)
	if got := o.ActiveToasts(); got != 0 {
		t.Errorf("ActiveToasts = %d after another frame, want 0", got)
	}
}

func TestFilesystemFaultEndToEnd(t *testing.T) {
	h, o := newTestPipeline()

	load := fault.Wrap(h, func() ([]byte, error) {
		return nil, &fs.PathError{Op: "open", Path: "metrics.jsonl", Err: syscall.ENOENT}
	})
	if got := load(); got != nil {
		t.Fatalf("got %v, want zero value", got)
	}

	if got := o.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount = %d, want 1", got)
	}
	if got := o.ActiveToasts(); got != 1 {
		t.Fatalf("ActiveToasts = %d, want 1", got)
	}
	if got := o.toasts[0].category; got != fault.CategoryFilesystem {
		t.Errorf("category = %q, want %q", got, fault.CategoryFilesystem)
	}
	if got := o.toasts[0].severity; got != fault.SeverityError {
		t.Errorf("severity = %v, want SeverityError", got)
	}

	// Fading near the end of life, gone right after.
	o.Render(3.9, 80, 24)
	if got := o.ActiveToasts(); got != 1 {
		t.Fatalf("ActiveToasts = %d, want 1 at 0.1s remaining", got)
	}
	if a := o.toasts[0].alpha(); a >= 1 {
		t.Errorf("alpha = %v, want < 1", a)
	}
	o.Render(0.2, 80, 24)
	if got := o.ActiveToasts(); got != 0 {
		t.Errorf("ActiveToasts = %d, want 0", got)
	}
}

func TestClearEmptiesQueueAndModal(t *testing.T) {
	h, o := newTestPipeline()

	h.Report("boom", fault.SeverityCritical)
	h.Report("w1", fault.SeverityWarn)
	h.Report("w2", fault.SeverityWarn)

	o.Clear()

	if o.ModalActive() {
		t.Error("modal still pending after Clear")
	}
	if got := o.ActiveToasts(); got != 0 {
		t.Errorf("ActiveToasts = %d, want 0", got)
	}
	if out := o.Render(0.016, 80, 24); out != "" {
		t.Errorf("Render = %q, want empty layer", out)
	}
	// Lifetime counters survive a clear.
	if got := o.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount = %d, want 1", got)
	}
	if got := o.WarningCount(); got != 2 {
		t.Errorf("WarningCount = %d, want 2", got)
	}
}

func TestDisabledOverlayDropsEvents(t *testing.T) {
	h, o := newTestPipeline()
	o.SetEnabled(false)

	h.Report("ignored", fault.SeverityError)
	h.Report("ignored too", fault.SeverityCritical)

	if got := o.ActiveToasts(); got != 0 {
		t.Errorf("ActiveToasts = %d, want 0", got)
	}
	if o.ModalActive() {
		t.Error("modal must not open while disabled")
	}
	if got := o.ErrorCount(); got != 0 {
		t.Errorf("ErrorCount = %d, want 0", got)
	}
	if out := o.Render(0.016, 80, 24); out != "" {
		t.Errorf("Render = %q, want empty", out)
	}

	o.SetEnabled(true)
	h.Report("seen", fault.SeverityError)
	if got := o.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount = %d after re-enable, want 1", got)
	}
}

func TestRenderLayer(t *testing.T) {
	h, o := newTestPipeline()

	h.Report("low VRAM", fault.SeverityWarn)

	out := o.Render(0.016, 80, 24)
	if out == "" {
		t.Fatal("expected a non-empty layer")
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "low VRAM") {
		t.Error("layer missing toast message")
	}
	if !strings.Contains(plain, fault.CategoryManual) {
		t.Error("layer missing toast category")
	}
	if got := len(strings.Split(out, "\n")); got != 24 {
		t.Errorf("layer has %d lines, want 24", got)
	}
}

func TestModalKeys(t *testing.T) {
	h, o := newTestPipeline()
	h.Report("corrupted checkpoint", fault.SeverityCritical)

	// Copy keeps the modal open and yields a command.
	handled, cmd := o.HandleKey(keyRune('c'))
	if !handled {
		t.Fatal("modal must swallow keys")
	}
	if cmd == nil {
		t.Error("copy should produce a command")
	}
	if !o.ModalActive() {
		t.Error("copy must not dismiss the modal")
	}

	// Unbound keys are swallowed while the modal is open.
	if handled, _ := o.HandleKey(keyRune('z')); !handled {
		t.Error("unbound key leaked through the modal")
	}

	// Continue dismisses.
	handled, _ = o.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !handled {
		t.Fatal("enter not handled")
	}
	if o.ModalActive() {
		t.Error("modal still open after continue")
	}
}

func TestViewLogsReportsPath(t *testing.T) {
	h, o := newTestPipeline()
	o.SetLogPath("/tmp/lumen.log")
	h.Report("boom", fault.SeverityCritical)

	handled, cmd := o.HandleKey(keyRune('l'))
	if !handled || cmd == nil {
		t.Fatal("view-logs should be handled and produce a command")
	}
	cmd()

	// The path comes back through the pipeline as an info toast.
	if got := o.ActiveToasts(); got != 1 {
		t.Fatalf("ActiveToasts = %d, want 1", got)
	}
	if got := o.toasts[0].message; !strings.Contains(got, "/tmp/lumen.log") {
		t.Errorf("toast message = %q, want the log path", got)
	}
	if got := o.InfoCount(); got != 1 {
		t.Errorf("InfoCount = %d, want 1", got)
	}
}

func TestStatsPanelKeys(t *testing.T) {
	h, o := newTestPipeline()
	h.Report("boom", fault.SeverityCritical)
	h.Report("w", fault.SeverityWarn)
	o.ToggleStats()

	// Clear All wipes queue and modal but keeps the panel open.
	handled, _ := o.HandleKey(keyRune('x'))
	if !handled {
		t.Fatal("x not handled by stats panel")
	}
	if o.ModalActive() || o.ActiveToasts() != 0 {
		t.Error("clear all left faults behind")
	}
	if !o.StatsVisible() {
		t.Error("clear all should not close the panel")
	}

	handled, _ = o.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatal("esc not handled by stats panel")
	}
	if o.StatsVisible() {
		t.Error("stats panel still open after esc")
	}
}

func TestStatsPanelRender(t *testing.T) {
	h, o := newTestPipeline()
	h.Report("e", fault.SeverityError)
	h.Report("w", fault.SeverityWarn)
	o.ToggleStats()

	plain := ansi.Strip(o.Render(0.016, 80, 24))
	if !strings.Contains(plain, "Fault Statistics") {
		t.Error("stats panel title missing")
	}
	if !strings.Contains(plain, "Errors") || !strings.Contains(plain, "Warnings") {
		t.Error("stats panel rows missing")
	}
}

func TestHandleKeyPassthrough(t *testing.T) {
	_, o := newTestPipeline()

	handled, cmd := o.HandleKey(keyRune('j'))
	if handled || cmd != nil {
		t.Error("keys must pass through when nothing is open")
	}
}

func TestSetMaxToastsShrinksQueue(t *testing.T) {
	h, o := newTestPipeline()
	h.Report("first", fault.SeverityInfo)
	h.Report("second", fault.SeverityInfo)
	h.Report("third", fault.SeverityInfo)

	o.SetMaxToasts(1)

	if got := o.ActiveToasts(); got != 1 {
		t.Fatalf("ActiveToasts = %d, want 1", got)
	}
	if got := o.toasts[0].message; got != "third" {
		t.Errorf("kept %q, want the newest toast", got)
	}
}

func TestParseCorner(t *testing.T) {
	tests := []struct {
		in   string
		want Corner
	}{
		{"top-right", CornerTopRight},
		{"top-left", CornerTopLeft},
		{"bottom-right", CornerBottomRight},
		{"bottom-left", CornerBottomLeft},
		{"", CornerTopRight},
		{"middle", CornerTopRight},
	}
	for _, tt := range tests {
		if got := ParseCorner(tt.in); got != tt.want {
			t.Errorf("ParseCorner(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
