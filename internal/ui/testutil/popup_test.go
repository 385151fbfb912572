package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/ui/popup"
)

// fakeDialog stands in for a real popup so the harness itself can be
// exercised. It records every key it sees and emits a command on enter.
type fakeDialog struct {
	content string
	width   int
	height  int
	keys    []string
}

var _ popup.Popup = (*fakeDialog)(nil)

func newFakeDialog(content string) *fakeDialog {
	return &fakeDialog{content: content}
}

func (d *fakeDialog) Init() tea.Cmd {
	return func() tea.Msg { return "ready" }
}

func (d *fakeDialog) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		d.keys = append(d.keys, key.String())
		if key.Type == tea.KeyEnter {
			return d, func() tea.Msg { return "dismissed" }
		}
	}
	return d, nil
}

func (d *fakeDialog) View() string {
	return d.content
}

func (d *fakeDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func TestNewPopupHarness(t *testing.T) {
	dialog := newFakeDialog("critical: CUDA out of memory")
	h := NewPopupHarness(dialog)

	if h.Popup() != dialog {
		t.Error("Popup() should return the wrapped popup")
	}

	// The init command is captured like any other.
	if cmd := h.LastCommand(); cmd == nil {
		t.Error("expected the init command to be recorded")
	} else if msg := ExecuteCmd(cmd); msg != "ready" {
		t.Errorf("init command result = %v, want ready", msg)
	}
}

func TestPopupHarness_View(t *testing.T) {
	const content = "filesystem_error at tailer.go:42"
	h := NewPopupHarness(newFakeDialog(content))

	if h.View() != content {
		t.Errorf("View() = %q, want %q", h.View(), content)
	}
}

func TestPopupHarness_SendKeyRunes(t *testing.T) {
	dialog := newFakeDialog("fault list")
	h := NewPopupHarness(dialog)

	h.SendKey("j")
	h.SendKey("k")

	if len(dialog.keys) != 2 {
		t.Fatalf("keys seen = %d, want 2", len(dialog.keys))
	}
	if dialog.keys[0] != "j" || dialog.keys[1] != "k" {
		t.Errorf("keys = %v, want [j, k]", dialog.keys)
	}
}

func TestPopupHarness_SendKeyNamed(t *testing.T) {
	dialog := newFakeDialog("fault list")
	h := NewPopupHarness(dialog)

	want := []string{"enter", "esc", "up", "down", "tab"}
	for _, key := range want {
		h.SendKey(key)
	}

	if len(dialog.keys) != len(want) {
		t.Fatalf("keys seen = %d, want %d", len(dialog.keys), len(want))
	}
	for i, w := range want {
		if dialog.keys[i] != w {
			t.Errorf("key %d = %q, want %q", i, dialog.keys[i], w)
		}
	}
}

func TestPopupHarness_LastCommand(t *testing.T) {
	dialog := newFakeDialog("fault modal")
	h := NewPopupHarness(dialog)

	h.SendKey("enter")

	last := h.LastCommand()
	if last == nil {
		t.Fatal("LastCommand() returned nil")
	}
	if msg := ExecuteCmd(last); msg != "dismissed" {
		t.Errorf("command result = %v, want dismissed", msg)
	}
}

func TestPopupHarness_LastCommandEmpty(t *testing.T) {
	h := &PopupHarness{popup: newFakeDialog("fault modal")}

	if h.LastCommand() != nil {
		t.Error("LastCommand() should be nil before any command")
	}
}

func TestPopupHarness_AssertViewContains(t *testing.T) {
	h := NewPopupHarness(newFakeDialog("loss spike at iter 4200"))

	if err := h.AssertViewContains("iter 4200"); err != "" {
		t.Errorf("unexpected failure: %s", err)
	}
	if err := h.AssertViewContains("iter 9999"); err == "" {
		t.Error("expected a failure message for missing content")
	}
}

func TestExecuteCmd_Nil(t *testing.T) {
	if msg := ExecuteCmd(nil); msg != nil {
		t.Errorf("ExecuteCmd(nil) = %v, want nil", msg)
	}
}
