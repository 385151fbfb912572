package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/ui/popup"
)

// specialKeys maps the key names tests use to their non-rune types.
var specialKeys = map[string]tea.KeyType{
	"enter": tea.KeyEnter,
	"esc":   tea.KeyEscape,
	"tab":   tea.KeyTab,
	"up":    tea.KeyUp,
	"down":  tea.KeyDown,
}

// PopupHarness drives a popup.Popup in tests: it feeds key presses
// through Update, collects the commands that come back, and exposes the
// rendered view for assertions.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness wraps p, calling its Init and capturing any command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the wrapped popup for type assertions when needed.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View renders the wrapped popup.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg delivers any message to the popup and returns the resulting
// command, which is also recorded.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates one key press. Named keys (enter, esc, tab, up,
// down) become their special types; anything else is typed as runes.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	if keyType, ok := specialKeys[key]; ok {
		return h.SendMsg(tea.KeyMsg{Type: keyType})
	}
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// LastCommand hands back the newest recorded command, nil when the
// popup has produced none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ExecuteCmd runs a command and returns the message it produces, which
// is how tests follow a popup's async action round-trip.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// AssertViewContains returns an error message if the view lacks substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}
