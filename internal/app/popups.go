// internal/app/popups.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrellier/lumen/internal/ui/helpbindings"
	"github.com/mgrellier/lumen/internal/ui/overlay"
	"github.com/mgrellier/lumen/internal/ui/popup"
	"github.com/mgrellier/lumen/internal/ui/runpicker"
)

// popupKind identifies which popup is open.
type popupKind int

const (
	popupNone popupKind = iota
	popupHelp
	popupRunPicker
)

// popupManager owns the single modal popup: showing, sizing, key
// routing and overlay rendering. Popups are exclusive; opening one
// replaces whatever was up.
type popupManager struct {
	kind   popupKind
	active popup.Popup
	width  int
	height int
}

func newPopupManager() *popupManager {
	return &popupManager{}
}

// SetSize records the terminal size and propagates it to the open popup.
func (p *popupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.active != nil {
		p.active.SetSize(width, height)
	}
}

// Active returns which popup is open.
func (p *popupManager) Active() popupKind {
	return p.kind
}

// ShowHelp opens the key binding reference for the given contexts.
func (p *popupManager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.show(popupHelp, &help)
}

// ShowRunPicker opens the run directory prompt prefilled with current.
func (p *popupManager) ShowRunPicker(current string) tea.Cmd {
	return p.show(popupRunPicker, runpicker.New(current))
}

// Hide closes the open popup.
func (p *popupManager) Hide() {
	p.kind = popupNone
	p.active = nil
}

func (p *popupManager) show(kind popupKind, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.kind = kind
	p.active = pop
	return pop.Init()
}

// HandleKey routes key events to the open popup.
// Returns (handled, cmd); handled is false when no popup is open.
func (p *popupManager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p.active == nil {
		return false, nil
	}
	updated, cmd := p.active.Update(msg)
	p.active = updated
	return true, cmd
}

// RenderOverlay draws the open popup centered over the base view.
func (p *popupManager) RenderOverlay(base string) string {
	if p.active == nil {
		return base
	}
	framed := popup.Frame(p.active.View(), p.width, p.height)
	return overlay.Compose(base, framed, p.width, p.height)
}
