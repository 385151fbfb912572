package runpicker

import (
	"github.com/mgrellier/lumen/internal/ui/action"
)

// Result contains the run picker outcome.
type Result struct {
	Path     string
	Canceled bool // True if user pressed Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "runpicker.result" }

// ActionMsg tags a runpicker action with its source.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "runpicker", Action: a}
}
