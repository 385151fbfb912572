package ckpanel

import (
	"github.com/mgrellier/lumen/internal/run"
	"github.com/mgrellier/lumen/internal/ui/action"
)

// Open is emitted when the user activates a checkpoint.
type Open struct {
	Checkpoint run.Checkpoint
}

// ActionType implements action.Action.
func (a Open) ActionType() string { return "ckpanel.open" }

// ActionMsg tags a ckpanel action with its source.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "ckpanel", Action: a}
}
