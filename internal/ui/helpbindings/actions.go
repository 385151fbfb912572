package helpbindings

import (
	"github.com/mgrellier/lumen/internal/ui/action"
)

// Close asks the app to dismiss the help popup.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

// ActionMsg tags a helpbindings action with its source.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}
