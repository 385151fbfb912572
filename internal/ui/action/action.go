// Package action carries component results up to the application loop.
package action

// Action is a result emitted by a UI component, such as a picked run
// directory or a closed popup. ActionType names it for logging.
type Action interface {
	ActionType() string
}

// Msg pairs an Action with the component that produced it. Components
// return it as a bubbletea message; the app routes on Source.
type Msg struct {
	Source string // "ckpanel", "runpicker", "helpbindings"
	Action Action
}
