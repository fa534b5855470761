// Package action carries results from popups back to the app model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result emitted by a UI component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that emitted it.
type Msg struct {
	Source string // "textinput", "helpbindings"
	Action Action
}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
