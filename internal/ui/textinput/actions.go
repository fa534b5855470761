package textinput

// source identifies this component in action.Msg.
const source = "textinput"

// Result contains the text input result.
type Result struct {
	Text     string
	Canceled bool // True if user pressed Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "textinput.result" }
