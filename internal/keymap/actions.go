// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionSearch Action = "search"
	ActionHelp   Action = "help"

	// Grid navigation
	ActionMoveUp        Action = "move_up"
	ActionMoveDown      Action = "move_down"
	ActionMoveLeft      Action = "move_left"
	ActionMoveRight     Action = "move_right"
	ActionPageUp        Action = "page_up"
	ActionPageDown      Action = "page_down"
	ActionFirst         Action = "first"
	ActionLast          Action = "last"
	ActionNextSection   Action = "next_section"
	ActionPrevSection   Action = "prev_section"
	ActionDismissNotice Action = "dismiss_notice"
)
