package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "grid", "search"
}

// All contains all key bindings, in help display order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionSearch, []string{"/"}, "Search photos", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionDismissNotice, []string{"esc"}, "Dismiss notification", "global"},

	// Grid
	{ActionMoveLeft, []string{"h", "left"}, "Previous photo", "grid"},
	{ActionMoveRight, []string{"l", "right"}, "Next photo", "grid"},
	{ActionMoveUp, []string{"k", "up"}, "Row up", "grid"},
	{ActionMoveDown, []string{"j", "down"}, "Row down", "grid"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "grid"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "grid"},
	{ActionFirst, []string{"g", "home"}, "First photo", "grid"},
	{ActionLast, []string{"G", "end"}, "Last photo", "grid"},
	{ActionNextSection, []string{"J", "]"}, "Next search", "grid"},
	{ActionPrevSection, []string{"K", "["}, "Previous search", "grid"},
}

// Search popup keys are handled by the text input itself and only listed
// here for help.
var searchHelp = []Binding{
	{"", []string{"enter"}, "Run search", "search"},
	{"", []string{"esc"}, "Cancel", "search"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	if context == "search" {
		result = append(result, searchHelp...)
	}
	return result
}

// Default returns a resolver for every binding in All.
func Default() *Resolver {
	return NewResolver(All)
}
