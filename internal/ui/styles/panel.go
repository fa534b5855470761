package styles

import "github.com/charmbracelet/lipgloss"

// NoticeStyle returns the bordered box used for the notification bar.
// Errors get the error color on the border.
func NoticeStyle(isError bool) lipgloss.Style {
	t := T()
	border := t.Border
	if isError {
		border = t.Error
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
