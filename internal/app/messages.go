package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Notification is a transient line shown above the status bar: a failed
// search or a search that lost some thumbnails.
type Notification struct {
	ID      int64
	Message string
	IsError bool
}

// NotificationClearMsg removes the notification with ID once it expires.
type NotificationClearMsg struct {
	ID int64
}

const (
	// warningDuration is how long thumbnail warnings stay up.
	warningDuration = 6 * time.Second

	// errorDuration is how long search failures stay up.
	errorDuration = 10 * time.Second

	// maxNotifications caps the bar; older entries are dropped first.
	maxNotifications = 3
)

// NotificationClearCmd expires notification n. Errors stay up longer than
// warnings.
func NotificationClearCmd(n Notification) tea.Cmd {
	d := warningDuration
	if n.IsError {
		d = errorDuration
	}
	id := n.ID
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}
