package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/photogrid/internal/keymap"
	"github.com/llehouerou/photogrid/internal/ui/headerbar"
	"github.com/llehouerou/photogrid/internal/ui/popup"
	"github.com/llehouerou/photogrid/internal/ui/render"
	"github.com/llehouerou/photogrid/internal/ui/styles"
)

// View renders the application UI. Terminal graphics for the visible
// thumbnails are appended after the text.
func (m Model) View() string {
	if m.quitting {
		return m.renderer.Clear()
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := headerbar.Render(m.width, headerbar.State{
		Spinner:  m.spinner.View(),
		Pending:  m.pending,
		Sections: m.history.SectionCount(),
		Photos:   m.history.TotalItems(),
	})

	view := header + "\n" + m.grid.View()
	if len(m.notifications) > 0 {
		view += "\n" + m.renderNotifications()
	}
	view += "\n" + m.renderStatusBar()

	switch m.popup {
	case PopupSearch:
		box := popup.RenderBordered(m.input.View(), m.width, m.height, popup.SizeSearch)
		view = popup.Compose(view, box, m.width)
	case PopupHelp:
		box := popup.RenderBordered(m.help.View(), m.width, m.height, popup.SizeAuto)
		view = popup.Compose(view, box, m.width)
	case PopupNone:
	}

	view = enforceHeight(view, m.height)

	return view + m.graphics()
}

// graphics draws the visible thumbnails, or clears them while a popup
// covers the grid.
func (m Model) graphics() string {
	if !m.renderer.Enabled() {
		return ""
	}
	cells := m.grid.Cells()
	out := m.renderer.SetCellSize(cells.Width, cells.Height)
	if m.popup != PopupNone {
		return out + m.renderer.Frame(nil)
	}
	// Terminal rows are 1-based; the grid starts under the header.
	return out + m.renderer.Frame(m.grid.Placements(headerbar.Height+1, 1))
}

func (m Model) renderNotifications() string {
	t := styles.T()
	innerWidth := max(m.width-2, 0)

	isError := false
	lines := make([]string, 0, len(m.notifications))
	for _, n := range m.notifications {
		mark, style := "•", t.S().Warning
		if n.IsError {
			mark, style = "✗", t.S().Error
			isError = true
		}
		line := style.Render(mark) + " " + t.S().Base.Render(render.Fit(n.Message, max(innerWidth-2, 0)))
		lines = append(lines, line)
	}

	return styles.NoticeStyle(isError).Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatusBar() string {
	t := styles.T()

	rightText := m.renderer.ProtocolName()
	if m.cacheBytes > 0 {
		rightText = humanize.IBytes(uint64(m.cacheBytes)) + " cached · " + rightText
	}
	avail := max(m.width-lipgloss.Width(rightText)-1, 0)

	var left string
	if it, ok := m.grid.Selected(); ok {
		title := render.Truncate(it.Title, avail)
		if strings.TrimSpace(title) == "" {
			title = "(untitled)"
		}
		left = t.S().Title.Render(title)
		if url := "  " + it.PageURL(); lipgloss.Width(title)+lipgloss.Width(url) <= avail {
			left += t.S().Muted.Render(url)
		}
	} else {
		left = t.S().Muted.Render(render.Truncate(m.keyHints(), avail))
	}

	return render.Row(left, t.S().Subtle.Render(rightText), m.width)
}

// enforceHeight pads or cuts view to exactly targetHeight lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		lines = append(lines, make([]string, targetHeight-len(lines))...)
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}

// keyHints lists the first key of the main actions, e.g. "/ search  ? help".
func (m Model) keyHints() string {
	hints := []struct {
		action keymap.Action
		label  string
	}{
		{keymap.ActionSearch, "search"},
		{keymap.ActionHelp, "help"},
		{keymap.ActionQuit, "quit"},
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		if keys := m.keys.KeysFor(h.action); len(keys) > 0 {
			parts = append(parts, keys[0]+" "+h.label)
		}
	}
	return strings.Join(parts, "  ")
}
