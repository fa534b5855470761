package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/photogrid/internal/errmsg"
	"github.com/llehouerou/photogrid/internal/keymap"
	"github.com/llehouerou/photogrid/internal/search"
	"github.com/llehouerou/photogrid/internal/ui"
	"github.com/llehouerou/photogrid/internal/ui/action"
	"github.com/llehouerou/photogrid/internal/ui/headerbar"
	"github.com/llehouerou/photogrid/internal/ui/helpbindings"
	"github.com/llehouerou/photogrid/internal/ui/layout"
	"github.com/llehouerou/photogrid/internal/ui/popup"
	"github.com/llehouerou/photogrid/internal/ui/textinput"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case action.Msg:
		return m.handleAction(msg)

	case search.CompletedMsg:
		return m.handleCompleted(msg)

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NotificationClearMsg:
		m.notifications = slices.DeleteFunc(m.notifications, func(n Notification) bool {
			return n.ID == msg.ID
		})
		m.resize()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.popup {
	case PopupSearch:
		p, cmd := m.input.Update(msg)
		m.input = *p.(*textinput.Model)
		return m, cmd
	case PopupHelp:
		p, cmd := m.help.Update(msg)
		m.help = *p.(*helpbindings.Model)
		return m, cmd
	case PopupNone:
	}

	a := m.keys.Resolve(msg.String())
	switch a {
	case keymap.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case keymap.ActionSearch:
		m.openSearch("")
		return m, nil
	case keymap.ActionHelp:
		m.help.SetContexts([]string{"global", "grid", "search"})
		m.help.SetSize(m.width, m.height)
		m.popup = PopupHelp
		return m, nil
	case keymap.ActionDismissNotice:
		if len(m.notifications) > 0 {
			m.notifications = nil
			m.resize()
		}
		return m, nil
	}

	if m.grid.HandleAction(a) {
		return m, nil
	}

	// Typing on an empty grid starts a search with that text.
	if m.history.SectionCount() == 0 && msg.Type == tea.KeyRunes && !msg.Alt {
		m.openSearch(string(msg.Runes))
	}
	return m, nil
}

func (m *Model) openSearch(initial string) {
	m.input.Start("Search Flickr", initial, popup.SizeSearch.Width-6, 5)
	m.input.SetRecent(m.recent)
	m.popup = PopupSearch
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case textinput.Result:
		m.popup = PopupNone
		m.input.Reset()
		if a.Canceled {
			return m, nil
		}
		return m.startSearch(a.Text)

	case helpbindings.Close:
		m.popup = PopupNone
	}
	return m, nil
}

// startSearch trims term and issues the search. Empty terms are ignored.
// Repeated terms are searched again and get their own section.
func (m Model) startSearch(term string) (tea.Model, tea.Cmd) {
	term = strings.TrimSpace(term)
	if term == "" || m.searcher == nil {
		return m, nil
	}

	m.recent = slices.DeleteFunc(m.recent, func(s string) bool { return s == term })
	m.recent = slices.Insert(m.recent, 0, term)
	if len(m.recent) > maxRecent {
		m.recent = m.recent[:maxRecent]
	}

	m.pending++
	cmds := []tea.Cmd{m.searcher.Search(term)}
	if m.pending == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// handleCompleted applies one finished search. Completions are applied in
// arrival order; a failed search leaves the history untouched.
func (m Model) handleCompleted(msg search.CompletedMsg) (tea.Model, tea.Cmd) {
	m.pending = max(m.pending-1, 0)

	if msg.Err != nil {
		m.logger.Error("search not applied", "seq", msg.Seq, "term", msg.Term, "error", msg.Err)
		return m, m.notify(errmsg.Format(errmsg.OpSearch, msg.Err), true)
	}

	m.history.Prepend(msg.Results)
	m.grid.SectionsAdded(1)
	m.grid.JumpTop()
	if m.cache != nil {
		m.cacheBytes = m.cache.DiskSize()
	}
	m.logger.Info(fmt.Sprintf("found %d matching %s", msg.Results.Len(), msg.Results.Term()),
		"seq", msg.Seq, "sections", m.history.SectionCount())

	if msg.Dropped > 0 {
		err := fmt.Errorf("%d of %d could not be downloaded", msg.Dropped, msg.Dropped+msg.Results.Len())
		return m, m.notify(errmsg.FormatWith(errmsg.OpThumbnail, msg.Results.Term(), err), false)
	}
	return m, nil
}

func (m *Model) notify(text string, isError bool) tea.Cmd {
	m.nextNoticeID++
	n := Notification{
		ID:      m.nextNoticeID,
		Message: text,
		IsError: isError,
	}
	m.notifications = append(m.notifications, n)
	if len(m.notifications) > maxNotifications {
		m.notifications = m.notifications[len(m.notifications)-maxNotifications:]
	}
	m.resize()
	return NotificationClearCmd(n)
}

// resize lays out the grid between the header, notifications and status bar.
func (m *Model) resize() {
	h := layout.ContentHeight(m.height, layout.ContentOpts{
		HeaderHeight:      headerbar.Height,
		StatusBarHeight:   ui.StatusBarHeight,
		NotificationCount: len(m.notifications),
	})
	m.grid.SetSize(m.width, h)
	m.help.SetSize(m.width, m.height)
}
