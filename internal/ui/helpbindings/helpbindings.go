// Package helpbindings is the "?" popup listing key bindings by context.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/photogrid/internal/keymap"
	"github.com/llehouerou/photogrid/internal/ui"
	"github.com/llehouerou/photogrid/internal/ui/action"
	"github.com/llehouerou/photogrid/internal/ui/popup"
	"github.com/llehouerou/photogrid/internal/ui/render"
	"github.com/llehouerou/photogrid/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// categories lists the binding contexts in display order.
var categories = []struct {
	context string
	label   string
}{
	{"global", "Global"},
	{"grid", "Photo Grid"},
	{"search", "Search Prompt"},
}

// chrome is the number of popup lines around the list: title, blank,
// blank, footer and the bordered box itself.
const chrome = 10

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	lines  []string // rendered list, one entry per line
	offset int
}

// New creates an empty help popup.
func New() Model {
	return Model{}
}

// SetContexts selects the binding contexts to list and resets scrolling.
func (m *Model) SetContexts(contexts []string) {
	t := styles.T()
	var groups [][]keymap.Binding
	var labels []string
	keyWidth := 0
	for _, c := range categories {
		if !slices.Contains(contexts, c.context) {
			continue
		}
		bindings := keymap.ByContext(c.context)
		if len(bindings) == 0 {
			continue
		}
		for _, b := range bindings {
			keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b)))
		}
		groups = append(groups, bindings)
		labels = append(labels, c.label)
	}

	m.lines = m.lines[:0]
	for i, bindings := range groups {
		if i > 0 {
			m.lines = append(m.lines, "")
		}
		m.lines = append(m.lines, t.S().Section.Render(labels[i]))
		for _, b := range bindings {
			keys := render.Fit(keyLabel(b), keyWidth)
			m.lines = append(m.lines, t.S().Selected.Render(keys)+"  "+t.S().Base.Render(b.Description))
		}
	}
	m.offset = 0
}

func keyLabel(b keymap.Binding) string {
	return strings.Join(b.Keys, ", ")
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Cmd(source, Close{})
	case "j", "down":
		m.scroll(1)
	case "k", "up":
		m.scroll(-1)
	case "pgdown", "ctrl+d":
		m.scroll(m.visibleHeight())
	case "pgup", "ctrl+u":
		m.scroll(-m.visibleHeight())
	case "g", "home":
		m.offset = 0
	case "G", "end":
		m.offset = m.maxOffset()
	}
	return m, nil
}

func (m *Model) scroll(n int) {
	m.offset = min(max(m.offset+n, 0), m.maxOffset())
}

// View implements popup.Popup. Lines are padded to the widest entry so the
// popup keeps its width while scrolling.
func (m *Model) View() string {
	if m.Empty() {
		return ""
	}
	t := styles.T()

	width := 0
	for _, l := range m.lines {
		width = max(width, lipgloss.Width(l))
	}

	end := min(m.offset+m.visibleHeight(), len(m.lines))
	visible := make([]string, 0, end-m.offset)
	for _, l := range m.lines[m.offset:end] {
		visible = append(visible, l+render.Blank(width-lipgloss.Width(l)))
	}

	footer := "?/esc close"
	if m.maxOffset() > 0 {
		footer = "j/k scroll · " + footer
	}

	return t.S().Title.Render("Key Bindings") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		t.S().Muted.Render(footer)
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
