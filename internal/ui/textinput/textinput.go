// Package textinput provides the single-line search prompt popup.
package textinput

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/photogrid/internal/ui"
	"github.com/llehouerou/photogrid/internal/ui/action"
	"github.com/llehouerou/photogrid/internal/ui/popup"
	"github.com/llehouerou/photogrid/internal/ui/render"
	"github.com/llehouerou/photogrid/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

// Model is a single-line text input with a movable caret and recall of
// previous entries.
type Model struct {
	ui.Base
	title  string
	text   []rune
	caret  int
	recent []string // newest first
	recall int      // index into recent, -1 when editing fresh text
	draft  []rune   // text typed before recall started
}

// New creates a new text input model.
func New() Model {
	return Model{recall: -1}
}

// Start opens the input with a title and optional initial text.
func (m *Model) Start(title, initialText string, width, height int) {
	m.title = title
	m.text = []rune(initialText)
	m.caret = len(m.text)
	m.recall = -1
	m.draft = nil
	m.SetSize(width, height)
}

// SetRecent sets the entries reachable with up/down, newest first.
func (m *Model) SetRecent(entries []string) {
	m.recent = slices.Clone(entries)
	m.recall = -1
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.text = nil
	m.caret = 0
	m.recall = -1
	m.draft = nil
}

// Text returns the current input.
func (m *Model) Text() string {
	return string(m.text)
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

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, action.Cmd(source, Result{Canceled: true})
	case tea.KeyEnter:
		return m, action.Cmd(source, Result{Text: string(m.text)})
	case tea.KeyBackspace:
		if m.caret > 0 {
			m.text = slices.Delete(m.text, m.caret-1, m.caret)
			m.caret--
		}
	case tea.KeyDelete:
		if m.caret < len(m.text) {
			m.text = slices.Delete(m.text, m.caret, m.caret+1)
		}
	case tea.KeyLeft:
		m.caret = max(m.caret-1, 0)
	case tea.KeyRight:
		m.caret = min(m.caret+1, len(m.text))
	case tea.KeyHome, tea.KeyCtrlA:
		m.caret = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.caret = len(m.text)
	case tea.KeyCtrlU:
		m.text = slices.Delete(m.text, 0, m.caret)
		m.caret = 0
	case tea.KeyCtrlW:
		m.deleteWord()
	case tea.KeyUp:
		m.recallStep(1)
	case tea.KeyDown:
		m.recallStep(-1)
	case tea.KeySpace:
		m.insert([]rune{' '})
	case tea.KeyRunes:
		m.insert(keyMsg.Runes)
	}

	return m, nil
}

func (m *Model) insert(runes []rune) {
	clean := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		if r >= 32 {
			clean = append(clean, r)
		}
	}
	m.text = slices.Insert(m.text, m.caret, clean...)
	m.caret += len(clean)
}

func (m *Model) deleteWord() {
	start := m.caret
	for start > 0 && m.text[start-1] == ' ' {
		start--
	}
	for start > 0 && m.text[start-1] != ' ' {
		start--
	}
	m.text = slices.Delete(m.text, start, m.caret)
	m.caret = start
}

// recallStep moves through recent entries; +1 is older, -1 is newer.
// Stepping past the newest entry restores the draft.
func (m *Model) recallStep(dir int) {
	next := m.recall + dir
	if next < -1 || next >= len(m.recent) {
		return
	}
	if m.recall == -1 {
		m.draft = slices.Clone(m.text)
	}
	m.recall = next
	if next == -1 {
		m.text = m.draft
	} else {
		m.text = []rune(m.recent[next])
	}
	m.caret = len(m.text)
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Empty() {
		return ""
	}
	t := styles.T()

	var input strings.Builder
	input.WriteString(t.S().Muted.Render("> "))
	input.WriteString(t.S().Base.Render(render.Sanitize(string(m.text[:m.caret]))))
	if m.caret < len(m.text) {
		input.WriteString(t.S().Cursor.Reverse(true).Render(string(m.text[m.caret])))
		input.WriteString(t.S().Base.Render(string(m.text[m.caret+1:])))
	} else {
		input.WriteString("█")
	}

	hint := t.S().Subtle.Render("enter search · esc cancel · ↑/↓ recent")

	return titleStyle().Render(m.title) + "\n\n" + input.String() + "\n\n" + hint
}
