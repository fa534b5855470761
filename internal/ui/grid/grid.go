// Package grid renders the search history as sections of photo cells and
// tracks the selected photo.
package grid

import (
	"github.com/llehouerou/photogrid/internal/history"
	"github.com/llehouerou/photogrid/internal/keymap"
	"github.com/llehouerou/photogrid/internal/photo"
	"github.com/llehouerou/photogrid/internal/ui"
	"github.com/llehouerou/photogrid/internal/ui/cursor"
	"github.com/llehouerou/photogrid/internal/ui/layout"
)

// Model is the photo grid. It reads sections from a history it does not
// own; call Refresh after the history changes.
type Model struct {
	ui.Base
	history *history.History
	columns int
	padding int
	cells   layout.Cells
	cursor  cursor.Cursor
	images  bool // leave cell bodies blank for terminal graphics
}

// New creates a grid over h with the given column count and padding
// (left/right margin, column gap and row spacing).
func New(h *history.History, columns, padding int) Model {
	return Model{
		history: h,
		columns: max(columns, 1),
		padding: max(padding, 0),
		cursor:  cursor.New(ui.ScrollMargin),
	}
}

// SetSize sets the viewport and recomputes the cell size for the new width.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cells = layout.GridCells(width, m.columns, m.padding)
	m.ensureSelectionVisible()
}

// Cells returns the current cell size.
func (m Model) Cells() layout.Cells {
	return m.cells
}

// Columns returns the number of cells per row.
func (m Model) Columns() int {
	return m.columns
}

// SetImages sets whether cell bodies are left for terminal graphics
// instead of drawn as text placeholders.
func (m *Model) SetImages(enabled bool) {
	m.images = enabled
}

// ImagesShown reports whether placements are produced at the current size.
func (m Model) ImagesShown() bool {
	return m.images && !m.cells.Clamped
}

// SectionsAdded keeps the selection on the same photo after n sections
// were prepended to the history.
func (m *Model) SectionsAdded(n int) {
	m.cursor.Shift(n)
	m.Refresh()
}

// Refresh revalidates the selection against the history.
func (m *Model) Refresh() {
	m.cursor.Clamp(m.history)
	m.ensureSelectionVisible()
}

// JumpTop selects the first photo of the newest non-empty section and
// scrolls to the top so section 0 is visible.
func (m *Model) JumpTop() {
	m.cursor.JumpStart(m.history)
}

// Selected returns the selected photo.
func (m Model) Selected() (photo.Item, bool) {
	pos, ok := m.cursor.Pos()
	if !ok {
		return photo.Item{}, false
	}
	return m.history.ItemAt(pos.Section, pos.Index), true
}

// SelectedPos returns the selected (section, index).
func (m Model) SelectedPos() (cursor.Pos, bool) {
	return m.cursor.Pos()
}

// Offset returns the first visible line.
func (m Model) Offset() int {
	return m.cursor.Offset()
}

// HandleAction applies a navigation action. It returns true if the action
// is a grid action, whether or not the selection moved.
func (m *Model) HandleAction(a keymap.Action) bool {
	switch a {
	case keymap.ActionMoveLeft:
		m.cursor.Left(m.history)
	case keymap.ActionMoveRight:
		m.cursor.Right(m.history)
	case keymap.ActionMoveUp:
		m.cursor.Up(m.history, m.columns)
	case keymap.ActionMoveDown:
		m.cursor.Down(m.history, m.columns)
	case keymap.ActionPageUp:
		for range m.pageRows() {
			if !m.cursor.Up(m.history, m.columns) {
				break
			}
		}
	case keymap.ActionPageDown:
		for range m.pageRows() {
			if !m.cursor.Down(m.history, m.columns) {
				break
			}
		}
	case keymap.ActionFirst:
		m.cursor.JumpStart(m.history)
	case keymap.ActionLast:
		m.cursor.JumpEnd(m.history)
	case keymap.ActionNextSection:
		m.cursor.NextSection(m.history)
	case keymap.ActionPrevSection:
		m.cursor.PrevSection(m.history)
	default:
		return false
	}
	m.ensureSelectionVisible()
	return true
}

func (m Model) pageRows() int {
	return max(m.Height()/m.rowStride(), 1)
}

func (m *Model) ensureSelectionVisible() {
	pos, ok := m.cursor.Pos()
	if !ok || m.Height() <= 0 {
		return
	}
	top := m.cellTop(pos.Section, pos.Index)
	bottom := top + m.rowHeight()
	if pos.Index < m.columns {
		top = m.sectionTop(pos.Section)
	}
	m.cursor.EnsureVisible(top, bottom, m.Height(), m.totalLines())
}
