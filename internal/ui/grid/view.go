package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/photogrid/internal/photo"
	"github.com/llehouerou/photogrid/internal/ui"
	"github.com/llehouerou/photogrid/internal/ui/render"
	"github.com/llehouerou/photogrid/internal/ui/styles"
	"github.com/llehouerou/photogrid/internal/ui/thumbs"
)

const (
	emptyHint    = "Press / to search Flickr"
	noPhotosText = "No photos found"
	untitled     = "(untitled)"
)

// View renders the visible lines, each padded to the grid width.
func (m Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := make([]string, 0, height)
	if m.history.SectionCount() == 0 {
		for i := range height {
			if i == height/2 {
				hint := render.Truncate(emptyHint, width)
				pad := max((width-len(hint))/2, 0)
				lines = append(lines, render.Fit(render.Blank(pad)+hint, width))
				continue
			}
			lines = append(lines, render.Blank(width))
		}
		return styles.T().S().Muted.Render(strings.Join(lines, "\n"))
	}

	offset := m.cursor.Offset()
	end := offset + height
	top := 0
	for s := range m.history.SectionCount() {
		h := m.sectionHeight(s)
		if top+h > offset && top < end {
			for i, line := range m.renderSection(s) {
				if y := top + i; y >= offset && y < end {
					lines = append(lines, line)
				}
			}
		}
		top += h
		if top >= end {
			break
		}
	}
	for len(lines) < height {
		lines = append(lines, render.Blank(width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSection(section int) []string {
	width := m.Width()
	set := m.history.Section(section)
	lines := make([]string, 0, m.sectionHeight(section))

	lines = append(lines, m.renderHeader(section, set.Term(), set.Len()))

	if set.Len() == 0 {
		msg := styles.T().S().Warning.Render(render.Fit(noPhotosText, width-m.padding))
		lines = append(lines, render.Blank(m.padding)+msg)
	} else {
		selected, hasSel := m.cursor.Pos()
		for row := range m.rows(set.Len()) {
			if row > 0 {
				for range m.padding {
					lines = append(lines, render.Blank(width))
				}
			}
			first := row * m.columns
			last := min(first+m.columns, set.Len())
			rowLines := make([]strings.Builder, m.rowHeight())
			for i := range rowLines {
				rowLines[i].WriteString(render.Blank(m.padding))
			}
			for idx := first; idx < last; idx++ {
				isSel := hasSel && selected.Section == section && selected.Index == idx
				for i, cellLine := range m.renderCell(set.At(idx), isSel) {
					rowLines[i].WriteString(cellLine)
					rowLines[i].WriteString(render.Blank(m.padding))
				}
			}
			used := m.padding + (last-first)*(m.cells.Width+m.padding)
			for i := range rowLines {
				rowLines[i].WriteString(render.Blank(width - used))
				lines = append(lines, rowLines[i].String())
			}
		}
	}

	for range ui.SectionInset {
		lines = append(lines, render.Blank(width))
	}
	return lines
}

func (m Model) renderHeader(section int, term string, count int) string {
	t := styles.T()
	width := m.Width()
	inner := max(width-2*m.padding, 0)

	ordinal := fmt.Sprintf("#%d", m.history.SectionCount()-section)
	countText := " · " + humanize.Comma(int64(count)) + " " + english.PluralWord(count, "photo", "")
	termWidth := max(inner-lipgloss.Width(ordinal)-lipgloss.Width(countText)-1, 1)

	left := t.S().Section.Render(render.Truncate(term, termWidth)) + t.S().Muted.Render(countText)
	right := t.S().Subtle.Render(ordinal)
	line := render.Row(left, right, inner)
	return render.Blank(m.padding) + line + render.Blank(width-m.padding-inner)
}

// renderCell returns rowHeight lines of exactly cells.Width columns.
func (m Model) renderCell(it photo.Item, selected bool) []string {
	t := styles.T()
	w := m.cells.Width
	lines := make([]string, 0, m.rowHeight())

	body := render.Blank(w)
	if !m.ImagesShown() || !it.Thumbnail.Valid() {
		fill, style := "░", t.S().Subtle
		if selected {
			fill, style = "▓", t.S().Selected
		}
		body = style.Render(strings.Repeat(fill, w))
	}
	for range m.cells.Height {
		lines = append(lines, body)
	}

	title := it.Title
	if strings.TrimSpace(title) == "" {
		title = untitled
	}
	caption := render.Fit(title, w)
	if selected {
		caption = t.S().Cursor.Inherit(t.S().Selected).Render(caption)
	} else {
		caption = t.S().Muted.Render(caption)
	}
	return append(lines, caption)
}

// Placements returns where visible thumbnails go on screen. originRow and
// originCol are the 1-based terminal position of the grid's top-left
// corner. Cells cut by the viewport edge are left out.
func (m Model) Placements(originRow, originCol int) []thumbs.Placement {
	if !m.ImagesShown() || m.Height() <= 0 {
		return nil
	}

	offset := m.cursor.Offset()
	end := offset + m.Height()
	var out []thumbs.Placement

	top := 0
	for s := range m.history.SectionCount() {
		h := m.sectionHeight(s)
		if top >= end {
			break
		}
		if top+h > offset {
			set := m.history.Section(s)
			for idx := range set.Len() {
				it := set.At(idx)
				if !it.Thumbnail.Valid() {
					continue
				}
				cellTop := m.cellTop(s, idx)
				if cellTop < offset || cellTop+m.cells.Height > end {
					continue
				}
				out = append(out, thumbs.Placement{
					Handle: it.Thumbnail,
					Row:    originRow + cellTop - offset,
					Col:    originCol + m.cellLeft(idx),
				})
			}
		}
		top += h
	}
	return out
}
