package grid

import "github.com/llehouerou/photogrid/internal/ui"

// Vertical layout of one section, in lines:
//
//	header
//	row 0 (image lines, caption line)
//	padding blank lines
//	row 1 ...
//	inset
//
// A section without photos has a single "no photos" line as its body.

// rowHeight is the image area plus the caption line.
func (m Model) rowHeight() int {
	return m.cells.Height + 1
}

func (m Model) rowStride() int {
	return m.rowHeight() + m.padding
}

func (m Model) rows(count int) int {
	return (count + m.columns - 1) / m.columns
}

func (m Model) bodyHeight(count int) int {
	if count == 0 {
		return 1
	}
	r := m.rows(count)
	return r*m.rowHeight() + (r-1)*m.padding
}

func (m Model) sectionHeight(section int) int {
	return ui.SectionHeaderHeight + m.bodyHeight(m.history.ItemCount(section)) + ui.SectionInset
}

func (m Model) sectionTop(section int) int {
	top := 0
	for s := range section {
		top += m.sectionHeight(s)
	}
	return top
}

func (m Model) totalLines() int {
	return m.sectionTop(m.history.SectionCount())
}

// cellTop is the first image line of the cell.
func (m Model) cellTop(section, index int) int {
	return m.sectionTop(section) + ui.SectionHeaderHeight + (index/m.columns)*m.rowStride()
}

// cellLeft is the 0-based column of the cell.
func (m Model) cellLeft(index int) int {
	return m.padding + (index%m.columns)*(m.cells.Width+m.padding)
}
