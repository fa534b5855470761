// Package cursor tracks a selection in a sectioned grid and the scroll
// offset that keeps it on screen.
package cursor

// Shape is the sectioned item layout the cursor moves over.
// history.History satisfies it.
type Shape interface {
	SectionCount() int
	ItemCount(section int) int
}

// Pos is a cell address.
type Pos struct {
	Section int
	Index   int
}

// Cursor holds the selected cell and the vertical scroll offset in lines.
// Sections are read through Shape on every call, so the cursor never holds
// stale counts.
type Cursor struct {
	pos    Pos
	valid  bool
	offset int // first visible line
	margin int // lines kept visible above/below the selection
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected cell and whether there is one.
func (c Cursor) Pos() (Pos, bool) {
	return c.pos, c.valid
}

// Offset returns the first visible line.
func (c Cursor) Offset() int {
	return c.offset
}

// JumpStart selects the first item of the first non-empty section and
// scrolls to the top.
func (c *Cursor) JumpStart(s Shape) {
	c.offset = 0
	c.valid = false
	if sec, ok := nextNonEmpty(s, 0, 1); ok {
		c.pos = Pos{Section: sec}
		c.valid = true
	}
}

// JumpEnd selects the last item of the last non-empty section.
func (c *Cursor) JumpEnd(s Shape) {
	if sec, ok := nextNonEmpty(s, s.SectionCount()-1, -1); ok {
		c.pos = Pos{Section: sec, Index: s.ItemCount(sec) - 1}
		c.valid = true
	}
}

// Shift moves the selection down by n sections without changing the
// selected item. Used after sections are inserted above it.
func (c *Cursor) Shift(n int) {
	if c.valid {
		c.pos.Section += n
	}
}

// Clamp makes the selection valid for s, selecting the first item if
// nothing valid was selected. The offset is kept. Returns true if the
// selection changed.
func (c *Cursor) Clamp(s Shape) bool {
	old, oldValid := c.pos, c.valid
	if !c.valid || c.pos.Section >= s.SectionCount() || s.ItemCount(c.pos.Section) == 0 {
		offset := c.offset
		c.JumpStart(s)
		c.offset = offset
		return c.pos != old || c.valid != oldValid
	}
	if n := s.ItemCount(c.pos.Section); c.pos.Index >= n {
		c.pos.Index = n - 1
	}
	return c.pos != old
}

// Left moves to the previous item, wrapping to the end of the previous
// non-empty section.
func (c *Cursor) Left(s Shape) bool {
	if !c.valid {
		return false
	}
	if c.pos.Index > 0 {
		c.pos.Index--
		return true
	}
	sec, ok := nextNonEmpty(s, c.pos.Section-1, -1)
	if !ok {
		return false
	}
	c.pos = Pos{Section: sec, Index: s.ItemCount(sec) - 1}
	return true
}

// Right moves to the next item, wrapping to the start of the next
// non-empty section.
func (c *Cursor) Right(s Shape) bool {
	if !c.valid {
		return false
	}
	if c.pos.Index+1 < s.ItemCount(c.pos.Section) {
		c.pos.Index++
		return true
	}
	sec, ok := nextNonEmpty(s, c.pos.Section+1, 1)
	if !ok {
		return false
	}
	c.pos = Pos{Section: sec}
	return true
}

// Down moves one row down, keeping the column where possible. From the
// last row of a section it enters the next non-empty section.
func (c *Cursor) Down(s Shape, columns int) bool {
	if !c.valid {
		return false
	}
	columns = max(columns, 1)
	n := s.ItemCount(c.pos.Section)
	row, col := c.pos.Index/columns, c.pos.Index%columns
	lastRow := (n - 1) / columns

	if row < lastRow {
		c.pos.Index = min(c.pos.Index+columns, n-1)
		return true
	}
	sec, ok := nextNonEmpty(s, c.pos.Section+1, 1)
	if !ok {
		return false
	}
	c.pos = Pos{Section: sec, Index: min(col, s.ItemCount(sec)-1)}
	return true
}

// Up moves one row up, keeping the column where possible. From the first
// row of a section it enters the last row of the previous non-empty section.
func (c *Cursor) Up(s Shape, columns int) bool {
	if !c.valid {
		return false
	}
	columns = max(columns, 1)
	col := c.pos.Index % columns

	if c.pos.Index >= columns {
		c.pos.Index -= columns
		return true
	}
	sec, ok := nextNonEmpty(s, c.pos.Section-1, -1)
	if !ok {
		return false
	}
	n := s.ItemCount(sec)
	lastRowStart := ((n - 1) / columns) * columns
	c.pos = Pos{Section: sec, Index: min(lastRowStart+col, n-1)}
	return true
}

// NextSection selects the first item of the next non-empty section.
func (c *Cursor) NextSection(s Shape) bool {
	if !c.valid {
		return false
	}
	sec, ok := nextNonEmpty(s, c.pos.Section+1, 1)
	if !ok {
		return false
	}
	c.pos = Pos{Section: sec}
	return true
}

// PrevSection selects the first item of the previous non-empty section.
func (c *Cursor) PrevSection(s Shape) bool {
	if !c.valid {
		return false
	}
	sec, ok := nextNonEmpty(s, c.pos.Section-1, -1)
	if !ok {
		return false
	}
	c.pos = Pos{Section: sec}
	return true
}

// EnsureVisible adjusts the offset so lines [top, bottom) are on screen,
// with the margin when there is room for it. totalLines bounds the offset.
func (c *Cursor) EnsureVisible(top, bottom, height, totalLines int) {
	if height <= 0 {
		return
	}
	margin := c.margin
	if bottom-top+2*margin > height {
		margin = 0
	}

	if top-margin < c.offset {
		c.offset = top - margin
	}
	if bottom+margin > c.offset+height {
		c.offset = bottom + margin - height
	}

	c.offset = clamp(c.offset, max(totalLines-height, 0))
}

func nextNonEmpty(s Shape, from, step int) (int, bool) {
	for sec := from; sec >= 0 && sec < s.SectionCount(); sec += step {
		if s.ItemCount(sec) > 0 {
			return sec, true
		}
	}
	return 0, false
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
