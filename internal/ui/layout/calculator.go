// Package layout provides pure functions for UI dimension calculations.
package layout

import "math"

// NotificationBorderHeight is the height of borders around notifications.
const NotificationBorderHeight = 2

// MinCellSide is the smallest side a grid cell is given. Widths that would
// fall to or below it are clamped.
const MinCellSide = 1.0

// CellAspect is the height/width ratio of a terminal character cell.
// A square thumbnail spanning w columns needs w/CellAspect rows.
const CellAspect = 2

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight      int
	StatusBarHeight   int
	NotificationCount int
}

// ContentHeight calculates the available height for the grid.
// This is the terminal height minus header, status bar, and notifications.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusBarHeight
	height -= NotificationHeight(opts.NotificationCount)
	return max(height, 0)
}

// NotificationHeight returns the height needed for the given number of notifications.
func NotificationHeight(count int) int {
	if count == 0 {
		return 0
	}
	return count + NotificationBorderHeight
}

// Size is the size of one grid cell.
type Size struct {
	Width   float64
	Height  float64
	Clamped bool // true if the available width could not fit the columns
}

// CellSize returns the square cell size for a container of the given width
// holding columns cells per row. padding is used for the left and right
// margins and for the gap between columns, so columns+1 gaps are reserved.
func CellSize(width, padding float64, columns int) Size {
	columns = max(columns, 1)
	side := (width - padding*float64(columns+1)) / float64(columns)
	if side <= MinCellSide {
		return Size{Width: MinCellSide, Height: MinCellSide, Clamped: true}
	}
	return Size{Width: side, Height: side}
}

// Cells is a grid cell measured in terminal character cells.
type Cells struct {
	Width   int // columns
	Height  int // rows
	Clamped bool
}

// GridCells sizes grid cells for a terminal termWidth columns wide using
// CellSize, rounding the side down to whole columns. The height is derived
// from CellAspect so that cells look square.
func GridCells(termWidth, columns, padding int) Cells {
	s := CellSize(float64(termWidth), float64(padding), columns)
	width := int(math.Floor(s.Width))
	if s.Clamped {
		return Cells{Width: width, Height: width, Clamped: true}
	}
	return Cells{
		Width:  width,
		Height: max(width/CellAspect, 1),
	}
}
