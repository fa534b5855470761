// Package thumbs fetches, decodes and caches photo thumbnails and draws
// them in the terminal with the Kitty or Sixel graphics protocol.
package thumbs

import "image"

// Protocol abstracts the terminal image display protocol (Kitty or Sixel).
type Protocol interface {
	// Name identifies the protocol in logs and the status bar.
	Name() string

	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the escape sequence to display the image at (row, col),
	// 1-based, sized to width x height cells.
	Place(id uint32, row, col, width, height int) string

	// ClearPlacements removes every image currently drawn on screen while
	// keeping transmitted data. Sixel: no-op.
	ClearPlacements() string

	// Delete returns the escape sequence to free the image.
	Delete(id uint32) string

	// TargetPixelSize returns the pixel dimensions to use when resizing an
	// image that will be displayed in the given number of terminal cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}

// Cell pixel size assumed when the terminal does not report one.
const (
	defaultCellW = 8
	defaultCellH = 16
)

// cellSizeFrom derives the pixel size of one character cell from the
// window size in cells and pixels.
func cellSizeFrom(cols, rows, xpixel, ypixel int) (cellW, cellH int) {
	if cols <= 0 || rows <= 0 || xpixel <= 0 || ypixel <= 0 {
		return defaultCellW, defaultCellH
	}
	return max(xpixel/cols, 1), max(ypixel/rows, 1)
}
