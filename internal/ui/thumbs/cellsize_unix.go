//go:build unix

package thumbs

import (
	"os"

	"golang.org/x/sys/unix"
)

// getCellSize asks the terminal on stdout for its pixel size and divides
// by the character grid. Terminals that report no pixel size get the
// default cell.
func getCellSize() (cellW, cellH int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return defaultCellW, defaultCellH
	}
	return cellSizeFrom(int(ws.Col), int(ws.Row), int(ws.Xpixel), int(ws.Ypixel))
}
