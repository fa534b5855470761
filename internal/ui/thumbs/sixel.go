package thumbs

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-sixel"
)

// SixelProtocol draws thumbnails as sixel images. Sixel has no image
// memory in the terminal, so encoded data is kept here and written again
// on every Place.
type SixelProtocol struct {
	mu      sync.RWMutex
	encoded map[uint32]string
	cellW   int // pixels
	cellH   int // pixels
	frames  atomic.Uint64
}

// NewSixelProtocol creates a SixelProtocol sized to the terminal's cell
// pixel dimensions.
func NewSixelProtocol() *SixelProtocol {
	return newSixelProtocol(getCellSize())
}

func newSixelProtocol(cellW, cellH int) *SixelProtocol {
	return &SixelProtocol{
		encoded: make(map[uint32]string),
		cellW:   cellW,
		cellH:   cellH,
	}
}

func (s *SixelProtocol) Name() string { return "sixel" }

// Prepare encodes img and keeps it for later placements. Nothing is sent
// to the terminal yet.
func (s *SixelProtocol) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = true
	if err := enc.Encode(img); err != nil {
		return "", fmt.Errorf("encode sixel %d: %w", id, err)
	}

	s.mu.Lock()
	s.encoded[id] = buf.String()
	s.mu.Unlock()
	return "", nil
}

// Place writes the image at (row, col) without moving the cursor. The
// trailing SGR sequence differs on every call so bubbletea's renderer
// never treats two frames as identical and skips the image data.
func (s *SixelProtocol) Place(id uint32, row, col, _, _ int) string {
	s.mu.RLock()
	data, ok := s.encoded[id]
	s.mu.RUnlock()
	if !ok {
		return ""
	}

	n := s.frames.Add(1)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b7\x1b[%d;%dH", row, col)
	sb.WriteString(data)
	fmt.Fprintf(&sb, "\x1b8\x1b[%dm\x1b[0m", n%255+1)
	return sb.String()
}

// ClearPlacements is a no-op: sixel pixels are replaced when the text
// under them is redrawn.
func (s *SixelProtocol) ClearPlacements() string {
	return ""
}

// Delete forgets the encoded image.
func (s *SixelProtocol) Delete(id uint32) string {
	s.mu.Lock()
	delete(s.encoded, id)
	s.mu.Unlock()
	return ""
}

// Len returns the number of encoded images held.
func (s *SixelProtocol) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.encoded)
}

// TargetPixelSize keeps images one row short of the cell so a thumbnail on
// the last screen row never scrolls the terminal.
func (s *SixelProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * s.cellW, max(heightCells-1, 1) * s.cellH
}
