package thumbs

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	chunkSize = 4096 // max base64 bytes per escape sequence
)

// KittyProtocol implements Protocol with the Kitty graphics protocol.
// Images are transmitted once and placed by ID afterwards.
type KittyProtocol struct{}

func (KittyProtocol) Name() string { return "kitty" }

func (KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	return TransmitImage(img, id)
}

func (KittyProtocol) Place(id uint32, row, col, width, height int) string {
	return PlaceImage(id, row, col, width, height)
}

func (KittyProtocol) ClearPlacements() string {
	// a=d,d=a: delete all placements, keep image data
	return escStart + "a=d,d=a,q=2;" + escEnd
}

func (KittyProtocol) Delete(id uint32) string {
	return DeleteImage(id)
}

func (KittyProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	// Typical cell is about 8x16 pixels
	return max(widthCells*8, 16), max(heightCells*16, 16)
}

// TransmitImage encodes img as PNG and returns the transmission command.
// The image is transmitted but not displayed (a=t).
func TransmitImage(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return TransmitImageFromPNG(buf.Bytes(), id)
}

// TransmitImageFromPNG sends pre-encoded PNG data to the terminal.
func TransmitImageFromPNG(pngData []byte, id uint32) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	// a=t: transmit only, f=100: PNG, i=ID, q=2: quiet
	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}

	return sb.String(), nil
}

// PlaceImage returns the escape sequence to display a transmitted image.
// row and col are 1-based terminal coordinates, width and height are cells.
func PlaceImage(id uint32, row, col, width, height int) string {
	var sb strings.Builder

	// Save cursor, move, place without moving the cursor (C=1), restore
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")

	return sb.String()
}

// DeleteImage returns the escape sequence to delete an image and its placements.
func DeleteImage(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}
