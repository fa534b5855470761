package thumbs

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/nfnt/resize"

	"github.com/llehouerou/photogrid/internal/errmsg"
	"github.com/llehouerou/photogrid/internal/photo"
)

// Placement positions one thumbnail on screen. Row and Col are 1-based
// terminal coordinates of the cell's top-left corner.
type Placement struct {
	Handle photo.Handle
	Row    int
	Col    int
}

// Renderer turns grid placements into terminal graphics commands.
// A Renderer with a nil protocol renders nothing.
type Renderer struct {
	mu       sync.Mutex
	proto    Protocol
	store    *Store
	logger   *slog.Logger
	width    int // cell width in columns
	height   int // cell height in rows
	prepared map[uint32]bool
}

// NewRenderer creates a renderer drawing images from store with proto.
// A nil logger falls back to slog.Default.
func NewRenderer(proto Protocol, store *Store, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		proto:    proto,
		store:    store,
		logger:   logger,
		prepared: make(map[uint32]bool),
	}
}

// Enabled reports whether images are drawn at all.
func (r *Renderer) Enabled() bool {
	return r != nil && r.proto != nil
}

// ProtocolName returns the active protocol name, or "none".
func (r *Renderer) ProtocolName() string {
	if !r.Enabled() {
		return "none"
	}
	return r.proto.Name()
}

// SetCellSize sets the size of a grid cell in terminal cells. When it
// changes every prepared image is dropped and will be re-encoded at the
// new size; the returned string frees them in the terminal.
func (r *Renderer) SetCellSize(width, height int) string {
	if !r.Enabled() {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.width == width && r.height == height {
		return ""
	}
	r.width = width
	r.height = height

	var sb strings.Builder
	for id := range r.prepared {
		sb.WriteString(r.proto.Delete(id))
	}
	clear(r.prepared)
	return sb.String()
}

// Frame returns the commands that draw placements, replacing whatever the
// previous frame drew. Images not yet sent to the terminal are encoded at
// the current cell size first. Evicted or invalid handles are skipped, as
// are images the protocol fails to encode; those failures are logged.
func (r *Renderer) Frame(placements []Placement) string {
	if !r.Enabled() {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(r.proto.ClearPlacements())

	for _, p := range placements {
		if !r.prepared[p.Handle.ID] {
			img, ok := r.store.Image(p.Handle)
			if !ok {
				continue
			}
			pw, ph := r.proto.TargetPixelSize(r.width, r.height)
			//nolint:gosec // dimensions are small, no overflow risk
			scaled := resize.Thumbnail(uint(pw), uint(ph), img, resize.Lanczos3)
			cmd, err := r.proto.Prepare(scaled, p.Handle.ID)
			if err != nil {
				r.logger.Warn(errmsg.Format(errmsg.OpImageRender, err), "handle", p.Handle.ID)
				continue
			}
			sb.WriteString(cmd)
			r.prepared[p.Handle.ID] = true
		}
		sb.WriteString(r.proto.Place(p.Handle.ID, p.Row, p.Col, r.width, r.height))
	}

	return sb.String()
}

// Clear removes all images from the terminal.
func (r *Renderer) Clear() string {
	if !r.Enabled() {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(r.proto.ClearPlacements())
	for id := range r.prepared {
		sb.WriteString(r.proto.Delete(id))
	}
	clear(r.prepared)
	return sb.String()
}
