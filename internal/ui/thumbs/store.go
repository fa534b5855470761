package thumbs

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder for thumbnails
	_ "image/jpeg" // JPEG decoder for thumbnails
	_ "image/png"  // PNG decoder for thumbnails
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nfnt/resize"

	"github.com/llehouerou/photogrid/internal/photo"
)

const (
	// DefaultMaxEntries bounds the number of decoded thumbnails kept in memory.
	DefaultMaxEntries = 500

	// maxThumbnailSide caps decoded thumbnails (Flickr "m" size is 240px).
	maxThumbnailSide = 240
)

// Fetcher downloads image bytes.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Store is the image cache: it turns thumbnail URLs into opaque handles and
// keeps the decoded images for the renderer. Safe for concurrent use.
type Store struct {
	fetcher Fetcher
	disk    *Cache
	images  *lru.Cache[uint32, image.Image]
	nextID  atomic.Uint32
}

// NewStore creates a store keeping at most maxEntries decoded images.
// disk may be nil to disable the on-disk cache.
func NewStore(fetcher Fetcher, disk *Cache, maxEntries int) (*Store, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	images, err := lru.New[uint32, image.Image](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}
	return &Store{
		fetcher: fetcher,
		disk:    disk,
		images:  images,
	}, nil
}

// Load reads the image at url from disk, or fetches it, decodes it and
// returns a handle to it. Every call yields a new handle. A disk entry that
// does not decode is deleted and the image fetched again.
func (s *Store) Load(ctx context.Context, url string) (photo.Handle, error) {
	img, ok := s.fromDisk(url)
	if !ok {
		data, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return photo.Handle{}, fmt.Errorf("fetch thumbnail: %w", err)
		}
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return photo.Handle{}, fmt.Errorf("decode thumbnail: %w", err)
		}
		// Only bytes that decoded are cached.
		_ = s.disk.Put(url, data) //nolint:errcheck // best-effort
	}

	img = resize.Thumbnail(maxThumbnailSide, maxThumbnailSide, img, resize.Lanczos3)

	id := s.nextID.Add(1)
	s.images.Add(id, img)

	b := img.Bounds()
	return photo.Handle{ID: id, Width: b.Dx(), Height: b.Dy()}, nil
}

func (s *Store) fromDisk(url string) (image.Image, bool) {
	data := s.disk.Get(url)
	if data == nil {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		s.disk.Delete(url)
		return nil, false
	}
	return img, true
}

// Image returns the decoded image for h. It reports false if the handle
// is invalid or the image was evicted.
func (s *Store) Image(h photo.Handle) (image.Image, bool) {
	if !h.Valid() {
		return nil, false
	}
	return s.images.Get(h.ID)
}

// DiskSize returns the size of the on-disk cache in bytes.
func (s *Store) DiskSize() int64 {
	return s.disk.Size()
}
