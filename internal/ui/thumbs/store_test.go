package thumbs

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load(t *testing.T) {
	f := newFakeFetcher()
	f.data[testURL] = createTestPNG(t, 40, 20)

	s, err := NewStore(f, nil, 10)
	require.NoError(t, err)

	h, err := s.Load(context.Background(), testURL)
	require.NoError(t, err)

	assert.True(t, h.Valid())
	assert.Equal(t, 40, h.Width)
	assert.Equal(t, 20, h.Height)

	img, ok := s.Image(h)
	require.True(t, ok)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 1, s.images.Len())
}

func TestStore_Load_DownscalesLargeImages(t *testing.T) {
	f := newFakeFetcher()
	f.data[testURL] = createTestPNG(t, 480, 320)

	s, err := NewStore(f, nil, 10)
	require.NoError(t, err)

	h, err := s.Load(context.Background(), testURL)
	require.NoError(t, err)
	assert.LessOrEqual(t, h.Width, maxThumbnailSide)
	assert.LessOrEqual(t, h.Height, maxThumbnailSide)
}

func TestStore_Load_FetchError(t *testing.T) {
	s, err := NewStore(newFakeFetcher(), nil, 10)
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "https://missing")
	assert.ErrorIs(t, err, errNotFound)
}

func TestStore_Load_DecodeError(t *testing.T) {
	f := newFakeFetcher()
	f.data[testURL] = []byte("not an image")
	cache := newTestCache(t)

	s, err := NewStore(f, cache, 10)
	require.NoError(t, err)

	_, err = s.Load(context.Background(), testURL)
	require.Error(t, err)
	assert.Nil(t, cache.Get(testURL), "undecodable data must not be cached")
}

func TestStore_Load_UsesDiskCache(t *testing.T) {
	f := newFakeFetcher()
	f.data[testURL] = createTestPNG(t, 8, 8)
	cache := newTestCache(t)

	s, err := NewStore(f, cache, 10)
	require.NoError(t, err)

	h1, err := s.Load(context.Background(), testURL)
	require.NoError(t, err)
	h2, err := s.Load(context.Background(), testURL)
	require.NoError(t, err)

	assert.Equal(t, 1, f.callCount(testURL))
	assert.NotEqual(t, h1.ID, h2.ID, "each load yields its own handle")
	assert.Positive(t, s.DiskSize())
}

func TestStore_Load_RefetchesCorruptDiskEntry(t *testing.T) {
	valid := createTestPNG(t, 8, 8)
	f := newFakeFetcher()
	f.data[testURL] = valid
	cache := newTestCache(t)
	require.NoError(t, cache.Put(testURL, valid[:len(valid)/2]))

	s, err := NewStore(f, cache, 10)
	require.NoError(t, err)

	for range 3 {
		h, err := s.Load(context.Background(), testURL)
		require.NoError(t, err)
		assert.True(t, h.Valid())
	}

	assert.Equal(t, 1, f.callCount(testURL), "truncated entry should be replaced once")
	assert.Equal(t, valid, cache.Get(testURL))
}

func TestStore_Eviction(t *testing.T) {
	f := newFakeFetcher()
	f.data[testURL] = createTestPNG(t, 4, 4)

	s, err := NewStore(f, nil, 2)
	require.NoError(t, err)

	first, err := s.Load(context.Background(), testURL)
	require.NoError(t, err)
	for range 2 {
		_, err := s.Load(context.Background(), testURL)
		require.NoError(t, err)
	}

	_, ok := s.Image(first)
	assert.False(t, ok, "oldest image should be evicted")
	assert.Equal(t, 2, s.images.Len())
}

func TestStore_Image_InvalidHandle(t *testing.T) {
	s, err := NewStore(newFakeFetcher(), nil, 0)
	require.NoError(t, err)

	_, ok := s.Image(zeroHandle())
	assert.False(t, ok)
}

func TestStore_ConcurrentLoads(t *testing.T) {
	f := newFakeFetcher()
	f.data[testURL] = createTestPNG(t, 4, 4)

	s, err := NewStore(f, nil, 100)
	require.NoError(t, err)

	var wg sync.WaitGroup
	ids := make([]uint32, 20)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := s.Load(context.Background(), testURL)
			if err == nil {
				ids[i] = h.ID
			}
		}()
	}
	wg.Wait()

	seen := map[uint32]bool{}
	for _, id := range ids {
		assert.NotZero(t, id)
		assert.False(t, seen[id], "duplicate handle id %d", id)
		seen[id] = true
	}
}
