package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/photogrid/internal/flickr"
	"github.com/llehouerou/photogrid/internal/photo"
)

type fakeSearcher struct {
	photos  []flickr.Photo
	err     error
	perPage int
	terms   []string
	mu      sync.Mutex
}

func (f *fakeSearcher) Search(_ context.Context, text string, perPage int) ([]flickr.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terms = append(f.terms, text)
	f.perPage = perPage
	return f.photos, f.err
}

// fakeLoader fails for URLs in fail and sleeps longer for earlier photos so
// completions arrive out of order.
type fakeLoader struct {
	fail   map[string]bool
	mu     sync.Mutex
	nextID uint32
}

func (f *fakeLoader) Load(_ context.Context, url string) (photo.Handle, error) {
	if f.fail[url] {
		return photo.Handle{}, errors.New("boom")
	}
	time.Sleep(time.Millisecond)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return photo.Handle{ID: f.nextID, Width: 240, Height: 180}, nil
}

func testPhotos(n int) []flickr.Photo {
	ps := make([]flickr.Photo, n)
	for i := range ps {
		ps[i] = flickr.Photo{ID: fmt.Sprint(i), Farm: 1, Server: "s", Secret: "x", Title: fmt.Sprintf("photo %d", i)}
	}
	return ps
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_Run_Success(t *testing.T) {
	s := &fakeSearcher{photos: testPhotos(8)}
	p := New(s, &fakeLoader{}, Options{PerPage: 8, Concurrency: 3, Logger: quietLogger()})

	msg := p.Run(context.Background(), 1, "cats")

	require.NoError(t, msg.Err)
	assert.Equal(t, "cats", msg.Results.Term())
	require.Equal(t, 8, msg.Results.Len())
	for i := range 8 {
		item := msg.Results.At(i)
		assert.Equal(t, fmt.Sprint(i), item.PhotoID, "order must follow the API")
		assert.True(t, item.Thumbnail.Valid())
		assert.NotEmpty(t, item.ID)
	}
	assert.Equal(t, 8, s.perPage)
}

func TestProvider_Run_DropsFailedThumbnails(t *testing.T) {
	photos := testPhotos(4)
	loader := &fakeLoader{fail: map[string]bool{"https://farm1.staticflickr.com/s/1_x_m.jpg": true}}
	p := New(&fakeSearcher{photos: photos}, loader, Options{Logger: quietLogger()})

	msg := p.Run(context.Background(), 1, "dogs")

	require.NoError(t, msg.Err)
	assert.Equal(t, 1, msg.Dropped)
	require.Equal(t, 3, msg.Results.Len())
	assert.Equal(t, "0", msg.Results.At(0).PhotoID)
	assert.Equal(t, "2", msg.Results.At(1).PhotoID)
	assert.Equal(t, "3", msg.Results.At(2).PhotoID)
}

func TestProvider_Run_NoResults(t *testing.T) {
	p := New(&fakeSearcher{}, &fakeLoader{}, Options{Logger: quietLogger()})

	msg := p.Run(context.Background(), 1, "xyzzy")

	require.NoError(t, msg.Err)
	assert.Equal(t, 0, msg.Results.Len())
	assert.Equal(t, "xyzzy", msg.Results.Term())
}

func TestProvider_Run_SearchError(t *testing.T) {
	apiErr := &flickr.APIError{Code: 100, Message: "Invalid API Key"}
	p := New(&fakeSearcher{err: apiErr}, &fakeLoader{}, Options{Logger: quietLogger()})

	msg := p.Run(context.Background(), 3, "cats")

	var searchErr *Error
	require.ErrorAs(t, msg.Err, &searchErr)
	assert.Equal(t, "cats", searchErr.Term)
	assert.ErrorIs(t, msg.Err, apiErr)
	assert.Equal(t, uint64(3), msg.Seq)
	assert.Contains(t, msg.Err.Error(), "Invalid API Key")
}

func TestProvider_Run_EmptyTerm(t *testing.T) {
	p := New(&fakeSearcher{}, &fakeLoader{}, Options{Logger: quietLogger()})

	msg := p.Run(context.Background(), 1, "  ")
	assert.ErrorIs(t, msg.Err, photo.ErrEmptyTerm)
}

func TestProvider_Search_NotCoalesced(t *testing.T) {
	s := &fakeSearcher{photos: testPhotos(1)}
	p := New(s, &fakeLoader{}, Options{Logger: quietLogger()})

	cmd1 := p.Search("cats")
	cmd2 := p.Search("cats")
	require.NotNil(t, cmd1)
	require.NotNil(t, cmd2)

	msg1, ok := cmd1().(CompletedMsg)
	require.True(t, ok)
	msg2, ok := cmd2().(CompletedMsg)
	require.True(t, ok)

	assert.Equal(t, uint64(1), msg1.Seq)
	assert.Equal(t, uint64(2), msg2.Seq)
	assert.Equal(t, []string{"cats", "cats"}, s.terms)
	assert.NotEqual(t, msg1.Results.At(0).ID, msg2.Results.At(0).ID)
}

func TestNew_Defaults(t *testing.T) {
	p := New(&fakeSearcher{}, &fakeLoader{}, Options{})
	assert.Equal(t, flickr.DefaultPerPage, p.perPage)
	assert.Equal(t, DefaultConcurrency, p.concurrency)
	assert.NotNil(t, p.logger)
}
