package thumbs

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
)

func createTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

var errNotFound = errors.New("not found")

// fakeFetcher serves images from memory and counts requests.
type fakeFetcher struct {
	mu    sync.Mutex
	data  map[string][]byte
	calls map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{data: map[string][]byte{}, calls: map[string]int{}}
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	d, ok := f.data[url]
	if !ok {
		return nil, errNotFound
	}
	return d, nil
}

func (f *fakeFetcher) callCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

// fakeProtocol records what the renderer asks for.
type fakeProtocol struct {
	prepared []uint32
	deleted  []uint32
	err      error // returned by Prepare when set
}

func (p *fakeProtocol) Name() string { return "fake" }

func (p *fakeProtocol) Prepare(_ image.Image, id uint32) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.prepared = append(p.prepared, id)
	return "<prep>", nil
}

func (p *fakeProtocol) Place(_ uint32, _, _, _, _ int) string { return "<place>" }

func (p *fakeProtocol) ClearPlacements() string { return "<clear>" }

func (p *fakeProtocol) Delete(id uint32) string {
	p.deleted = append(p.deleted, id)
	return "<del>"
}

func (p *fakeProtocol) TargetPixelSize(w, h int) (int, int) { return w * 8, h * 16 }
