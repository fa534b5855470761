// Package photo defines search results: photo items and the immutable
// result set produced by one completed search.
package photo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyTerm is returned when a result set is built without a search term.
var ErrEmptyTerm = errors.New("empty search term")

// Handle is an opaque reference to a decoded thumbnail owned by the image cache.
// The zero value means no thumbnail.
type Handle struct {
	ID     uint32
	Width  int // pixels
	Height int // pixels
}

// Valid reports whether the handle references a thumbnail.
func (h Handle) Valid() bool {
	return h.ID != 0
}

// Item is a single photo result.
type Item struct {
	ID        string // assigned at construction, stable across sections
	PhotoID   string
	Farm      int
	Server    string
	Secret    string
	Title     string
	Thumbnail Handle
}

// NewItem creates an item with a fresh stable ID.
func NewItem(photoID string, farm int, server, secret, title string, thumb Handle) Item {
	return Item{
		ID:        uuid.NewString(),
		PhotoID:   photoID,
		Farm:      farm,
		Server:    server,
		Secret:    secret,
		Title:     title,
		Thumbnail: thumb,
	}
}

// SizeSmall is the Flickr size suffix of the 240px image shown in grid cells.
const SizeSmall = "m"

// ImageURL returns the static image URL for the given Flickr size suffix
// ("m" small, "b" large, "" default).
func (it Item) ImageURL(size string) string {
	suffix := ""
	if size != "" {
		suffix = "_" + size
	}
	return fmt.Sprintf("https://farm%d.staticflickr.com/%s/%s_%s%s.jpg",
		it.Farm, it.Server, it.PhotoID, it.Secret, suffix)
}

// PageURL returns the Flickr photo page for the item.
func (it Item) PageURL() string {
	return "https://www.flickr.com/photo.gne?id=" + it.PhotoID
}

// ResultSet pairs a search term with its ordered results.
// It cannot be modified after construction.
type ResultSet struct {
	term  string
	items []Item
}

// NewResultSet builds a result set. The term is trimmed and must not be
// empty; items may be empty. The items slice is copied.
func NewResultSet(term string, items []Item) (ResultSet, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return ResultSet{}, ErrEmptyTerm
	}
	return ResultSet{
		term:  term,
		items: append([]Item(nil), items...),
	}, nil
}

// Term returns the search term that produced the set.
func (r ResultSet) Term() string {
	return r.term
}

// Len returns the number of items.
func (r ResultSet) Len() int {
	return len(r.items)
}

// At returns the item at index i. It panics if i is out of range.
func (r ResultSet) At(i int) Item {
	return r.items[i]
}

// Items returns a copy of the items in result order.
func (r ResultSet) Items() []Item {
	return append([]Item(nil), r.items...)
}
