// Package history accumulates completed searches, newest first, and
// addresses their photos by (section, index) for the grid.
package history

import (
	"fmt"

	"github.com/llehouerou/photogrid/internal/photo"
)

// History is the ordered list of result sets, newest first.
// Section i is the i-th most recent search.
//
// History is not safe for concurrent use. The app only touches it from
// the bubbletea update loop.
type History struct {
	sets []photo.ResultSet
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Prepend inserts set at section 0. Existing sections shift down by one.
func (h *History) Prepend(set photo.ResultSet) {
	h.sets = append(h.sets, photo.ResultSet{})
	copy(h.sets[1:], h.sets)
	h.sets[0] = set
}

// SectionCount returns the number of accumulated searches.
func (h *History) SectionCount() int {
	return len(h.sets)
}

// ItemCount returns the number of photos in section.
// It panics if section is out of range.
func (h *History) ItemCount(section int) int {
	return h.Section(section).Len()
}

// ItemAt returns the photo at index within section.
// It panics if section or index is out of range.
func (h *History) ItemAt(section, index int) photo.Item {
	set := h.Section(section)
	if index < 0 || index >= set.Len() {
		panic(fmt.Sprintf("history: item index %d out of range [0,%d) in section %d", index, set.Len(), section))
	}
	return set.At(index)
}

// Section returns the result set at section.
// It panics if section is out of range.
func (h *History) Section(section int) photo.ResultSet {
	if section < 0 || section >= len(h.sets) {
		panic(fmt.Sprintf("history: section %d out of range [0,%d)", section, len(h.sets)))
	}
	return h.sets[section]
}

// TotalItems returns the number of photos across all sections.
func (h *History) TotalItems() int {
	n := 0
	for _, s := range h.sets {
		n += s.Len()
	}
	return n
}
