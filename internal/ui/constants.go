// Package ui provides shared UI constants and component helpers.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of lines kept visible around the selection.
	ScrollMargin = 1

	// StatusBarHeight is the single status line under the grid.
	StatusBarHeight = 1

	// SectionHeaderHeight is the search term line above each section.
	SectionHeaderHeight = 1

	// SectionInset is the blank space below each section.
	SectionInset = 1
)
