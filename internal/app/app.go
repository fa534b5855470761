// Package app is the root bubbletea model: the search prompt, the photo
// grid over the search history, and the activity and status bars.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/photogrid/internal/history"
	"github.com/llehouerou/photogrid/internal/keymap"
	"github.com/llehouerou/photogrid/internal/ui/grid"
	"github.com/llehouerou/photogrid/internal/ui/helpbindings"
	"github.com/llehouerou/photogrid/internal/ui/styles"
	"github.com/llehouerou/photogrid/internal/ui/textinput"
	"github.com/llehouerou/photogrid/internal/ui/thumbs"
)

// Searcher starts a search; the returned command yields one
// search.CompletedMsg. *search.Provider implements it.
type Searcher interface {
	Search(term string) tea.Cmd
}

// CacheStats reports thumbnail cache usage for the status bar.
type CacheStats interface {
	DiskSize() int64
}

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupSearch
	PopupHelp
)

// maxRecent bounds the terms recalled in the search prompt.
const maxRecent = 20

// Options wires the model's collaborators.
type Options struct {
	Searcher Searcher
	Renderer *thumbs.Renderer // nil disables images
	Cache    CacheStats       // optional
	Columns  int
	Padding  int
	Logger   *slog.Logger
}

// Model is the root application model.
type Model struct {
	history  *history.History
	grid     grid.Model
	input    textinput.Model
	help     helpbindings.Model
	popup    PopupType
	keys     *keymap.Resolver
	spinner  spinner.Model
	searcher Searcher
	renderer *thumbs.Renderer
	cache    CacheStats
	logger   *slog.Logger

	pending       int
	recent        []string
	notifications []Notification
	nextNoticeID  int64
	cacheBytes    int64
	quitting      bool

	width  int
	height int
}

// New creates the application model with an empty history.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	h := history.New()
	g := grid.New(h, opts.Columns, opts.Padding)
	g.SetImages(opts.Renderer.Enabled())

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = styles.T().S().Selected

	return Model{
		history:  h,
		grid:     g,
		input:    textinput.New(),
		help:     helpbindings.New(),
		keys:     keymap.Default(),
		spinner:  sp,
		searcher: opts.Searcher,
		renderer: opts.Renderer,
		cache:    opts.Cache,
		logger:   opts.Logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// History returns the search history shown by the grid.
func (m Model) History() *history.History {
	return m.history
}

// Pending returns the number of searches in flight.
func (m Model) Pending() int {
	return m.pending
}

// Notifications returns the visible notifications, oldest first.
func (m Model) Notifications() []Notification {
	return m.notifications
}

// ActivePopup returns the open popup.
func (m Model) ActivePopup() PopupType {
	return m.popup
}
