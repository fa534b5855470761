// Package search runs photo searches off the UI loop and reports each one
// as a single completion message.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/photogrid/internal/flickr"
	"github.com/llehouerou/photogrid/internal/photo"
)

// DefaultConcurrency bounds parallel thumbnail downloads per search.
const DefaultConcurrency = 4

// Searcher queries the photo API.
type Searcher interface {
	Search(ctx context.Context, text string, perPage int) ([]flickr.Photo, error)
}

// Loader turns a thumbnail URL into an image handle.
type Loader interface {
	Load(ctx context.Context, url string) (photo.Handle, error)
}

// Error is a failed search. The history is left untouched when it occurs.
type Error struct {
	Term string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("search %q: %v", e.Term, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CompletedMsg is sent exactly once per search. Either Err is set or
// Results holds the found photos.
type CompletedMsg struct {
	Seq     uint64 // request number, for logs only
	Term    string
	Results photo.ResultSet
	Dropped int // photos left out because their thumbnail failed
	Err     error
}

// Options configures a Provider.
type Options struct {
	PerPage     int
	Concurrency int
	Logger      *slog.Logger
}

// Provider issues searches. Identical terms are never coalesced and no
// request can be canceled once started.
type Provider struct {
	searcher    Searcher
	loader      Loader
	perPage     int
	concurrency int
	logger      *slog.Logger
	seq         atomic.Uint64
}

// New creates a provider.
func New(searcher Searcher, loader Loader, opts Options) *Provider {
	if opts.PerPage <= 0 {
		opts.PerPage = flickr.DefaultPerPage
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Provider{
		searcher:    searcher,
		loader:      loader,
		perPage:     opts.PerPage,
		concurrency: opts.Concurrency,
		logger:      opts.Logger,
	}
}

// Search returns a command that performs the search for term and yields
// a CompletedMsg. bubbletea delivers completions in the order they finish,
// not the order they were issued.
func (p *Provider) Search(term string) tea.Cmd {
	seq := p.seq.Add(1)
	p.logger.Info("search started", "seq", seq, "term", term)
	return func() tea.Msg {
		return p.Run(context.Background(), seq, term)
	}
}

// Run performs one search synchronously.
func (p *Provider) Run(ctx context.Context, seq uint64, term string) CompletedMsg {
	msg := CompletedMsg{Seq: seq, Term: term}

	photos, err := p.searcher.Search(ctx, term, p.perPage)
	if err != nil {
		msg.Err = &Error{Term: term, Err: err}
		p.logger.Error("search failed", "seq", seq, "term", term, "error", err)
		return msg
	}

	all := make([]photo.Item, len(photos))
	for i, ph := range photos {
		all[i] = photo.NewItem(ph.ID, ph.Farm, ph.Server, ph.Secret, ph.Title, photo.Handle{})
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i := range all {
		g.Go(func() error {
			h, err := p.loader.Load(gCtx, all[i].ImageURL(photo.SizeSmall))
			if err != nil {
				// A missing thumbnail drops the photo, not the search.
				p.logger.Warn("thumbnail failed", "seq", seq, "photo", all[i].PhotoID, "error", err)
				return nil
			}
			all[i].Thumbnail = h
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers never return errors

	items := make([]photo.Item, 0, len(all))
	for _, it := range all {
		if !it.Thumbnail.Valid() {
			msg.Dropped++
			continue
		}
		items = append(items, it)
	}

	results, err := photo.NewResultSet(term, items)
	if err != nil {
		msg.Err = &Error{Term: term, Err: err}
		p.logger.Error("search failed", "seq", seq, "term", term, "error", err)
		return msg
	}

	msg.Results = results
	p.logger.Info("search completed",
		"seq", seq, "term", results.Term(), "found", results.Len(), "dropped", msg.Dropped)
	return msg
}
