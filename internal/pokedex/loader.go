package pokedex

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokeapi"
)

// DefaultLimit is the number of index entries requested.
const DefaultLimit = 151

// Fetcher is the subset of the API client the loader needs.
type Fetcher interface {
	ListPokemon(ctx context.Context, limit int) (*pokeapi.IndexPage, error)
	GetPokemon(ctx context.Context, ref string) (*pokeapi.Detail, error)
}

// Loader performs the one-shot index + detail fan-out.
type Loader struct {
	fetcher     Fetcher
	limit       int
	concurrency int
	onProgress  ProgressCallback
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLimit sets the index page size. Values below 1 keep the default.
func WithLimit(n int) LoaderOption {
	return func(l *Loader) {
		if n >= 1 {
			l.limit = n
		}
	}
}

// WithConcurrency bounds in-flight detail requests. 0 means unbounded.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n >= 0 {
			l.concurrency = n
		}
	}
}

// WithProgress registers a callback invoked after each resolved detail.
func WithProgress(cb ProgressCallback) LoaderOption {
	return func(l *Loader) {
		l.onProgress = cb
	}
}

// NewLoader returns a Loader reading from f.
func NewLoader(f Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{fetcher: f, limit: DefaultLimit}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit returns the configured index page size.
func (l *Loader) Limit() int {
	return l.limit
}

// Load fetches the index, resolves every entry concurrently and returns the
// mapped list in index order. The first failing request or mapping cancels
// the remaining work and is returned; no partial list is ever produced.
func (l *Loader) Load(ctx context.Context) ([]Pokemon, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	page, err := l.fetcher.ListPokemon(ctx, l.limit)
	if err != nil {
		return nil, err
	}

	results := make([]Pokemon, len(page.Results))
	progress := NewProgress(len(page.Results))

	g, gCtx := errgroup.WithContext(ctx)
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}

	for i, entry := range page.Results {
		g.Go(func() error {
			detail, fetchErr := l.fetcher.GetPokemon(gCtx, entry.URL)
			if fetchErr != nil {
				return fetchErr
			}
			p, mapErr := MapDetail(detail)
			if mapErr != nil {
				return fmt.Errorf("mapping %s: %w", entry.URL, mapErr)
			}
			// Each goroutine owns exactly one slot.
			results[i] = p

			snap := progress.Add()
			if l.onProgress != nil {
				l.onProgress(snap)
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		log.Warn().Err(err).Int("count", len(page.Results)).Msg("pokemon load failed")
		return nil, err
	}

	log.Info().
		Int("count", len(results)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("pokemon loaded")
	return results, nil
}
