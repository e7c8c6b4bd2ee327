package variation

import (
	"context"
	"sync"

	"restaurant-ordering-api/models"
)

// CatalogFetch loads the options bound to a catalog category. An empty
// result means "no options yet" and is not an error.
type CatalogFetch func(ctx context.Context, category string) ([]models.VariationOption, error)

// FetchSession guards asynchronous catalog loads for one selection
// session. Results that resolve after the session has been closed, or
// after a newer load for the same session generation started, are
// discarded so a slow fetch can never write into a fresh session.
type FetchSession struct {
	fetch CatalogFetch

	mu     sync.Mutex
	gen    uint64
	closed bool
}

func NewFetchSession(fetch CatalogFetch) *FetchSession {
	return &FetchSession{fetch: fetch}
}

// Load fetches a category's options in the background and hands them
// to apply only if this session is still the current one when the
// fetch resolves. Fetch errors are reported through onErr (may be nil).
func (s *FetchSession) Load(ctx context.Context, category string, apply func([]models.VariationOption), onErr func(error)) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	gen := s.gen
	s.mu.Unlock()

	go func() {
		options, err := s.fetch(ctx, category)

		s.mu.Lock()
		stale := s.closed || s.gen != gen
		s.mu.Unlock()
		if stale {
			return
		}
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return
		}
		apply(options)
	}()
}

// Reset reopens the session for a new selection, invalidating any
// fetch still in flight from the previous one.
func (s *FetchSession) Reset() {
	s.mu.Lock()
	s.gen++
	s.closed = false
	s.mu.Unlock()
}

// Close abandons the session; pending fetches have no further effect.
func (s *FetchSession) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
