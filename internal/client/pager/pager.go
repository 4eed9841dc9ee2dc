// Package pager implements the paginated list state holder behind every
// scrolling screen: a page cursor, the accumulated items, and the
// loading/last-page/failed flags. Accumulation is append-only per session;
// the cursor only advances until an explicit Reset.
package pager

import (
	"context"
	"sync"

	"github.com/mkornilov/tastebook/internal/client/models"
)

// Fetcher loads one page. Implementations wrap a remote service call.
type Fetcher[T any] func(ctx context.Context, page, size int, sortKey string) (models.Page[T], error)

// Pager owns the state of one paginated list. All methods are safe for
// concurrent use: the in-flight claim is taken under the mutex, so two
// back-to-back LoadMore calls dispatch at most one fetch per cursor
// position, and a Reset issued mid-fetch discards the stale response via
// the generation counter instead of appending it.
type Pager[T any] struct {
	fetch   Fetcher[T]
	size    int
	sortKey string

	mu         sync.Mutex
	page       int
	items      []T
	total      int64
	inflight   bool
	lastPage   bool
	loadFailed bool
	gen        uint64
}

// New builds a Pager with a fixed page size and sort key.
func New[T any](fetch Fetcher[T], size int, sortKey string) *Pager[T] {
	return &Pager[T]{fetch: fetch, size: size, sortKey: sortKey, total: -1}
}

// LoadMore fetches the next page and appends its content. It is a no-op
// while a fetch is in flight or once the last page has been reached.
// On failure the cursor does not advance and LoadFailed is set until the
// caller acknowledges it.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.inflight || p.lastPage {
		p.mu.Unlock()
		return nil
	}
	p.inflight = true
	p.gen++
	gen := p.gen
	page := p.page
	p.mu.Unlock()

	res, err := p.fetch(ctx, page, p.size, p.sortKey)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// Reset happened while the fetch was in flight; drop the result.
		return nil
	}
	p.inflight = false
	if err != nil {
		p.loadFailed = true
		return err
	}

	p.items = append(p.items, res.Content...)
	p.page++
	p.total = res.TotalCount
	if res.TotalCount > 0 {
		p.lastPage = int64(len(p.items)) >= res.TotalCount
	} else {
		p.lastPage = len(res.Content) < p.size
	}
	return nil
}

// Reset returns the pager to its initial state: no items, cursor at zero,
// last-page and failure flags cleared. Any in-flight fetch is invalidated.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.inflight = false
	p.items = nil
	p.page = 0
	p.total = -1
	p.lastPage = false
	p.loadFailed = false
}

// AckFailure clears the one-shot failure flag so a later failure can
// surface again.
func (p *Pager[T]) AckFailure() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadFailed = false
}

// Items returns a copy of the accumulated items.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Apply runs fn over the live item slice under the lock. Feature services
// use it to patch single fields (like/bookmark ids) after a mutation.
func (p *Pager[T]) Apply(fn func(items []T)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.items)
}

// Len reports how many items have accumulated.
func (p *Pager[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Page reports the next page the cursor will fetch.
func (p *Pager[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// TotalCount reports the last totalCount seen from the server, -1 before
// the first successful fetch.
func (p *Pager[T]) TotalCount() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// IsLastPage reports whether the final page has been consumed.
func (p *Pager[T]) IsLastPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPage
}

// Loading reports whether a fetch is in flight.
func (p *Pager[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inflight
}

// LoadFailed reports the one-shot failure flag.
func (p *Pager[T]) LoadFailed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadFailed
}
