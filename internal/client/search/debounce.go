// Package search implements the reactive query path: every keystroke
// supersedes the previous query, cancelling its in-flight request so a slow
// response to an earlier keystroke can never overwrite the result of a
// later one.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/logging"
)

// Func performs one search request.
type Func func(ctx context.Context, query string) ([]models.SearchHit, error)

// Debouncer republishes results for the latest query only. OnResults is
// invoked with the hits of the most recent non-blank query, or nil when the
// query goes blank. Errors are logged and swallowed; the previous results
// stay published.
type Debouncer struct {
	search Func
	delay  time.Duration
	notify func([]models.SearchHit)
	log    logging.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// New builds a Debouncer. delay may be zero to dispatch immediately.
func New(search Func, delay time.Duration, onResults func([]models.SearchHit), log logging.Logger) *Debouncer {
	return &Debouncer{search: search, delay: delay, notify: onResults, log: log}
}

// Query registers the latest query text. A blank query clears results
// without dispatching. A non-blank query cancels any in-flight search and,
// after the debounce delay, dispatches a new one; only the newest query's
// results are ever published.
func (d *Debouncer) Query(ctx context.Context, query string) {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		d.mu.Unlock()
		d.notify(nil)
		return
	}

	cctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.mu.Unlock()

	go d.run(cctx, gen, query)
}

func (d *Debouncer) run(ctx context.Context, gen uint64, query string) {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return
		}
	}

	hits, err := d.search(ctx, query)

	d.mu.Lock()
	stale := gen != d.gen
	d.mu.Unlock()
	if stale || ctx.Err() != nil {
		return
	}
	if err != nil {
		if d.log != nil {
			d.log.Warn(ctx, "search failed", "query", query, "error", err)
		}
		return
	}
	d.notify(hits)
}

// Stop cancels any in-flight search without publishing anything.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
