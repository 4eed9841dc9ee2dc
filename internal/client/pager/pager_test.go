package pager

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkornilov/tastebook/internal/client/models"
)

// pages builds a fetcher serving the given pages in order, then empty pages.
func pages(t *testing.T, total int64, content ...[]int) (Fetcher[int], *atomic.Int32) {
	t.Helper()
	calls := &atomic.Int32{}
	fetch := func(ctx context.Context, page, size int, sortKey string) (models.Page[int], error) {
		calls.Add(1)
		if page >= len(content) {
			return models.Page[int]{Content: nil, TotalCount: total}, nil
		}
		return models.Page[int]{Content: content[page], TotalCount: total}, nil
	}
	return fetch, calls
}

func TestLoadMore_AdvancesUntilShortPage(t *testing.T) {
	// totalCount absent (0): fall back to the short-page heuristic.
	fetch, calls := pages(t, 0, []int{1, 2, 3}, []int{4, 5, 6}, []int{7})
	p := New(fetch, 3, "new")
	ctx := context.Background()

	require.NoError(t, p.LoadMore(ctx))
	require.Equal(t, 1, p.Page())
	require.False(t, p.IsLastPage())

	require.NoError(t, p.LoadMore(ctx))
	require.Equal(t, 2, p.Page())
	require.False(t, p.IsLastPage())

	require.NoError(t, p.LoadMore(ctx))
	require.True(t, p.IsLastPage())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, p.Items())

	// No further fetches once the last page is known.
	require.NoError(t, p.LoadMore(ctx))
	require.Equal(t, int32(3), calls.Load())
}

func TestLoadMore_TotalCountAvoidsExtraEmptyFetch(t *testing.T) {
	// 6 items, page size 3: the second page is full, but totalCount says
	// we are done, so no third fetch is needed.
	fetch, calls := pages(t, 6, []int{1, 2, 3}, []int{4, 5, 6})
	p := New(fetch, 3, "new")
	ctx := context.Background()

	require.NoError(t, p.LoadMore(ctx))
	require.NoError(t, p.LoadMore(ctx))
	require.True(t, p.IsLastPage())
	require.NoError(t, p.LoadMore(ctx))
	require.Equal(t, int32(2), calls.Load())
}

func TestReset_Idempotent(t *testing.T) {
	fetch, _ := pages(t, 0, []int{1, 2, 3})
	p := New(fetch, 3, "new")
	require.NoError(t, p.LoadMore(context.Background()))
	require.NotZero(t, p.Len())

	for i := 0; i < 3; i++ {
		p.Reset()
		require.Empty(t, p.Items())
		require.Zero(t, p.Page())
		require.False(t, p.IsLastPage())
		require.False(t, p.LoadFailed())
	}
}

func TestLoadMore_FailureSetsFlagAndKeepsCursor(t *testing.T) {
	boom := errors.New("boom")
	failing := func(ctx context.Context, page, size int, sortKey string) (models.Page[int], error) {
		return models.Page[int]{}, boom
	}
	p := New(failing, 3, "new")

	err := p.LoadMore(context.Background())
	require.ErrorIs(t, err, boom)
	require.True(t, p.LoadFailed())
	require.Zero(t, p.Page(), "cursor must not advance on failure")
	require.Empty(t, p.Items())

	p.AckFailure()
	require.False(t, p.LoadFailed())
}

func TestLoadMore_SingleFetchPerCursorPosition(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	calls := &atomic.Int32{}
	fetch := func(ctx context.Context, page, size int, sortKey string) (models.Page[int], error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return models.Page[int]{Content: []int{1, 2, 3}}, nil
	}
	p := New(fetch, 3, "new")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = p.LoadMore(context.Background())
	}()

	<-started
	// Double-tap while the first fetch is still in flight: must be a no-op.
	require.NoError(t, p.LoadMore(context.Background()))
	require.Equal(t, int32(1), calls.Load())

	close(release)
	wg.Wait()
	require.Equal(t, []int{1, 2, 3}, p.Items())
}

func TestReset_DiscardsInFlightResponse(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, page, size int, sortKey string) (models.Page[int], error) {
		close(started)
		<-release
		return models.Page[int]{Content: []int{1, 2, 3}}, nil
	}
	p := New(fetch, 3, "new")

	done := make(chan error, 1)
	go func() { done <- p.LoadMore(context.Background()) }()

	<-started
	p.Reset()
	close(release)
	require.NoError(t, <-done)

	require.Empty(t, p.Items(), "stale response must not repopulate a reset pager")
	require.Zero(t, p.Page())
}

func TestApply_PatchesItemsInPlace(t *testing.T) {
	fetch, _ := pages(t, 0, []int{1, 2, 3})
	p := New(fetch, 3, "new")
	require.NoError(t, p.LoadMore(context.Background()))

	p.Apply(func(items []int) {
		for i := range items {
			items[i] *= 10
		}
	})
	require.Equal(t, []int{10, 20, 30}, p.Items())
}
