// internal/catalog/view_test.go
package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

// countingFetcher answers every state with one product named after the
// search term and counts invocations.
func countingFetcher(calls *int32) Fetcher {
	return func(ctx context.Context, f FilterState) ([]models.Product, error) {
		atomic.AddInt32(calls, 1)
		return []models.Product{testProduct(f.Search, nil, time.Now())}, nil
	}
}

func TestViewApplyMemoizesSameKey(t *testing.T) {
	var calls int32
	v := NewView(countingFetcher(&calls))

	first, err := v.Apply(context.Background(), FilterState{Search: "onion"})
	require.NoError(t, err)
	second, err := v.Apply(context.Background(), FilterState{Search: "onion"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, names(first), names(second))
}

func TestViewSortChangeDoesNotRefetch(t *testing.T) {
	var calls int32
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	fetch := func(ctx context.Context, f FilterState) ([]models.Product, error) {
		atomic.AddInt32(&calls, 1)
		return []models.Product{
			testProduct("Beta", nil, base),
			testProduct("Alpha", nil, base.Add(time.Hour)),
		}, nil
	}
	v := NewView(fetch)

	newest, err := v.Apply(context.Background(), FilterState{SortBy: SortNewest})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, names(newest))

	byName, err := v.Apply(context.Background(), FilterState{SortBy: SortNameDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Alpha"}, names(byName))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestViewReturnToPreviousSelectionHitsCache(t *testing.T) {
	var calls int32
	v := NewView(countingFetcher(&calls))

	_, err := v.Apply(context.Background(), FilterState{Search: "onion"})
	require.NoError(t, err)
	_, err = v.Apply(context.Background(), FilterState{Search: "cumin"})
	require.NoError(t, err)

	back, err := v.Apply(context.Background(), FilterState{Search: "onion"})
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, []string{"onion"}, names(back))
}

func TestViewSupersededFetchIsDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls int32

	fetch := func(ctx context.Context, f FilterState) ([]models.Product, error) {
		atomic.AddInt32(&calls, 1)
		if f.Search == "slow" {
			entered <- struct{}{}
			<-release
		}
		return []models.Product{testProduct(f.Search, nil, time.Now())}, nil
	}
	v := NewView(fetch)

	slowErr := make(chan error, 1)
	go func() {
		_, err := v.Apply(context.Background(), FilterState{Search: "slow"})
		slowErr <- err
	}()

	// Wait until the slow fetch is in flight, then move the view on
	<-entered
	fast, err := v.Apply(context.Background(), FilterState{Search: "fast"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fast"}, names(fast))

	close(release)
	assert.ErrorIs(t, <-slowErr, ErrSuperseded)

	// The view still shows the winning state
	assert.Equal(t, "fast", v.State().Search)

	// The late result was cached, so returning to it costs no fetch
	back, err := v.Apply(context.Background(), FilterState{Search: "slow"})
	require.NoError(t, err)
	assert.Equal(t, []string{"slow"}, names(back))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestViewConcurrentSameKeyAppliesBothSucceed(t *testing.T) {
	var calls int32
	release := make(chan struct{})

	fetch := func(ctx context.Context, f FilterState) ([]models.Product, error) {
		atomic.AddInt32(&calls, 1)
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return []models.Product{testProduct(f.Search, nil, time.Now())}, nil
	}
	v := NewView(fetch)

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := v.Apply(context.Background(), FilterState{Search: "onion"})
			errs <- err
		}()
	}

	// Wait until both fetches are in flight, then let them finish. Neither
	// may fail: the selection never changed between the two calls.
	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&calls) < 2 {
		select {
		case <-deadline:
			t.Fatal("fetches never started")
		case <-time.After(5 * time.Millisecond):
		}
	}
	close(release)

	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	rows, err := v.Apply(context.Background(), FilterState{Search: "onion"})
	require.NoError(t, err)
	assert.Equal(t, []string{"onion"}, names(rows))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestViewApplyErrorLeavesNothingLoaded(t *testing.T) {
	var fail atomic.Bool
	var calls int32
	fail.Store(true)

	fetch := func(ctx context.Context, f FilterState) ([]models.Product, error) {
		atomic.AddInt32(&calls, 1)
		if fail.Load() {
			return nil, errors.New("connection refused")
		}
		return []models.Product{testProduct(f.Search, nil, time.Now())}, nil
	}
	v := NewView(fetch)

	rows, err := v.Apply(context.Background(), FilterState{Search: "onion"})
	require.Error(t, err)
	assert.Nil(t, rows)

	// Same selection again: the failure was not cached
	fail.Store(false)
	rows, err = v.Apply(context.Background(), FilterState{Search: "onion"})
	require.NoError(t, err)
	assert.Equal(t, []string{"onion"}, names(rows))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestViewRefreshBypassesCache(t *testing.T) {
	var calls int32
	v := NewView(countingFetcher(&calls))

	_, err := v.Apply(context.Background(), FilterState{Search: "onion"})
	require.NoError(t, err)

	_, err = v.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestViewRefreshKeepsRowsOnFailure(t *testing.T) {
	var fail atomic.Bool
	fetch := func(ctx context.Context, f FilterState) ([]models.Product, error) {
		if fail.Load() {
			return nil, errors.New("connection refused")
		}
		return []models.Product{testProduct("onion", nil, time.Now())}, nil
	}
	v := NewView(fetch)

	_, err := v.Apply(context.Background(), FilterState{Search: "onion"})
	require.NoError(t, err)

	fail.Store(true)
	rows, err := v.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"onion"}, names(rows))
}
