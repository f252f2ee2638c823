// internal/catalog/view.go
package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

// ErrSuperseded is returned when a fetch completes after the view has
// already moved on to a different filter state. The caller should drop the
// result; the view keeps displaying rows for its current state.
var ErrSuperseded = errors.New("catalog: fetch superseded by newer filter state")

// Fetcher loads the rows matching a filter state from the data layer.
type Fetcher func(ctx context.Context, f FilterState) ([]models.Product, error)

const defaultFetchTimeout = 15 * time.Second

// View orchestrates one storefront session's catalog: it owns the current
// FilterState, memoizes fetched row sets by FilterState.Key, and discards
// responses that resolve after the state has changed again. Sort and view
// mode changes re-run the post-processor on cached rows without a fetch.
type View struct {
	mu           sync.Mutex
	fetch        Fetcher
	fetchTimeout time.Duration

	state     FilterState
	key       string
	loaded    bool
	displayed []models.Product
	cache     map[string][]models.Product
	cancel    context.CancelFunc
	lastSeen  time.Time
}

func NewView(fetch Fetcher) *View {
	return &View{
		fetch:        fetch,
		fetchTimeout: defaultFetchTimeout,
		cache:        make(map[string][]models.Product),
		lastSeen:     time.Now(),
	}
}

// Apply installs a new filter state and returns the post-processed rows for
// it. Identical keys and cache hits never touch the fetcher. When two
// Applies with different keys race, the later state wins: the earlier fetch
// is cancelled and its late result answered with ErrSuperseded. Racing
// Applies for the same key all succeed.
func (v *View) Apply(ctx context.Context, f FilterState) ([]models.Product, error) {
	v.mu.Lock()
	key := f.Key()
	v.state = f
	v.lastSeen = time.Now()

	if v.loaded && key == v.key {
		rows := v.displayed
		v.mu.Unlock()
		return PostProcess(f, rows), nil
	}

	if rows, ok := v.cache[key]; ok {
		v.key = key
		v.displayed = rows
		v.loaded = true
		v.mu.Unlock()
		return PostProcess(f, rows), nil
	}

	// Supersede any in-flight fetch for a previous state. A concurrent
	// fetch for the same key keeps running: both callers want the same
	// rows, and cancelling it would fail one of them for an unchanged
	// selection.
	if v.cancel != nil && key != v.key {
		v.cancel()
	}
	fctx, cancel := context.WithTimeout(ctx, v.fetchTimeout)
	v.cancel = cancel
	v.key = key
	v.mu.Unlock()

	rows, err := v.fetch(fctx, f)
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key != key {
		// A newer state took over while this fetch was in flight. Keep
		// the rows warm for a possible return to this selection.
		if err == nil {
			v.cache[key] = rows
		}
		return nil, ErrSuperseded
	}

	if err != nil {
		// The selection changed and its fetch failed: nothing valid to
		// show for this key.
		v.loaded = false
		v.displayed = nil
		return nil, err
	}

	v.cache[key] = rows
	v.displayed = rows
	v.loaded = true
	return PostProcess(f, rows), nil
}

// Refresh re-fetches the current state, bypassing the cache. On failure the
// previously displayed rows stay in place and the error is reported, so a
// transient outage never blanks an already-rendered list.
func (v *View) Refresh(ctx context.Context) ([]models.Product, error) {
	v.mu.Lock()
	f := v.state
	key := v.key
	fctx, cancel := context.WithTimeout(ctx, v.fetchTimeout)
	v.cancel = cancel
	v.mu.Unlock()

	rows, err := v.fetch(fctx, f)
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key != key {
		if err == nil {
			v.cache[key] = rows
		}
		return nil, ErrSuperseded
	}

	if err != nil {
		if v.loaded {
			return PostProcess(f, v.displayed), err
		}
		return nil, err
	}

	v.cache[key] = rows
	v.displayed = rows
	v.loaded = true
	return PostProcess(f, rows), nil
}

// State returns the view's current filter state.
func (v *View) State() FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// LastSeen reports the last time the view was applied or refreshed.
func (v *View) LastSeen() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}
