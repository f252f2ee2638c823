// internal/catalog/registry.go
package catalog

import (
	"sync"
	"time"
)

// Registry hands out one View per storefront session and evicts views that
// have gone quiet, the same way the rate limiter tracks visitors.
type Registry struct {
	mu     sync.Mutex
	views  map[string]*View
	fetch  Fetcher
	maxAge time.Duration
}

func NewRegistry(fetch Fetcher) *Registry {
	r := &Registry{
		views:  make(map[string]*View),
		fetch:  fetch,
		maxAge: 30 * time.Minute,
	}

	go r.cleanupViews()

	return r
}

// Get returns the session's view, creating it on first sight.
func (r *Registry) Get(sessionID string) *View {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, exists := r.views[sessionID]
	if !exists {
		v = NewView(r.fetch)
		r.views[sessionID] = v
	}
	return v
}

func (r *Registry) cleanupViews() {
	for {
		time.Sleep(time.Minute)
		r.mu.Lock()
		for id, v := range r.views {
			if time.Since(v.LastSeen()) > r.maxAge {
				delete(r.views, id)
			}
		}
		r.mu.Unlock()
	}
}
