package client

import (
	"context"
	"sync"
	"time"
)

type request struct {
	ProfileID string
	Accessed  time.Time
}

// Registry remembers the last profile each client looked at, so reloading
// the same page is not counted as another visit
type Registry struct {
	mu       sync.RWMutex
	requests map[string]request // key is the client (IP)
	limit    int
	maxAge   time.Duration
}

// NewRegistry keeps entries until there are more than limit of them,
// then drops those older than maxAge
func NewRegistry(limit int, maxAge time.Duration) *Registry {
	return &Registry{
		requests: make(map[string]request),
		limit:    limit,
		maxAge:   maxAge,
	}
}

// Continue records the request and reports whether it is a new visit
// (false when the client requested the same profile last time)
func (r *Registry) Continue(client string, profileID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, ok := r.requests[client]
	r.requests[client] = request{ProfileID: profileID, Accessed: time.Now()}

	return !ok || last.ProfileID != profileID
}

// Flush removes expired requests once the registry grew beyond its limit
func (r *Registry) Flush(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.requests) <= r.limit {
		return
	}
	for key, value := range r.requests {
		if now.Sub(value.Accessed) > r.maxAge {
			delete(r.requests, key)
		}
	}
}

// Count returns how many different clients are currently active
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.requests)
}

// Run flushes the registry every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.Flush(now)
		}
	}
}
