package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rafaelleal24/inventory/internal/core/port"
)

type window struct {
	count     int
	expiresAt time.Time
}

// RateLimiter counts attempts per key in fixed windows. The first attempt
// opens the window, matching the Redis INCR/EXPIRE limiter.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewRateLimiter() port.RateLimiterPort {
	return &RateLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (r *RateLimiter) Allow(_ context.Context, key string, limit int, period time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.windows[key]
	if !ok || !now.Before(w.expiresAt) {
		w = &window{expiresAt: now.Add(period)}
		r.windows[key] = w
	}
	w.count++
	return w.count <= limit, nil
}

func (r *RateLimiter) Reset(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.windows, key)
	return nil
}
