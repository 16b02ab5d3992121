package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rafaelleal24/inventory/internal/core/port"
)

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

func (e cacheEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Cache is a process-local port.CachePort. Values are stored JSON encoded,
// like the Redis cache, so readers never share state with writers.
type Cache[T any] struct {
	mu      sync.Mutex
	prefix  string
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewCache[T any](prefix string) port.CachePort[T] {
	return &Cache[T]{
		prefix:  prefix,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache[T]) key(id string) string {
	return fmt.Sprintf("%s:%s", c.prefix, id)
}

func (c *Cache[T]) Get(_ context.Context, id string) (*T, error) {
	c.mu.Lock()
	entry, ok := c.entries[c.key(id)]
	if ok && entry.expired(c.now()) {
		delete(c.entries, c.key(id))
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return nil, nil
	}

	var value T
	if err := json.Unmarshal(entry.data, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

func (c *Cache[T]) Set(_ context.Context, id string, value *T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep()
	c.entries[c.key(id)] = c.newEntry(data, ttl)
	return nil
}

// ttl <= 0 keeps the entry until it is overwritten.
func (c *Cache[T]) newEntry(data []byte, ttl time.Duration) cacheEntry {
	entry := cacheEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	return entry
}

// sweep drops expired entries. Callers hold c.mu.
func (c *Cache[T]) sweep() {
	now := c.now()
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
}
