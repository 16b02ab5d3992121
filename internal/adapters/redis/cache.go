package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rafaelleal24/inventory/internal/core/port"
)

// Cache stores JSON encoded values under <prefix>:<name>:<id>. A ttl of
// zero keeps the value until it is overwritten.
type Cache[T any] struct {
	client *Client
	name   string
}

func NewCache[T any](client *Client, name string) port.CachePort[T] {
	return &Cache[T]{client: client, name: name}
}

func (c *Cache[T]) Get(ctx context.Context, id string) (*T, error) {
	data, err := c.client.Get(ctx, c.client.key(c.name, id))
	if err != nil || data == nil {
		return nil, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

func (c *Cache[T]) Set(ctx context.Context, id string, value *T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.client.key(c.name, id), data, ttl)
}
