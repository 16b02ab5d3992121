package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/inventory/internal/core/port"
)

// fixedWindowScript counts an attempt. The first attempt of a window sets
// its expiry, so the counter disappears on its own once the window ends.
var fixedWindowScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// RateLimiter keeps one counter per key under <prefix>:ratelimit:<key>.
type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) port.RateLimiterPort {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if window < time.Millisecond {
		return false, fmt.Errorf("ratelimit: window %s is shorter than 1ms", window)
	}

	count, err := fixedWindowScript.Run(ctx, r.client.rdb, []string{r.counterKey(key)}, window.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("ratelimit: %w", err)
	}
	return count <= limit, nil
}

func (r *RateLimiter) Reset(ctx context.Context, key string) error {
	if err := r.client.rdb.Del(ctx, r.counterKey(key)).Err(); err != nil {
		return fmt.Errorf("ratelimit: %w", err)
	}
	return nil
}

func (r *RateLimiter) counterKey(key string) string {
	return r.client.key("ratelimit", key)
}
