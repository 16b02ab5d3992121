package redis_test

import (
	"context"
	"testing"
	"time"

	adaptredis "github.com/rafaelleal24/inventory/internal/adapters/redis"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := adaptredis.NewRateLimiter(testClient)
	ctx := context.Background()

	t.Run("allows requests under limit", func(t *testing.T) {
		key := "auth:under"
		for i := 0; i < 3; i++ {
			allowed, err := rl.Allow(ctx, key, 5, 1*time.Minute)
			if err != nil {
				t.Fatalf("request %d: expected no error, got %v", i, err)
			}
			if !allowed {
				t.Fatalf("request %d: expected to be allowed", i)
			}
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		key := "auth:over"
		limit := 2
		for i := 0; i < limit; i++ {
			_, _ = rl.Allow(ctx, key, limit, 1*time.Minute)
		}

		allowed, err := rl.Allow(ctx, key, limit, 1*time.Minute)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if allowed {
			t.Fatal("expected request to be blocked (over limit)")
		}
	})

	t.Run("window expires and resets count", func(t *testing.T) {
		key := "auth:expire"
		limit := 1
		window := 1500 * time.Millisecond

		allowed, _ := rl.Allow(ctx, key, limit, window)
		if !allowed {
			t.Fatal("first request should be allowed")
		}

		allowed, _ = rl.Allow(ctx, key, limit, window)
		if allowed {
			t.Fatal("second request should be blocked")
		}

		time.Sleep(2 * time.Second)

		allowed, _ = rl.Allow(ctx, key, limit, window)
		if !allowed {
			t.Fatal("request after window should be allowed again")
		}
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		key := "auth:reset"
		_, _ = rl.Allow(ctx, key, 1, time.Minute)
		if allowed, _ := rl.Allow(ctx, key, 1, time.Minute); allowed {
			t.Fatal("second request should be blocked")
		}

		if err := rl.Reset(ctx, key); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if allowed, _ := rl.Allow(ctx, key, 1, time.Minute); !allowed {
			t.Fatal("request after reset should be allowed")
		}
	})

	t.Run("counter lives under the key prefix", func(t *testing.T) {
		_, _ = rl.Allow(ctx, "auth:prefixed", 5, time.Minute)

		data, err := testClient.Get(ctx, "inventory-test:ratelimit:auth:prefixed")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != "1" {
			t.Fatalf("expected counter 1, got %q", data)
		}
	})

	t.Run("rejects sub-millisecond windows", func(t *testing.T) {
		if _, err := rl.Allow(ctx, "auth:tiny", 1, time.Microsecond); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
