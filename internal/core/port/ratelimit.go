package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// RateLimiterPort counts attempts per key in fixed windows.
type RateLimiterPort interface {
	// Allow records an attempt and reports whether it is within limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	// Reset forgets the attempts recorded for key.
	Reset(ctx context.Context, key string) error
}
