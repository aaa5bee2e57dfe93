package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// Incr bumps an integer counter key; used for generation-based
	// invalidation of listing pages.
	Incr(ctx context.Context, key string) (int64, error)
}
