package cache

import (
	"context"
	"time"
)

// Cache holds reference data that is read far more often than written,
// such as skill categories looked up by code.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
