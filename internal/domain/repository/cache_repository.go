package repository

import (
	"context"
	"time"
)

// CacheRepository is an optional short-TTL result cache.
// A nil implementation is valid: use cases must work without it.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
