package usecase

import (
	"context"
	"time"
)

// RecommendCache caches recommendation result sets. Implementations must be
// safe to bypass: a nil cache or an unavailable backend only costs reads.
type RecommendCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
