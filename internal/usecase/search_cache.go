package usecase

import (
	"context"
	"time"
)

// SearchCache is the cache surface used by the job search path. The Redis
// implementation degrades to a no-op when the server is unreachable, so a
// cache outage never fails a search.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
