package ports

import (
	"context"
	"time"
)

// ListCache is a read-through cache for list endpoints. Get reports a miss
// with ok=false and no error; cache failures must never fail a request.
type ListCache interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}
