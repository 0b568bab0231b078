package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository defines the Redis-backed session store and the fixed-window
// request counter used by the rate limiter.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	key := "session:" + sessionID
	return r.client.Set(ctx, key, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	if r.client == nil {
		return 0, nil
	}
	key := "session:" + sessionID
	val, err := r.client.Get(ctx, key).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	key := "session:" + sessionID
	return r.client.Del(ctx, key).Err()
}

// Hit increments the request counter for the key and returns the count
// within the current window. The increment and the expiry are sent in one
// transaction, and the expiry is NX on every hit, so the key cannot end up
// as a counter without a TTL.
func (r *redis) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	if r.client == nil {
		return 0, nil
	}
	key = "ratelimit:" + key

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
