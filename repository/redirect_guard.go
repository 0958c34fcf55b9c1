package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedirectGuard deduplicates success redirects: a replayed ?success=1 for
// the same (event, buyer) must not re-trigger the confirmation side effects.
type RedirectGuard interface {
	FirstSeen(ctx context.Context, key string) (bool, error)
}

type RedisRedirectGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRedirectGuard(client *redis.Client) *RedisRedirectGuard {
	return &RedisRedirectGuard{
		client: client,
		ttl:    24 * time.Hour,
	}
}

// FirstSeen returns true exactly once per key within the TTL window.
func (g *RedisRedirectGuard) FirstSeen(ctx context.Context, key string) (bool, error) {
	return g.client.SetNX(ctx, "checkout:success:"+key, 1, g.ttl).Result()
}
