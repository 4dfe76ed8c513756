package cachedboards

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/gareboard/gareboard/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

// Cache holds marshalled board responses for a short window. The board is
// recomputed on every miss, so a cold or absent cache only costs time.
type Cache struct {
	store *cache.Cache[string]
}

func (c *Cache) Setup() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(60*time.Second))

	c.store = cache.New[string](redisStore)
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.store == nil {
		return "", false
	}

	payload, err := c.store.Get(ctx, key)
	if err != nil {
		return "", false
	}

	return payload, true
}

func (c *Cache) Set(ctx context.Context, key string, payload string) {
	if c == nil || c.store == nil {
		return
	}

	if err := c.store.Set(ctx, key, payload); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Failed to cache board response")
	}
}
