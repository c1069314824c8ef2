package storage

import (
	"context"
	"errors"
	"time"

	"menu-storefront/storefront-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const PopularSetKey = "popular:items"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) MenuItemKey(slug string) string {
	return "cms:menu-item:" + slug
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.Client.Set(ctx, key, value, c.TTL).Err()
}

// TopViewed reads the highest scored members of the popularity set.
func (c *RedisCache) TopViewed(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		return nil, nil
	}
	res, err := c.Client.ZRevRangeWithScores(ctx, PopularSetKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	items := make([]domain.PopularItem, 0, len(res))
	for _, z := range res {
		slug, ok := z.Member.(string)
		if !ok {
			continue
		}
		items = append(items, domain.PopularItem{Slug: slug, Views: z.Score})
	}
	return items, nil
}
