package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"healthy-eats-backend/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "healthy-eats:recommendations:"

type (
	// RecommendationCache stores finished recommendation lists by key.
	// Failures are logged and treated as misses.
	RecommendationCache interface {
		Get(ctx context.Context, key string) ([]domain.Dish, bool)
		Set(ctx context.Context, key string, dishes []domain.Dish)
	}

	redisRecommendationCache struct {
		client redis.UniversalClient
		ttl    time.Duration
		logger *zap.Logger
	}

	noopRecommendationCache struct{}
)

func NewRedisRecommendationCache(client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) RecommendationCache {
	return &redisRecommendationCache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("cache"),
	}
}

func NewNoopRecommendationCache() RecommendationCache {
	return noopRecommendationCache{}
}

func (c *redisRecommendationCache) Get(ctx context.Context, key string) ([]domain.Dish, bool) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var dishes []domain.Dish
	if err := json.Unmarshal(data, &dishes); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return dishes, true
}

func (c *redisRecommendationCache) Set(ctx context.Context, key string, dishes []domain.Dish) {
	data, err := json.Marshal(dishes)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (noopRecommendationCache) Get(context.Context, string) ([]domain.Dish, bool) {
	return nil, false
}

func (noopRecommendationCache) Set(context.Context, string, []domain.Dish) {}
