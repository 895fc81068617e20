package cache

import (
	"context"
	"testing"
	"time"

	"healthy-eats-backend/domain"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNoopRecommendationCache(t *testing.T) {
	c := NewNoopRecommendationCache()
	ctx := context.Background()

	c.Set(ctx, "key", []domain.Dish{{Name: "Soup"}})
	dishes, ok := c.Get(ctx, "key")

	assert.False(t, ok)
	assert.Nil(t, dishes)
}

func TestRedisRecommendationCache_UnreachableServerIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewRedisRecommendationCache(client, time.Minute, zap.NewNop())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.Set(ctx, "key", []domain.Dish{{Name: "Soup"}})
	})
	dishes, ok := c.Get(ctx, "key")

	assert.False(t, ok)
	assert.Nil(t, dishes)
}
