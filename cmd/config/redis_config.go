package config

import (
	"context"
	"time"

	"healthy-eats-backend/internal/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns nil when REDIS_ADDR is unset or the server does not answer.
func ConnectRedis(log *zap.Logger) redis.UniversalClient {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{addr},
		Password:     utils.GetConfig("REDIS_PASSWORD"),
		DB:           utils.GetConfigInt("REDIS_DB", 0),
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, recommendation cache disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	log.Info("redis connected", zap.String("addr", addr))
	return client
}
