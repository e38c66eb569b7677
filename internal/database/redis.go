package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ruok-app/ruok-api/internal/config"
)

// ConnectRedis opens the Redis client used as the chat history cache.
// Returns nil without error when no address is configured; the chat
// orchestrator treats a nil client as "no history".
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	config.Logger.Infow("connected to redis", "addr", cfg.RedisAddr)

	return client, nil
}
