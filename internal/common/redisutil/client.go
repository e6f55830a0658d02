package redisutil

import (
	"context"

	"github.com/BlackDevil1928/Shramik-Care/internal/config"

	"github.com/go-redis/redis/v8"
)

// Client is an alias so callers do not import go-redis directly.
type Client = redis.Client

// NewRedisClient creates a Redis client from config.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping verifies the Redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func Close(client *redis.Client) error {
	return client.Close()
}
