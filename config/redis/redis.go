package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"slack-routine-bot/config"
)

var client *redis.Client

// Connect opens the shared Redis client and verifies the connection with a
// ping so a misconfigured store fails at startup, not on the first write.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client = redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// Disconnect closes the shared client.
func Disconnect() {
	if client != nil {
		_ = client.Close()
	}
}
