package redisclient

import (
	"context"
	"fmt"

	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/redis/go-redis/v9"
)

// New connects to redis and pings it, the client is closed if the ping fails.
func New(ctx context.Context, cfg *config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,

		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,

		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: cfg.MinRetryBackoff,
		MaxRetryBackoff: cfg.MaxRetryBackoff,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis addr=%s: %w", cfg.Addr, err)
	}

	return client, nil
}
