package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/card-wallet/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the redis instance described by settings and verifies it answers
func NewRedisClient(ctx context.Context, settings config.CacheSettings) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Address,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.Address, err)
	}

	return client, nil
}
