package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shootbook/pkg/cache"
)

// InitRedis connects and pings the shared rate-limit store.
func InitRedis(addr, password string, db int) (*redis.Client, error) {
	client := cache.NewRedisClient(addr, password, db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
