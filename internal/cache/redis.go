package cache

import (
	"context"
	"time"

	"github.com/helpdesk-ph/ticketdesk/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis using the loaded configuration. A nil
// return disables caching; the service degrades to direct reads.
func NewRedisClient() *redis.Client {
	if config.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
