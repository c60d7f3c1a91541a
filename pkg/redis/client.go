package redis

import (
	"github.com/redis/go-redis/v9"

	"worktrack/internal/config"
)

// NewRedisClient builds the client used for snapshot caching and
// notification de-duplication.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
