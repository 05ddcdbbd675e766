package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/vamshigadde09/GWG/config"
)

// NewRedisClient returns nil when no address is configured; callers treat a
// nil client as "limiter disabled".
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
}
