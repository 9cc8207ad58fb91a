package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"go-user-api/config"
	"go-user-api/logger"
)

// ConnectRedis initializes and returns a new Redis client used by the user
// service for cache-aside reads.
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	c := cfg.Redis

	redisAddr := fmt.Sprintf("%s:%s", c.Host, c.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: c.Password,
		DB:       0,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		logger.Log.WithError(err).Error("Failed to ping Redis")
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Log.WithField("address", redisAddr).Info("Redis connection established successfully")
	return rdb, nil
}
