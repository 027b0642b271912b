package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"payadmin-backend/config"
	"payadmin-backend/pkg/logger"
)

const redisPingTimeout = 5 * time.Second

// RedisClient backs the token denylist and, with STORAGE_DRIVER=redis, the
// credential store.
var RedisClient *redis.Client

// ConnectRedis dials redis and fails unless it answers a ping.
func ConnectRedis(ctx context.Context, cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("redis %s: %w", cfg.RedisFullAddr(), err)
	}

	logger.Log.Info("Connected to redis", zap.String("addr", cfg.RedisFullAddr()))
	RedisClient = client
	return nil
}
