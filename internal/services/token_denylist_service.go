package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"payadmin-backend/internal/database"
)

const denylistPrefix = "denylist:"

func AddToDenylist(ctx context.Context, tokenString string, expiration time.Duration) error {
	if expiration <= 0 {
		return nil
	}
	key := denylistPrefix + tokenString
	return database.RedisClient.Set(ctx, key, 1, expiration).Err()
}

func IsDenylisted(ctx context.Context, tokenString string) (bool, error) {
	key := denylistPrefix + tokenString
	val, err := database.RedisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) { // key does not exist
			return false, nil
		}
		return false, err
	}
	return val != "", nil
}
