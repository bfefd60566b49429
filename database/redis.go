package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wavectf/config"
	"wavectf/metrics"

	"github.com/redis/go-redis/v9"
)

var REDIS *redis.Client

// ConnectRedis establishes the Redis connection used for read caches and
// submission cooldowns. The API degrades gracefully when Redis is absent, so
// callers may treat a connection failure as non-fatal.
func ConnectRedis() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	REDIS = client
	return client, nil
}

// GetFromCache looks up a cached JSON value and unmarshals it into dest,
// reporting whether the key was present.
func GetFromCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if REDIS == nil {
		return false, nil
	}

	val, err := REDIS.Get(ctx, key).Result()
	if err == redis.Nil {
		metrics.CacheMisses.Inc()
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}

	metrics.CacheHits.Inc()
	return true, nil
}

// SetToCache stores a JSON-encoded value with an expiration
func SetToCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if REDIS == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return REDIS.Set(ctx, key, data, ttl).Err()
}

// InvalidateCache deletes all keys matching the given pattern
func InvalidateCache(ctx context.Context, pattern string) {
	if REDIS == nil {
		return
	}

	keys, err := REDIS.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	REDIS.Del(ctx, keys...)
}
