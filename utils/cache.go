package utils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"servicehub/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient backs the Redis GEO city index.
	CacheClient *redis.Client
	cacheMu     sync.Mutex
)

// InitCache connects the cache client using REDIS_CACHE_DB.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (cache): %w", err)
	}
	CacheClient = client
	RegisterHealthCheck("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	return nil
}

// GetCacheClient returns the cache client, connecting on first use.
func GetCacheClient() (*redis.Client, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if CacheClient == nil {
		if err := InitCache(); err != nil {
			return nil, err
		}
	}
	return CacheClient, nil
}
