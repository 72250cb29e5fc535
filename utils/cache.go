// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"caresync/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for auth session caching.
	AuthCacheClient *redis.Client
	// AIContextCacheClient holds rolling AI conversation context.
	AIContextCacheClient *redis.Client
)

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitAuthCache()
	InitAIContextCache()
}

// InitAuthCache initializes the Redis client for auth session caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for auth session caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitAIContextCache initializes the Redis client for AI conversation context.
func InitAIContextCache() {
	AIContextCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAIContextDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AIContextCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (AI Context Cache): %v", err)
	}
}

// GetAIContextCacheClient returns the Redis client for AI conversation context.
func GetAIContextCacheClient() *redis.Client {
	if AIContextCacheClient == nil {
		InitAIContextCache()
	}
	return AIContextCacheClient
}
