// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fixify/config"

	"github.com/go-redis/redis/v8"
)

var (
	// LockClient is the Redis client backing short-lived operation locks
	// (settlement idempotency).
	LockClient *redis.Client
)

// InitLockClient initializes the Redis client used for operation locks.
func InitLockClient() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := LockClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Locks): %v", err)
	}
}

// GetLockClient returns the Redis client for operation locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockClient()
	}
	return LockClient
}
