// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Lets several site instances share fetched content with TTL support

package redis

import (
	"context"
	"time"

	"catcare-web/core/errors"
	"catcare-web/pkg/config"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces cache keys so the site can share a Redis database
const keyPrefix = "catcare:"

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache instance and verifies the connection
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, &errors.ConfigError{Key: "REDIS_ADDRESS", Message: "cannot be empty"}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapError(err, "redis ping failed")
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.ErrCacheMiss
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Redis SET with 0 TTL means no expiration
	return c.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// Delete removes a key from Redis. Deleting a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, keyPrefix+key).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
