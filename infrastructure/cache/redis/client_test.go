package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"catcare-web/core/errors"
	"catcare-web/pkg/config"
)

// These are integration tests against a live Redis instance.
// Set REDIS_TEST_ADDRESS (for example localhost:6379) to run them.

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST_ADDRESS to run")
	}

	cache, err := NewRedisCache(config.RedisConfig{Address: addr})
	if err != nil {
		t.Fatalf("NewRedisCache returned error: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: ""})

	if !errors.IsConfig(err) {
		t.Errorf("NewRedisCache error = %v, want ConfigError", err)
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: "127.0.0.1:1"})

	if err == nil {
		t.Error("NewRedisCache should fail when the server is unreachable")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache when ping fails")
	}
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "test:entries:catCareHub"

	if err := cache.Set(ctx, key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("Get returned %s, want payload", got)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); err != errors.ErrCacheMiss {
		t.Errorf("Get after Delete error = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_Expiry(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "test:short", []byte("v"), 50*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	if _, err := cache.Get(ctx, "test:short"); err != errors.ErrCacheMiss {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}
