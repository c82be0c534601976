// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - contentful: Contentful Content Delivery API client (interfaces.ContentSource)
// - cache/memory: In-memory cache built on go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed persistent cache
// - http/standard: Standard library HTTP client with retry logic
// - logger/structured: logrus logger with optional rotated file output
//
// # Cache Implementations
//
// All caches return errors.ErrCacheMiss for absent or expired keys.
//
//	cache := memory.NewMemoryCache(config.MemoryConfig{DefaultExpiration: 3600, CleanupInterval: 600})
//	err := cache.Set(ctx, "key", []byte("value"), time.Minute)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # Content Client
//
//	httpClient := standard.NewStandardHTTPClient(10 * time.Second)
//	client, err := contentful.NewClient(cfg.Contentful, httpClient)
//	entries, err := client.GetEntries(ctx, domain.EntryQuery{ContentType: domain.ArticleContentType})
//
// # Logger
//
//	logger, err := structured.New(config.LogConfig{Level: "info", Format: "json"})
//	logger.Info("Fetched articles", map[string]interface{}{
//	    "count": 12,
//	})
package infrastructure
