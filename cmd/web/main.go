// ABOUTME: Main entry point for the Cat Care & Education Hub web server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"catcare-web/api"
	"catcare-web/api/handlers"
	"catcare-web/api/middleware"
	"catcare-web/core/content"
	"catcare-web/core/interfaces"
	"catcare-web/infrastructure/cache/memory"
	"catcare-web/infrastructure/cache/redis"
	"catcare-web/infrastructure/cache/sqlite"
	"catcare-web/infrastructure/contentful"
	stdhttp "catcare-web/infrastructure/http/standard"
	"catcare-web/infrastructure/logger/structured"
	"catcare-web/pkg/config"
	"catcare-web/pkg/featureflags"
	"catcare-web/web/templates"
)

func main() {
	// A missing .env file is fine; the process environment is used as is
	if err := config.LoadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("Starting Cat Care & Education Hub", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"environment": cfg.Contentful.Environment,
	})

	cache, closeCache := newCache(cfg.Cache, logger)
	defer closeCache()

	httpClient := contentful.NewHTTPClient(cfg.Contentful,
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{Logger: logger}))

	contentClient, err := contentful.NewClient(cfg.Contentful, httpClient)
	if err != nil {
		log.Fatalf("Failed to create content client: %v", err)
	}

	deps := interfaces.Dependencies{
		Cache:   cache,
		Logger:  logger,
		Content: contentClient,
	}
	contentService := content.NewService(deps, cfg.Cache.TTL)

	renderer, err := templates.New(cfg.Server.SiteName)
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	flags := featureflags.NewEnvManager("FEATURE_")

	router, limiter := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
		TrustProxy: cfg.Server.TrustProxy,
	})
	if limiter != nil {
		defer limiter.Stop()
	}

	if flags.IsEnabled(featureflags.JSONAPI) {
		humaAPI := api.NewAPI(router, cfg.Server.SiteName)
		handlers.NewContentHandler(contentService, flags).RegisterRoutes(humaAPI)
	}

	staticFiles := http.FileServer(http.Dir(cfg.Server.StaticDir))
	router.Handle("/static/*", http.StripPrefix("/static/", staticFiles))
	router.Get("/placeholder-cat.jpg", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.Server.StaticDir, "placeholder-cat.jpg"))
	})

	handlers.NewPageHandler(contentService, renderer, logger, flags).RegisterRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
			"flags":   flags.GetAllFlags(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory when
// a remote backend cannot be reached. The returned func releases it.
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}

	switch cfg.Type {
	case config.CacheNone:
		logger.Info("Content caching disabled", nil)
		return nil, noop

	case config.CacheRedis:
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, func() { closeWithLog(logger, "redis", redisCache.Close) }

	case config.CacheSQLite:
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.SQLite)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return sqliteCache, func() { closeWithLog(logger, "sqlite", sqliteCache.Close) }
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.Memory), noop
}

func closeWithLog(logger interfaces.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Warn("Failed to close cache", map[string]interface{}{
			"cache": name,
			"error": err.Error(),
		})
	}
}
