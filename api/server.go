// ABOUTME: Router and Huma API construction for the site
// ABOUTME: Applies CORS, panic recovery, request logging and rate limiting

package api

import (
	"net/http"
	"time"

	"catcare-web/api/middleware"
	"catcare-web/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// APIVersion is reported in the OpenAPI document
const APIVersion = "1.0.0"

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
	TrustProxy bool          // key rate limits by forwarding headers
}

// NewRouter creates the chi router with middleware configured. The returned
// limiter is nil when rate limiting is disabled; callers stop it on shutdown.
func NewRouter(cfg RouterConfig) (chi.Router, *middleware.RateLimiter) {
	router := chi.NewRouter()

	// CORS should be first so preflight requests skip the rest
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	router.Use(chimiddleware.Recoverer)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, middleware.WithTrustedProxy(cfg.TrustProxy))
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return router, limiter
}

// NewAPI mounts a Huma API on the router.
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
func NewAPI(router chi.Router, siteName string) huma.API {
	config := huma.DefaultConfig(siteName+" API", APIVersion)
	config.Info.Description = "Read-only access to cat care articles, product recommendations and gallery images"

	return humachi.New(router, config)
}
