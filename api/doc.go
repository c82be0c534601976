// Package api provides the HTTP layer for the Cat Care & Education Hub.
// Pages are served as HTML through chi; the read-only JSON API uses the
// Huma framework for OpenAPI documentation and request validation.
//
// # Architecture
//
// - server.go: Router and Huma API construction
// - handlers/: Page handlers and JSON API handlers
// - dto/: Response DTOs and mappers from domain models
// - middleware/: Request logging, request ids and rate limiting
//
// # Endpoints
//
// HTML pages:
//
//	GET /                     latest articles
//	GET /articles/{slug}      article detail, or the not-found view
//	GET /care-tasks           care task articles
//	GET /behavior             behavior articles
//	GET /products             product recommendations and gallery
//	GET /test-contentful      content store diagnostics
//
// JSON API (OpenAPI at /openapi.json, docs UI at /docs):
//
//	GET /api/articles?category=&page=&per_page=
//	GET /api/articles/{slug}
//	GET /api/products
//	GET /api/gallery
//	GET /api/diagnostics
//	GET /api/health
//
// # Usage Example
//
//	router, limiter := api.NewRouter(api.RouterConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	defer limiter.Stop()
//
//	humaAPI := api.NewAPI(router, "Cat Care & Education Hub")
//	handlers.NewContentHandler(service, flags).RegisterRoutes(humaAPI)
//	handlers.NewPageHandler(service, renderer, logger, flags).RegisterRoutes(router)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// JSON errors use the RFC 7807 format produced by Huma. Domain errors are
// mapped to status codes: NotFoundError to 404, ValidationError to 400,
// ConfigError to 503 and upstream store failures to 502 or 503.
package api
