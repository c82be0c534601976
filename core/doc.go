// Package core contains the business logic for the Cat Care & Education Hub.
// It is framework-agnostic and knows nothing about HTTP routing or templates.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Article, Asset, ProductRecommendation, rich text)
// - content: Content service that queries the store, decodes entries and orders listings
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (content source, cache, HTTP, logger)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Reads never fail loudly: store errors are logged and surface as empty results
//
// # Usage Example
//
//	import (
//	    "catcare-web/core/content"
//	    "catcare-web/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:   myCache,   // implements interfaces.Cache
//	    Logger:  myLogger,  // implements interfaces.Logger
//	    Content: myContent, // implements interfaces.ContentSource
//	}
//
//	service := content.NewService(deps, time.Minute)
//	articles := service.ListArticles(ctx)
//	article := service.GetArticleBySlug(ctx, "trimming-claws")
package core
