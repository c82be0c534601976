// ABOUTME: Content service is the fail-soft data access layer for the site
// ABOUTME: Fetches entries through the content source, caches them and decodes domain types

package content

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"catcare-web/core/domain"
	"catcare-web/core/errors"
	"catcare-web/core/interfaces"
)

const (
	// orderByPublishDate sorts articles newest first
	orderByPublishDate = "-fields.publishDate"

	// linkDepth resolves one level of linked assets
	linkDepth = 1
)

// Service reads site content. Read operations never return errors: failures
// are logged and surface as empty results so pages can still render.
type Service struct {
	deps     interfaces.Dependencies
	cacheTTL time.Duration
}

// NewService creates a content service. A zero cacheTTL disables caching
// even when deps.Cache is set.
func NewService(deps interfaces.Dependencies, cacheTTL time.Duration) *Service {
	return &Service{
		deps:     deps,
		cacheTTL: cacheTTL,
	}
}

// ListArticles returns every article, newest first
func (s *Service) ListArticles(ctx context.Context) []*domain.Article {
	return s.listArticles(ctx, domain.EntryQuery{
		ContentType: domain.ArticleContentType,
		Order:       []string{orderByPublishDate},
		Include:     linkDepth,
	})
}

// ListArticlesByCategory returns the articles in one category, newest first
func (s *Service) ListArticlesByCategory(ctx context.Context, category domain.Category) []*domain.Article {
	if category == "" {
		return []*domain.Article{}
	}

	return s.listArticles(ctx, domain.EntryQuery{
		ContentType: domain.ArticleContentType,
		Order:       []string{orderByPublishDate},
		FieldEquals: map[string]string{"category": string(category)},
		Include:     linkDepth,
	})
}

// GetArticleBySlug returns the article whose slug equals slug exactly, or nil
func (s *Service) GetArticleBySlug(ctx context.Context, slug string) *domain.Article {
	if slug == "" {
		return nil
	}

	collection, err := s.fetch(ctx, domain.EntryQuery{
		ContentType: domain.ArticleContentType,
		FieldEquals: map[string]string{"slug": slug},
		Limit:       1,
		Include:     linkDepth,
	})
	if err != nil {
		s.logError("Error fetching article", err, map[string]interface{}{"slug": slug})
		return nil
	}

	for _, entry := range collection.Items {
		article, err := decodeArticle(entry, collection.Assets)
		if err != nil {
			s.logSkipped(entry, err)
			continue
		}
		if article.Slug == slug {
			return article
		}
	}

	return nil
}

// ListProducts returns all product recommendations in store order
func (s *Service) ListProducts(ctx context.Context) []*domain.ProductRecommendation {
	products := []*domain.ProductRecommendation{}

	collection, err := s.fetch(ctx, domain.EntryQuery{ContentType: domain.ProductContentType})
	if err != nil {
		s.logError("Error fetching products", err, nil)
		return products
	}

	for _, entry := range collection.Items {
		products = append(products, decodeProduct(entry))
	}
	return products
}

// ListGalleryImages returns all gallery images in store order
func (s *Service) ListGalleryImages(ctx context.Context) []*domain.GalleryImage {
	images := []*domain.GalleryImage{}

	collection, err := s.fetch(ctx, domain.EntryQuery{
		ContentType: domain.GalleryImageContentType,
		Include:     linkDepth,
	})
	if err != nil {
		s.logError("Error fetching gallery images", err, nil)
		return images
	}

	for _, entry := range collection.Items {
		images = append(images, decodeGalleryImage(entry, collection.Assets))
	}
	return images
}

// Diagnose reports what the content store holds. Unlike the read operations
// it returns errors, since its callers are operators troubleshooting setup.
func (s *Service) Diagnose(ctx context.Context) (*domain.Diagnostics, error) {
	if s.deps.Content == nil {
		return nil, &errors.ConfigError{Key: "content source", Message: "not configured"}
	}

	contentTypes, err := s.deps.Content.GetContentTypes(ctx)
	if err != nil {
		return nil, errors.WrapError(err, "failed to list content types")
	}

	entries, err := s.deps.Content.GetEntries(ctx, domain.EntryQuery{})
	if err != nil {
		return nil, errors.WrapError(err, "failed to list entries")
	}

	diagnostics := &domain.Diagnostics{
		ContentTypes: contentTypes,
		TotalEntries: entries.Total,
	}
	if len(entries.Items) > 0 {
		diagnostics.FirstContentType = entries.Items[0].ContentType
	}

	return diagnostics, nil
}

// listArticles fetches, decodes and orders articles for a listing query
func (s *Service) listArticles(ctx context.Context, query domain.EntryQuery) []*domain.Article {
	articles := []*domain.Article{}

	collection, err := s.fetch(ctx, query)
	if err != nil {
		s.logError("Error fetching articles", err, map[string]interface{}{
			"query": query.Key(),
		})
		return articles
	}

	for _, entry := range collection.Items {
		article, err := decodeArticle(entry, collection.Assets)
		if err != nil {
			s.logSkipped(entry, err)
			continue
		}
		articles = append(articles, article)
	}

	// The store orders by publish date already; sort again so the
	// newest-first ordering holds for every source.
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishDate.After(articles[j].PublishDate)
	})

	return articles
}

// fetch runs a query through the cache when one is configured
func (s *Service) fetch(ctx context.Context, query domain.EntryQuery) (*domain.EntryCollection, error) {
	if s.deps.Content == nil {
		return nil, &errors.ConfigError{Key: "content source", Message: "not configured"}
	}

	key := query.Key()
	if cached := s.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	collection, err := s.deps.Content.GetEntries(ctx, query)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, key, collection)
	return collection, nil
}

// getCached returns a cached collection or nil on miss or any cache failure
func (s *Service) getCached(ctx context.Context, key string) *domain.EntryCollection {
	if s.deps.Cache == nil || s.cacheTTL <= 0 {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var collection domain.EntryCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		s.logWarn("Discarding unreadable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}

	return &collection
}

// setCached stores a collection; failures only cost a future cache miss
func (s *Service) setCached(ctx context.Context, key string, collection *domain.EntryCollection) {
	if s.deps.Cache == nil || s.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(collection)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logWarn("Failed to cache entries", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *Service) logSkipped(entry domain.Entry, err error) {
	s.logWarn("Skipping malformed entry", map[string]interface{}{
		"entry_id": entry.ID,
		"error":    err.Error(),
	})
}

func (s *Service) logError(msg string, err error, fields map[string]interface{}) {
	if s.deps.Logger == nil {
		return
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["error"] = err.Error()
	s.deps.Logger.Error(msg, fields)
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
