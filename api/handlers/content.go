// ABOUTME: JSON API handlers for articles, products, gallery images and diagnostics
// ABOUTME: Read-only endpoints registered on the Huma API

package handlers

import (
	"context"
	"net/http"
	"time"

	"catcare-web/api/dto/mappers"
	"catcare-web/api/dto/responses"
	"catcare-web/core/content"
	"catcare-web/core/domain"
	"catcare-web/core/errors"
	"catcare-web/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// ContentService is the content read surface the handlers depend on
type ContentService interface {
	ListArticles(ctx context.Context) []*domain.Article
	ListArticlesByCategory(ctx context.Context, category domain.Category) []*domain.Article
	GetArticleBySlug(ctx context.Context, slug string) *domain.Article
	ListProducts(ctx context.Context) []*domain.ProductRecommendation
	ListGalleryImages(ctx context.Context) []*domain.GalleryImage
	Diagnose(ctx context.Context) (*domain.Diagnostics, error)
}

// ContentHandler handles the JSON content endpoints
type ContentHandler struct {
	service ContentService
	flags   featureflags.Manager
}

// NewContentHandler creates a new content handler
func NewContentHandler(service ContentService, flags featureflags.Manager) *ContentHandler {
	return &ContentHandler{
		service: service,
		flags:   flags,
	}
}

// ListArticlesInput represents the input for listing articles
type ListArticlesInput struct {
	Category string `query:"category" doc:"Only return articles in this category (care-tasks, behavior, general)"`
	Page     int    `query:"page" default:"1" minimum:"1" doc:"Page number"`
	PerPage  int    `query:"per_page" default:"20" minimum:"1" maximum:"100" doc:"Articles per page"`
}

// ListArticlesOutput represents the output for listing articles
type ListArticlesOutput struct {
	Body responses.ArticleListResponse
}

// GetArticleInput represents the input for fetching one article
type GetArticleInput struct {
	Slug string `path:"slug" minLength:"1" doc:"Article slug"`
}

// GetArticleOutput represents the output for fetching one article
type GetArticleOutput struct {
	Body responses.ArticleResponse
}

// ListProductsOutput represents the output for listing products
type ListProductsOutput struct {
	Body responses.ProductListResponse
}

// ListGalleryOutput represents the output for listing gallery images
type ListGalleryOutput struct {
	Body responses.GalleryListResponse
}

// DiagnosticsOutput represents the output for the diagnostics endpoint
type DiagnosticsOutput struct {
	Body responses.DiagnosticsResponse
}

// HealthOutput represents the output for the health endpoint
type HealthOutput struct {
	Body responses.HealthResponse
}

// RegisterRoutes registers all content routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-articles",
		Method:      http.MethodGet,
		Path:        "/api/articles",
		Summary:     "List articles",
		Description: "Returns published articles, newest first, optionally filtered by category",
		Tags:        []string{"Articles"},
	}, h.ListArticles)

	huma.Register(api, huma.Operation{
		OperationID: "get-article",
		Method:      http.MethodGet,
		Path:        "/api/articles/{slug}",
		Summary:     "Get article",
		Description: "Returns a single article with its rendered body",
		Tags:        []string{"Articles"},
	}, h.GetArticle)

	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/products",
		Summary:     "List product recommendations",
		Tags:        []string{"Products"},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "list-gallery",
		Method:      http.MethodGet,
		Path:        "/api/gallery",
		Summary:     "List gallery images",
		Tags:        []string{"Gallery"},
	}, h.ListGallery)

	huma.Register(api, huma.Operation{
		OperationID: "diagnostics",
		Method:      http.MethodGet,
		Path:        "/api/diagnostics",
		Summary:     "Inspect the content store",
		Description: "Lists content types and counts entries in the configured space",
		Tags:        []string{"Diagnostics"},
	}, h.Diagnostics)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// ListArticles handles GET /api/articles
func (h *ContentHandler) ListArticles(ctx context.Context, input *ListArticlesInput) (*ListArticlesOutput, error) {
	var articles []*domain.Article
	if input.Category == "" {
		articles = h.service.ListArticles(ctx)
	} else {
		category := domain.Category(input.Category)
		if !category.IsKnown() {
			return nil, toHumaError(&errors.ValidationError{Field: "category", Message: "must be one of care-tasks, behavior, general"})
		}
		articles = h.service.ListArticlesByCategory(ctx, category)
	}

	body := mappers.ToArticleListResponse(content.Paginate(articles, input.Page, input.PerPage))
	body.Total = len(articles)
	body.Page = input.Page
	body.PerPage = input.PerPage

	return &ListArticlesOutput{Body: body}, nil
}

// GetArticle handles GET /api/articles/{slug}
func (h *ContentHandler) GetArticle(ctx context.Context, input *GetArticleInput) (*GetArticleOutput, error) {
	article := h.service.GetArticleBySlug(ctx, input.Slug)
	if article == nil {
		return nil, toHumaError(&errors.NotFoundError{Resource: "article", ID: input.Slug})
	}

	return &GetArticleOutput{Body: *mappers.ToArticleResponse(article)}, nil
}

// ListProducts handles GET /api/products
func (h *ContentHandler) ListProducts(ctx context.Context, _ *struct{}) (*ListProductsOutput, error) {
	return &ListProductsOutput{Body: mappers.ToProductListResponse(h.service.ListProducts(ctx))}, nil
}

// ListGallery handles GET /api/gallery
func (h *ContentHandler) ListGallery(ctx context.Context, _ *struct{}) (*ListGalleryOutput, error) {
	return &ListGalleryOutput{Body: mappers.ToGalleryListResponse(h.service.ListGalleryImages(ctx))}, nil
}

// Diagnostics handles GET /api/diagnostics
func (h *ContentHandler) Diagnostics(ctx context.Context, _ *struct{}) (*DiagnosticsOutput, error) {
	if !h.flags.IsEnabled(featureflags.DiagnosticsPage) {
		return nil, huma.Error404NotFound("diagnostics are disabled")
	}

	diagnostics, err := h.service.Diagnose(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DiagnosticsOutput{Body: *mappers.ToDiagnosticsResponse(diagnostics)}, nil
}

// Health handles GET /api/health
func (h *ContentHandler) Health(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	}}, nil
}
