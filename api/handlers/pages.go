// ABOUTME: Server-rendered page handlers for the public site
// ABOUTME: Maps routes to content service reads and page templates

package handlers

import (
	"bytes"
	"io"
	"net/http"

	"catcare-web/core/domain"
	"catcare-web/core/interfaces"
	"catcare-web/pkg/featureflags"
	"catcare-web/web/templates"
	"catcare-web/web/view"

	"github.com/go-chi/chi/v5"
)

// PageRenderer renders a named page template
type PageRenderer interface {
	Render(w io.Writer, name string, page templates.Page) error
}

// PageHandler serves the HTML pages
type PageHandler struct {
	service  ContentService
	renderer PageRenderer
	logger   interfaces.Logger
	flags    featureflags.Manager
}

// NewPageHandler creates a new page handler
func NewPageHandler(service ContentService, renderer PageRenderer, logger interfaces.Logger, flags featureflags.Manager) *PageHandler {
	return &PageHandler{
		service:  service,
		renderer: renderer,
		logger:   logger,
		flags:    flags,
	}
}

// RegisterRoutes registers the page routes and the not-found handler
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/articles/{slug}", h.Article)
	r.Get("/care-tasks", h.Category(domain.CategoryCareTasks))
	r.Get("/behavior", h.Category(domain.CategoryBehavior))
	r.Get("/products", h.Products)
	r.Get("/test-contentful", h.Diagnostics)
	r.NotFound(h.NotFound)
}

// Home renders the latest articles
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	articles := h.service.ListArticles(r.Context())

	h.render(w, r, http.StatusOK, templates.PageHome, templates.Page{
		Active: "/",
		Data:   view.HomeData{Cards: view.NewArticleCards(articles)},
	})
}

// Article renders one article, or the not-found view when the slug is unknown
func (h *PageHandler) Article(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article := h.service.GetArticleBySlug(r.Context(), slug)
	if article == nil {
		h.render(w, r, http.StatusNotFound, templates.PageNotFound, templates.Page{
			Title: view.ArticleNotFound.Heading,
			Data:  view.ArticleNotFound,
		})
		return
	}

	h.render(w, r, http.StatusOK, templates.PageArticle, templates.Page{
		Title:  article.Title,
		Active: view.CategoryPath(article.Category),
		Data:   view.NewArticlePage(article),
	})
}

// Category returns a handler listing the articles of one category
func (h *PageHandler) Category(category domain.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles := h.service.ListArticlesByCategory(r.Context(), category)
		data := view.NewCategoryData(category, articles)

		h.render(w, r, http.StatusOK, templates.PageCategory, templates.Page{
			Title:  data.Heading,
			Active: view.CategoryPath(category),
			Data:   data,
		})
	}
}

// Products renders product recommendations and the gallery
func (h *PageHandler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.render(w, r, http.StatusOK, templates.PageProducts, templates.Page{
		Title:  "Products",
		Active: "/products",
		Data: view.ProductsData{
			Products: view.NewProductCards(h.service.ListProducts(ctx)),
			Gallery:  view.NewGalleryItems(h.service.ListGalleryImages(ctx)),
		},
	})
}

// Diagnostics renders the content store check page
func (h *PageHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	if !h.flags.IsEnabled(featureflags.DiagnosticsPage) {
		h.NotFound(w, r)
		return
	}

	ctx := r.Context()
	data := view.DiagnosticsData{
		Articles: view.NewDiagnosticEntries(h.service.ListArticles(ctx)),
	}

	diagnostics, err := h.service.Diagnose(ctx)
	if err != nil {
		h.logger.Warn("Content store diagnostics failed", map[string]interface{}{
			"error": err.Error(),
		})
		data.Error = err.Error()
	}
	data.Diagnostics = diagnostics

	h.render(w, r, http.StatusOK, templates.PageDiagnostics, templates.Page{
		Title: "Contentful Integration Test",
		Data:  data,
	})
}

// NotFound renders the generic not-found page
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, templates.PageNotFound, templates.Page{
		Title: view.PageNotFound.Heading,
		Data:  view.PageNotFound,
	})
}

// render writes a page with the given status, or a plain 500 when the
// template fails
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, page templates.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, page); err != nil {
		h.logger.Error("Failed to render page", map[string]interface{}{
			"page":  name,
			"path":  r.URL.Path,
			"error": err.Error(),
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("Failed to write page", map[string]interface{}{
			"page":  name,
			"error": err.Error(),
		})
	}
}
