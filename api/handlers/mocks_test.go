package handlers

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"catcare-web/core/domain"
	"catcare-web/pkg/featureflags"
	"catcare-web/web/templates"
)

// mockContentService is a mock implementation of ContentService
type mockContentService struct {
	mu         sync.Mutex
	categories []domain.Category
	slugs      []string

	articles     []*domain.Article
	products     []*domain.ProductRecommendation
	gallery      []*domain.GalleryImage
	diagnoseFunc func(ctx context.Context) (*domain.Diagnostics, error)
}

func (m *mockContentService) ListArticles(ctx context.Context) []*domain.Article {
	return m.articles
}

func (m *mockContentService) ListArticlesByCategory(ctx context.Context, category domain.Category) []*domain.Article {
	m.mu.Lock()
	m.categories = append(m.categories, category)
	m.mu.Unlock()

	var out []*domain.Article
	for _, a := range m.articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

func (m *mockContentService) GetArticleBySlug(ctx context.Context, slug string) *domain.Article {
	m.mu.Lock()
	m.slugs = append(m.slugs, slug)
	m.mu.Unlock()

	for _, a := range m.articles {
		if a.Slug == slug {
			return a
		}
	}
	return nil
}

func (m *mockContentService) ListProducts(ctx context.Context) []*domain.ProductRecommendation {
	return m.products
}

func (m *mockContentService) ListGalleryImages(ctx context.Context) []*domain.GalleryImage {
	return m.gallery
}

func (m *mockContentService) Diagnose(ctx context.Context) (*domain.Diagnostics, error) {
	if m.diagnoseFunc != nil {
		return m.diagnoseFunc(ctx)
	}
	return &domain.Diagnostics{}, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func (m *mockLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.messages == nil {
		m.messages = make(map[string][]string)
	}
	m.messages[level] = append(m.messages[level], msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{}) { m.record("info", msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) { m.record("warn", msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg) }

func (m *mockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages[level])
}

// failingRenderer always fails to render
type failingRenderer struct{}

func (failingRenderer) Render(w io.Writer, name string, page templates.Page) error {
	return errors.New("template exploded")
}

func sampleArticles() []*domain.Article {
	return []*domain.Article{
		{
			ID:          "a2",
			Title:       "Why Cats Knead",
			Slug:        "why-cats-knead",
			Category:    domain.CategoryBehavior,
			Excerpt:     "Making biscuits",
			PublishDate: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "a1",
			Title:       "Trimming Claws",
			Slug:        "trimming-claws",
			Category:    domain.CategoryCareTasks,
			Excerpt:     "A calm routine",
			PublishDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			FeaturedImage: &domain.Asset{
				ID:    "img1",
				Title: "Clippers",
				File:  &domain.AssetFile{URL: "//images.ctfassets.net/claws.jpg"},
			},
			Content: &domain.RichTextNode{NodeType: domain.NodeDocument, Content: []*domain.RichTextNode{
				{NodeType: domain.NodeParagraph, Content: []*domain.RichTextNode{
					{NodeType: domain.NodeText, Value: "Start slowly."},
				}},
			}},
		},
	}
}

func enabledFlags() *featureflags.StaticManager {
	return featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.DiagnosticsPage: true,
		featureflags.JSONAPI:         true,
	})
}
