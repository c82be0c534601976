package templates

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
	"time"

	"catcare-web/core/domain"
	"catcare-web/web/view"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("Cat Care & Education Hub")
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func render(t *testing.T, r *Renderer, name string, page Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func sampleCard() view.ArticleCard {
	return view.ArticleCard{
		Title:         "Brushing <Basics>",
		Href:          "/articles/brushing-basics",
		Excerpt:       "Keep the coat shiny",
		CategoryLabel: "CARE TASKS",
		CategoryStyle: "bg-blue-100 text-blue-800",
		Date:          "Mar 5, 2024",
		ImageURL:      view.PlaceholderImage,
		ImageAlt:      "Brushing",
	}
}

func TestNew_ParsesAllPages(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range pageNames {
		assert.Contains(t, r.pages, name)
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r := newTestRenderer(t)

	err := r.Render(&bytes.Buffer{}, "missing", Page{})
	assert.Error(t, err)
}

func TestRender_LayoutAndTitle(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageHome, Page{Active: "/", Data: view.HomeData{}})

	assert.Equal(t, "Cat Care & Education Hub", doc.Find("title").Text())
	assert.Equal(t, 4, doc.Find("header .nav-links a").Length())
	assert.Equal(t, "Home", doc.Find(`a[aria-current="page"]`).Text())
	assert.Contains(t, doc.Find("footer").Text(), "2025 Cat Care & Education Hub")

	titled := render(t, r, PageArticle, Page{Title: "Trimming Claws", Data: view.ArticlePage{Title: "Trimming Claws"}})
	assert.Equal(t, "Trimming Claws | Cat Care & Education Hub", titled.Find("title").Text())
}

func TestRender_HomeEmptyState(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageHome, Page{Data: view.HomeData{}})

	assert.Equal(t, "No articles yet", strings.TrimSpace(doc.Find(".empty-state h3").Text()))
	assert.Equal(t, 0, doc.Find(".article-card").Length())
}

func TestRender_HomeCards(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageHome, Page{Data: view.HomeData{Cards: []view.ArticleCard{sampleCard(), sampleCard()}}})

	cards := doc.Find(".article-card")
	assert.Equal(t, 2, cards.Length())
	first := cards.First()
	assert.Equal(t, "Brushing <Basics>", first.Find("h3").Text())
	assert.Equal(t, "CARE TASKS", first.Find(".badge").Text())
	assert.True(t, first.Find(".badge").HasClass("text-blue-800"))
	href, _ := first.Find("a.read-more").Attr("href")
	assert.Equal(t, "/articles/brushing-basics", href)
	src, _ := first.Find("img").Attr("src")
	assert.Equal(t, "/placeholder-cat.jpg", src)
	assert.Equal(t, 0, doc.Find(".empty-state").Length())
}

func TestRender_Article(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageArticle, Page{Title: "Trimming Claws", Data: view.ArticlePage{
		Title:         "Trimming Claws",
		Excerpt:       "A calm approach",
		CategoryLabel: "CARE TASKS",
		CategoryStyle: "bg-blue-100 text-blue-800",
		CategoryHref:  "/care-tasks",
		Date:          "February 9, 2024",
		ISODate:       "2024-02-09",
		ImageURL:      "https://img/clip.jpg",
		Body:          template.HTML("<p>Go <strong>slowly</strong>.</p>"),
	}})

	assert.Equal(t, "Trimming Claws", doc.Find("article h1").Text())
	assert.Equal(t, "February 9, 2024", doc.Find("time").Text())
	datetime, _ := doc.Find("time").Attr("datetime")
	assert.Equal(t, "2024-02-09", datetime)
	assert.Equal(t, "slowly", doc.Find(".prose strong").Text())
	badgeHref, _ := doc.Find("a.badge").Attr("href")
	assert.Equal(t, "/care-tasks", badgeHref)
}

func TestRender_NotFound(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageNotFound, Page{Title: "Article Not Found", Data: view.ArticleNotFound})

	assert.Equal(t, "Article Not Found", doc.Find(".not-found h1").Text())
	href, _ := doc.Find(".not-found a").Attr("href")
	assert.Equal(t, "/", href)
}

func TestRender_Category(t *testing.T) {
	r := newTestRenderer(t)

	data := view.NewCategoryData(domain.CategoryBehavior, nil)
	doc := render(t, r, PageCategory, Page{Title: data.Heading, Active: "/behavior", Data: data})

	assert.Equal(t, "Behavior", doc.Find(".articles h1").Text())
	assert.Equal(t, 1, doc.Find(".empty-state").Length())
	assert.Equal(t, "Behavior", doc.Find(`a[aria-current="page"]`).Text())
}

func TestRender_Products(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageProducts, Page{Data: view.ProductsData{
		Products: []view.ProductCard{{Name: "Fountain", AffiliateLink: "https://shop.example.com/f", ImageURL: view.PlaceholderImage}},
		Gallery:  []view.GalleryItem{{Title: "Nap", Caption: "Sunbeam", ImageURL: "https://img/nap.jpg"}},
	}})

	assert.Equal(t, "Fountain", doc.Find(".product-card h3").Text())
	rel, _ := doc.Find(".product-card a").Attr("rel")
	assert.Contains(t, rel, "noopener")
	assert.Equal(t, "Sunbeam", doc.Find(".gallery figcaption").Text())
}

func TestRender_ProductsEmpty(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageProducts, Page{Data: view.ProductsData{}})

	assert.Equal(t, "No products yet", doc.Find(".empty-state h3").Text())
	assert.Equal(t, 0, doc.Find(".gallery").Length())
}

func TestRender_Diagnostics(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageDiagnostics, Page{Data: view.DiagnosticsData{
		Articles: []view.DiagnosticEntry{{Title: "One", Slug: "one", Category: "general", HasImage: true}},
		Diagnostics: &domain.Diagnostics{
			ContentTypes:     []domain.ContentType{{ID: "catCareHub", Name: "Cat Care Hub"}},
			TotalEntries:     3,
			FirstContentType: "catCareHub",
		},
	}})

	assert.Equal(t, "1", doc.Find(".count strong").Text())
	assert.Equal(t, "one", doc.Find(".diagnostic-entry code").Text())
	assert.Contains(t, doc.Find(".diagnostic-entry").Text(), "Image attached")
	assert.Equal(t, "3", doc.Find(".content-types strong").Text())
}

func TestRender_DiagnosticsError(t *testing.T) {
	r := newTestRenderer(t)

	doc := render(t, r, PageDiagnostics, Page{Data: view.DiagnosticsData{Error: "401 AccessTokenInvalid"}})

	assert.Contains(t, doc.Find(".error").First().Text(), "AccessTokenInvalid")
	assert.Contains(t, doc.Text(), "No articles found")
	assert.Equal(t, "0", doc.Find(".count strong").Text())
}
