// ABOUTME: View models passed to page templates
// ABOUTME: Flattens domain types into display-ready strings

package view

import (
	"html/template"
	"net/url"

	"catcare-web/core/domain"
)

// ArticleCard is the listing summary of an article
type ArticleCard struct {
	Title         string
	Slug          string
	Href          string
	Excerpt       string
	CategoryLabel string
	CategoryStyle string
	Date          string
	ImageURL      string
	ImageAlt      string
}

// ArticlePage is the full article view
type ArticlePage struct {
	Title         string
	Excerpt       string
	CategoryLabel string
	CategoryStyle string
	CategoryHref  string
	Date          string
	ISODate       string
	ImageURL      string
	ImageAlt      string
	Body          template.HTML
}

// ProductCard is the display form of a product recommendation
type ProductCard struct {
	Name          string
	Description   string
	Category      string
	ImageURL      string
	AffiliateLink string
	Rationale     string
}

// GalleryItem is the display form of a gallery image
type GalleryItem struct {
	Title    string
	Caption  string
	Category string
	ImageURL string
}

// NewArticleCard builds the listing card for an article
func NewArticleCard(article *domain.Article) ArticleCard {
	return ArticleCard{
		Title:         article.Title,
		Slug:          article.Slug,
		Href:          ArticlePath(article.Slug),
		Excerpt:       article.Excerpt,
		CategoryLabel: CategoryLabel(article.Category),
		CategoryStyle: CategoryStyle(article.Category),
		Date:          FormatShortDate(article.PublishDate),
		ImageURL:      ImageURL(article.FeaturedImage),
		ImageAlt:      ImageAlt(article.FeaturedImage, article.Title),
	}
}

// NewArticleCards builds cards for a listing, preserving order
func NewArticleCards(articles []*domain.Article) []ArticleCard {
	cards := make([]ArticleCard, 0, len(articles))
	for _, article := range articles {
		cards = append(cards, NewArticleCard(article))
	}
	return cards
}

// NewArticlePage builds the detail view for an article
func NewArticlePage(article *domain.Article) ArticlePage {
	page := ArticlePage{
		Title:         article.Title,
		Excerpt:       article.Excerpt,
		CategoryLabel: CategoryLabel(article.Category),
		CategoryStyle: CategoryStyle(article.Category),
		CategoryHref:  CategoryPath(article.Category),
		Date:          FormatLongDate(article.PublishDate),
		ImageURL:      ImageURL(article.FeaturedImage),
		ImageAlt:      ImageAlt(article.FeaturedImage, article.Title),
		Body:          RenderRichText(article.Content),
	}
	if !article.PublishDate.IsZero() {
		page.ISODate = article.PublishDate.Format("2006-01-02")
	}
	return page
}

// NewProductCards builds display cards for product recommendations
func NewProductCards(products []*domain.ProductRecommendation) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		image := p.ImageURL
		if image == "" {
			image = PlaceholderImage
		}
		cards = append(cards, ProductCard{
			Name:          p.Name,
			Description:   p.Description,
			Category:      p.Category,
			ImageURL:      image,
			AffiliateLink: p.AffiliateLink,
			Rationale:     p.Rationale,
		})
	}
	return cards
}

// NewGalleryItems builds display items for gallery images
func NewGalleryItems(images []*domain.GalleryImage) []GalleryItem {
	items := make([]GalleryItem, 0, len(images))
	for _, img := range images {
		items = append(items, GalleryItem{
			Title:    img.Title,
			Caption:  img.Caption,
			Category: img.Category,
			ImageURL: ImageURL(img.Image),
		})
	}
	return items
}

// ArticlePath returns the route of an article page
func ArticlePath(slug string) string {
	return "/articles/" + url.PathEscape(slug)
}

// DiagnosticEntry is one article row on the diagnostics page, showing raw values
type DiagnosticEntry struct {
	Title     string
	Excerpt   string
	Category  string
	Slug      string
	Published string
	HasImage  bool
}

// NewDiagnosticEntries builds diagnostics rows for articles
func NewDiagnosticEntries(articles []*domain.Article) []DiagnosticEntry {
	entries := make([]DiagnosticEntry, 0, len(articles))
	for _, a := range articles {
		entries = append(entries, DiagnosticEntry{
			Title:     a.Title,
			Excerpt:   a.Excerpt,
			Category:  string(a.Category),
			Slug:      a.Slug,
			Published: FormatShortDate(a.PublishDate),
			HasImage:  a.FeaturedImage != nil,
		})
	}
	return entries
}
