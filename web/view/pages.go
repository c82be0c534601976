// ABOUTME: Page-level view models, one per rendered page
// ABOUTME: Handlers fill these and pass them to the template renderer

package view

import "catcare-web/core/domain"

// HomeData is the home page model
type HomeData struct {
	Cards []ArticleCard
}

// CategoryData is a category listing page model
type CategoryData struct {
	Heading     string
	Description string
	Cards       []ArticleCard
}

// NotFoundData is the not-found page model
type NotFoundData struct {
	Heading string
	Message string
}

// ProductsData is the products page model
type ProductsData struct {
	Products []ProductCard
	Gallery  []GalleryItem
}

// DiagnosticsData is the diagnostics page model. Error is set when the
// store could not be inspected; Articles is still rendered.
type DiagnosticsData struct {
	Articles    []DiagnosticEntry
	Diagnostics *domain.Diagnostics
	Error       string
}

// ArticleNotFound is shown when no article matches a slug
var ArticleNotFound = NotFoundData{
	Heading: "Article Not Found",
	Message: "Sorry, we could not find the article you are looking for.",
}

// PageNotFound is shown for unknown routes
var PageNotFound = NotFoundData{
	Heading: "Page Not Found",
	Message: "Sorry, we could not find the page you are looking for.",
}

// Category listing headings and descriptions
var categoryPages = map[domain.Category]CategoryData{
	domain.CategoryCareTasks: {
		Heading:     "Care Tasks",
		Description: "Practical guides for grooming, feeding and keeping your cat healthy.",
	},
	domain.CategoryBehavior: {
		Heading:     "Behavior",
		Description: "Understand why cats do what they do.",
	},
}

// NewCategoryData builds a category listing model
func NewCategoryData(category domain.Category, articles []*domain.Article) CategoryData {
	data, ok := categoryPages[category]
	if !ok {
		data = CategoryData{Heading: CategoryLabel(category)}
	}
	data.Cards = NewArticleCards(articles)
	return data
}
