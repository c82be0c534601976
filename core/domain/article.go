// ABOUTME: Article domain model represents a cat care article authored in the CMS
// ABOUTME: Articles are read-only here; they are created and edited upstream

package domain

import (
	"errors"
	"time"
)

// ArticleContentType is the CMS content type identifier for articles
const ArticleContentType = "catCareHub"

// Category groups articles by topic. Values outside the known set are kept as-is.
type Category string

// Known article categories
const (
	CategoryCareTasks Category = "care-tasks"
	CategoryBehavior  Category = "behavior"
	CategoryGeneral   Category = "general"
)

// KnownCategories lists the categories the site renders navigation for
var KnownCategories = []Category{CategoryCareTasks, CategoryBehavior, CategoryGeneral}

// IsKnown reports whether the category is one of the known values
func (c Category) IsKnown() bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Article represents a single informational article
type Article struct {
	// ID is the CMS entry identifier
	ID string

	// Title is the article headline
	Title string

	// Slug is the URL-safe key; uniqueness is guaranteed upstream, not here
	Slug string

	// Category is the raw category value from the CMS
	Category Category

	// Excerpt is the short teaser text shown on cards
	Excerpt string

	// Content is the structured rich text body (nil when the entry has none)
	Content *RichTextNode

	// FeaturedImage is the optional linked image asset
	FeaturedImage *Asset

	// PublishDate is when the article was published
	PublishDate time.Time
}

// Validate checks that the article carries the fields a page needs to link to
// it. An untitled article is still listed.
func (a *Article) Validate() error {
	if a.Slug == "" {
		return errors.New("article slug cannot be empty")
	}

	return nil
}
