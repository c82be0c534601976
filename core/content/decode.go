// ABOUTME: Decoders from raw content store entries into domain types
// ABOUTME: Tolerates missing or mistyped fields and resolves linked assets

package content

import (
	"encoding/json"
	"fmt"

	"catcare-web/core/domain"
	timeutil "catcare-web/pkg/utils/time"
)

// link is the reference shape stored in a field that points at another record
type link struct {
	Sys struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		LinkType string `json:"linkType"`
	} `json:"sys"`
}

// stringField returns a string field or "" when absent or not a string
func stringField(entry domain.Entry, name string) string {
	raw, ok := entry.Fields[name]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

// assetField resolves a linked asset field. A link whose target is missing
// from the collection yields an asset with no file.
func assetField(entry domain.Entry, name string, assets map[string]*domain.Asset) *domain.Asset {
	raw, ok := entry.Fields[name]
	if !ok {
		return nil
	}

	var ref link
	if err := json.Unmarshal(raw, &ref); err != nil || ref.Sys.ID == "" {
		return nil
	}

	if asset, ok := assets[ref.Sys.ID]; ok {
		return asset
	}
	return &domain.Asset{ID: ref.Sys.ID}
}

// richTextField decodes a rich text document field
func richTextField(entry domain.Entry, name string) (*domain.RichTextNode, error) {
	raw, ok := entry.Fields[name]
	if !ok || string(raw) == "null" {
		return nil, nil
	}

	var doc domain.RichTextNode
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	return &doc, nil
}

// decodeArticle maps a catCareHub entry onto an Article
func decodeArticle(entry domain.Entry, assets map[string]*domain.Asset) (*domain.Article, error) {
	article := &domain.Article{
		ID:            entry.ID,
		Title:         stringField(entry, "title"),
		Slug:          stringField(entry, "slug"),
		Category:      domain.Category(stringField(entry, "category")),
		Excerpt:       stringField(entry, "excerpt"),
		FeaturedImage: assetField(entry, "featuredImage", assets),
		PublishDate:   timeutil.ParseFlexibleTime(stringField(entry, "publishDate")),
	}

	content, err := richTextField(entry, "content")
	if err != nil {
		return nil, err
	}
	article.Content = content

	if err := article.Validate(); err != nil {
		return nil, err
	}

	return article, nil
}

// decodeProduct maps a productRecommendation entry onto a ProductRecommendation
func decodeProduct(entry domain.Entry) *domain.ProductRecommendation {
	return &domain.ProductRecommendation{
		ID:            entry.ID,
		Name:          stringField(entry, "name"),
		Description:   stringField(entry, "description"),
		Category:      stringField(entry, "category"),
		ImageURL:      stringField(entry, "imageUrl"),
		AffiliateLink: stringField(entry, "affiliateLink"),
		Rationale:     stringField(entry, "rationale"),
	}
}

// decodeGalleryImage maps a galleryImage entry onto a GalleryImage
func decodeGalleryImage(entry domain.Entry, assets map[string]*domain.Asset) *domain.GalleryImage {
	return &domain.GalleryImage{
		ID:       entry.ID,
		Title:    stringField(entry, "title"),
		Image:    assetField(entry, "image", assets),
		Caption:  stringField(entry, "caption"),
		Category: stringField(entry, "category"),
	}
}
