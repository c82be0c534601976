// ABOUTME: Mappers for converting content domain models to API DTOs
// ABOUTME: Reuses the site's view helpers so JSON and HTML agree on labels and URLs

package mappers

import (
	"catcare-web/api/dto/responses"
	"catcare-web/core/domain"
	"catcare-web/web/view"
)

// ToArticleSummaryResponse converts a domain Article to a summary DTO
func ToArticleSummaryResponse(article *domain.Article) *responses.ArticleSummaryResponse {
	if article == nil {
		return nil
	}

	response := &responses.ArticleSummaryResponse{
		ID:            article.ID,
		Slug:          article.Slug,
		Title:         article.Title,
		Category:      string(article.Category),
		CategoryLabel: view.CategoryLabel(article.Category),
		Excerpt:       article.Excerpt,
		ImageURL:      view.ImageURL(article.FeaturedImage),
		URL:           view.ArticlePath(article.Slug),
	}

	if !article.PublishDate.IsZero() {
		published := article.PublishDate
		response.PublishDate = &published
	}

	return response
}

// ToArticleResponse converts a domain Article to a full DTO with rendered body
func ToArticleResponse(article *domain.Article) *responses.ArticleResponse {
	summary := ToArticleSummaryResponse(article)
	if summary == nil {
		return nil
	}

	return &responses.ArticleResponse{
		ArticleSummaryResponse: *summary,
		HTML:                   string(view.RenderRichText(article.Content)),
		Text:                   article.Content.PlainText(),
	}
}

// ToArticleListResponse converts articles to a list DTO, preserving order
func ToArticleListResponse(articles []*domain.Article) responses.ArticleListResponse {
	list := responses.ArticleListResponse{
		Articles: make([]responses.ArticleSummaryResponse, 0, len(articles)),
	}

	for _, article := range articles {
		if summary := ToArticleSummaryResponse(article); summary != nil {
			list.Articles = append(list.Articles, *summary)
		}
	}
	list.Total = len(list.Articles)

	return list
}

// ToProductListResponse converts product recommendations to a list DTO
func ToProductListResponse(products []*domain.ProductRecommendation) responses.ProductListResponse {
	list := responses.ProductListResponse{
		Products: make([]responses.ProductResponse, 0, len(products)),
	}

	for _, p := range products {
		if p == nil {
			continue
		}
		list.Products = append(list.Products, responses.ProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Category:      p.Category,
			ImageURL:      p.ImageURL,
			AffiliateLink: p.AffiliateLink,
			Rationale:     p.Rationale,
		})
	}
	list.Total = len(list.Products)

	return list
}

// ToGalleryListResponse converts gallery images to a list DTO
func ToGalleryListResponse(images []*domain.GalleryImage) responses.GalleryListResponse {
	list := responses.GalleryListResponse{
		Images: make([]responses.GalleryImageResponse, 0, len(images)),
	}

	for _, img := range images {
		if img == nil {
			continue
		}
		list.Images = append(list.Images, responses.GalleryImageResponse{
			ID:       img.ID,
			Title:    img.Title,
			Caption:  img.Caption,
			Category: img.Category,
			ImageURL: view.ImageURL(img.Image),
		})
	}
	list.Total = len(list.Images)

	return list
}

// ToDiagnosticsResponse converts store diagnostics to a DTO
func ToDiagnosticsResponse(d *domain.Diagnostics) *responses.DiagnosticsResponse {
	if d == nil {
		return nil
	}

	response := &responses.DiagnosticsResponse{
		ContentTypes:     make([]responses.ContentTypeResponse, 0, len(d.ContentTypes)),
		TotalEntries:     d.TotalEntries,
		FirstContentType: d.FirstContentType,
	}
	for _, ct := range d.ContentTypes {
		response.ContentTypes = append(response.ContentTypes, responses.ContentTypeResponse{ID: ct.ID, Name: ct.Name})
	}

	return response
}
